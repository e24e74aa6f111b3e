package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	generateLayout     LayoutFlags
	generatePopulation PopulationFlags
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate and populate a new dungeon",
	Long: `Generate a dungeon on the server. Unset options use the server defaults. Examples:

  generate --size medium --shape Rectangle
  generate --dungeon-seed 20240301 --theme undead --party-size 4 --party-level 5`,
	RunE: runGenerate,
}

func init() {
	generateLayout.Bind(generateCmd)
	generatePopulation.Bind(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createDungeonClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := NewRequest(generateLayout.Fields(cmd), generatePopulation.Fields(cmd))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.Generate(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to generate dungeon: %w", err)
	}

	return PrintResult(os.Stdout, resp, jsonOutput)
}
