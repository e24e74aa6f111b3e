package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dungeon/internal/handlers/dungeon/v1alpha1"
)

var repopulateFlags PopulationFlags

var repopulateCmd = &cobra.Command{
	Use:   "repopulate [session-id]",
	Short: "Replace the encounters of a stored dungeon",
	Long: `Keep the layout of a stored dungeon and roll new encounters. Population
options that are not set keep their stored values. Examples:

  repopulate dgn_1234
  repopulate dgn_1234 --theme beasts --population-seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: runRepopulate,
}

func init() {
	repopulateFlags.Bind(repopulateCmd)
}

func runRepopulate(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createDungeonClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := NewRequest(
		map[string]any{v1alpha1.FieldSessionID: args[0]},
		repopulateFlags.Fields(cmd),
	)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.Repopulate(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to repopulate dungeon: %w", err)
	}

	return PrintResult(os.Stdout, resp, jsonOutput)
}
