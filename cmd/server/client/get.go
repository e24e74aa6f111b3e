package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dungeon/internal/handlers/dungeon/v1alpha1"
)

var getCmd = &cobra.Command{
	Use:   "get [session-id]",
	Short: "Fetch a stored dungeon",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createDungeonClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := NewRequest(map[string]any{v1alpha1.FieldSessionID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.GetDungeon(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to get dungeon: %w", err)
	}

	return PrintResult(os.Stdout, resp, jsonOutput)
}
