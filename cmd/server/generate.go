package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dungeon/cmd/server/client"
	"github.com/KirkDiggler/rpg-dungeon/internal/handlers/dungeon/v1alpha1"
	"github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/rng"
	dungeonsession "github.com/KirkDiggler/rpg-dungeon/internal/repositories/dungeon_session"
)

var (
	offlineLayout     client.LayoutFlags
	offlinePopulation client.PopulationFlags
	offlineCatalog    string
	offlineJSON       bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a dungeon locally without a server",
	Long: `Generate and populate a dungeon in process and print it. The same seeds
produce the same dungeon as the server. Examples:

  generate --size tiny --dungeon-seed 12345678
  generate --shape Rectangle --theme dragons --density full --json`,
	RunE: runGenerate,
}

func init() {
	offlineLayout.Bind(generateCmd)
	offlinePopulation.Bind(generateCmd)
	generateCmd.Flags().StringVar(&offlineCatalog, "catalog", "", "Path to an SRD monster JSON file (empty uses the bundled catalog)")
	generateCmd.Flags().BoolVar(&offlineJSON, "json", false, "Print the result as JSON")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog(offlineCatalog)
	if err != nil {
		return err
	}

	svc, err := dungeon.NewOrchestrator(&dungeon.Config{
		SessionRepo: dungeonsession.NewInMemory(clock.New()),
		Catalog:     catalog,
		IDGenerator: idgen.NewSequential("local"),
		Seeder:      rng.NewSeeder(),
	})
	if err != nil {
		return fmt.Errorf("failed to create dungeon orchestrator: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{DungeonService: svc})
	if err != nil {
		return fmt.Errorf("failed to create dungeon handler: %w", err)
	}

	req, err := client.NewRequest(offlineLayout.Fields(cmd), offlinePopulation.Fields(cmd))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := handler.Generate(context.Background(), req)
	if err != nil {
		return fmt.Errorf("failed to generate dungeon: %w", err)
	}

	return client.PrintResult(os.Stdout, resp, offlineJSON)
}
