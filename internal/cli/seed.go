package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"heritage-explorer-service/internal/catalog"
	"heritage-explorer-service/internal/config"
	"heritage-explorer-service/internal/domain"
	pgstore "heritage-explorer-service/internal/infra/postgres"
)

// NewSeedCmd loads the built-in story set into Postgres.
func NewSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the database with the built-in stories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), *configPath)
		},
	}
}

func runSeed(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Postgres.URL == "" {
		return fmt.Errorf("postgres url not configured")
	}

	if err := runMigrationsWithConfig(ctx, cfg); err != nil {
		return err
	}

	db := openBun(cfg.Postgres.URL)
	defer db.Close()

	stories := catalog.SampleStories()
	if err := pgstore.SeedStories(ctx, db, stories); err != nil {
		return err
	}
	log.Printf("seeded %d stories", len(stories))

	repo := pgstore.NewContributionRepository(db)
	counts, err := repo.Counts(ctx)
	if err != nil {
		return err
	}
	// Sample contributions go in only once; reseeding must not duplicate them.
	if counts.Total > 0 {
		return nil
	}
	for _, c := range sampleContributions() {
		if _, err := repo.Create(ctx, c); err != nil {
			return err
		}
	}
	log.Printf("seeded %d sample contributions", len(sampleContributions()))
	return nil
}

func sampleContributions() []domain.Contribution {
	return []domain.Contribution{
		{
			Type:            "tradition",
			Title:           "Theyyam ritual dance of North Malabar",
			Content:         "Performers embody deities through elaborate face painting and headgear; the ritual season runs from October to May.",
			Region:          "Kerala",
			Category:        "culture",
			ContributorName: "Anand",
			Status:          domain.StatusPending,
		},
		{
			Type:            "observation",
			Title:           "Great hornbill sighting near Valparai",
			Content:         "A nesting pair seen feeding on wild figs along the estate road, an encouraging sign for the fragmented rainforest corridor.",
			Region:          "Tamil Nadu",
			Category:        "biodiversity",
			ContributorName: "Priya",
			Status:          domain.StatusApproved,
		},
	}
}
