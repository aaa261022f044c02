package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/FreshMeal_Go/internal/bootstrap"
	"github.com/osse101/FreshMeal_Go/internal/seed"
)

func (c *cli) newSeedCmd() *cobra.Command {
	var (
		file   string
		userID int64
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load seed data into the store",
		Long: `Loads recipes, calendar entries and shopping items from a YAML seed
document. Without --file the built-in demo data is used. The document is
checked against the seed schema before anything is written, and running the
same document twice does not duplicate recipes or shopping items.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requirePersistent("seed"); err != nil {
				return err
			}

			doc, err := loadSeedDocument(file)
			if err != nil {
				return err
			}

			store, err := bootstrap.OpenStore(cmd.Context(), c.cfg, bootstrap.StoreOptions{Migrate: true})
			if err != nil {
				return err
			}
			defer store.Close()

			if userID == 0 {
				userID = c.cfg.DefaultUserID
			}
			res, err := seed.Apply(cmd.Context(), store, doc, seed.Options{UserID: userID})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d recipes, %d planned meals, %d shopping items\n",
				res.Recipes, res.PlannedMeals, res.Items)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "seed document (YAML); defaults to the demo data")
	cmd.Flags().Int64Var(&userID, "user", 0, "user whose default plan receives the calendar entries")
	return cmd
}

func loadSeedDocument(path string) (*seed.Document, error) {
	if path == "" {
		return seed.Demo()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return seed.Parse(data)
}
