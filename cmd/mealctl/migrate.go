package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/osse101/FreshMeal_Go/internal/bootstrap"
	"github.com/osse101/FreshMeal_Go/internal/database"
)

func (c *cli) newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the schema of the SQL drivers",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, dialect, err := bootstrap.OpenSQL(cmd.Context(), c.cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			version, err := database.Migrate(cmd.Context(), db, dialect)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema at version %d\n", version)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, dialect, err := bootstrap.OpenSQL(cmd.Context(), c.cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.MigrateDown(cmd.Context(), db, dialect); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "rolled back one migration")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, dialect, err := bootstrap.OpenSQL(cmd.Context(), c.cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			statuses, err := database.Status(cmd.Context(), db, dialect)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "VERSION\tAPPLIED\tFILE")
			for _, s := range statuses {
				fmt.Fprintf(tw, "%d\t%t\t%s\n", s.Version, s.Applied, s.Path)
			}
			return tw.Flush()
		},
	})

	return cmd
}
