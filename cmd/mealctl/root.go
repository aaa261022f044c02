package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osse101/FreshMeal_Go/internal/bootstrap"
	"github.com/osse101/FreshMeal_Go/internal/config"
)

// cli carries the loaded configuration between the root hook and subcommands
type cli struct {
	cfg        *config.Config
	driver     string
	sqlitePath string
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "mealctl",
		Short: "Operate a FreshMeal store",
		Long: `mealctl works directly against the configured store.

The store is chosen by STORE_DRIVER and the DB_* / SQLITE_PATH variables,
the same environment the server reads. --driver and --sqlite-path override them.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.load,
	}

	root.PersistentFlags().StringVar(&c.driver, "driver", "", "store driver: memory, postgres or sqlite")
	root.PersistentFlags().StringVar(&c.sqlitePath, "sqlite-path", "", "sqlite database file")

	root.AddCommand(
		c.newMigrateCmd(),
		c.newSeedCmd(),
		c.newWeekCmd(),
		c.newShoppingCmd(),
	)
	return root
}

// load reads the environment, applies flag overrides and sets up logging on stderr
func (c *cli) load(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if c.driver != "" {
		cfg.StoreDriver = strings.ToLower(c.driver)
	}
	if c.sqlitePath != "" {
		cfg.SQLitePath = c.sqlitePath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	bootstrap.SetupLogger(cfg, os.Stderr)
	c.cfg = cfg
	return nil
}

// requirePersistent rejects the memory driver for commands whose effect would
// vanish with the process.
func (c *cli) requirePersistent(name string) error {
	if c.cfg.StoreDriver == config.DriverMemory {
		return fmt.Errorf("%s needs a persistent store, set STORE_DRIVER or --driver", name)
	}
	return nil
}
