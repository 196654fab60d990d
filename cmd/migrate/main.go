package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pageza/cookbook/backend/config"
	"github.com/pageza/cookbook/backend/internal/database"
	"github.com/pageza/cookbook/backend/internal/logger"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the recipe schema",
		Long: `Create or update the recipe schema in the configured database.

With --reset every table is dropped first. Never use it against data you want to keep.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			logg, err := logger.New(cfg.LogMode)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer logg.Sync()

			db, err := database.Open(cfg, logg)
			if err != nil {
				return err
			}

			if reset {
				if config.IsProduction() {
					return fmt.Errorf("refusing to reset a production database")
				}
				logg.Warn("dropping all tables", "driver", cfg.DBDriver)
				if err := database.Reset(db); err != nil {
					return fmt.Errorf("reset schema: %w", err)
				}
			} else if err := database.Migrate(db); err != nil {
				return fmt.Errorf("migrate schema: %w", err)
			}
			logg.Info("schema is up to date", "driver", cfg.DBDriver)
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "drop all tables before migrating")
	return cmd
}
