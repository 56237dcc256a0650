package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"revobot/cmd"
	"revobot/config"
	"revobot/database"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	_ "time/tzdata"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "revobot",
		Short:         "Discord bot that reminds moderators of arrivals and condemnations after seven days",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			return runBot()
		},
	}
	rootCmd.AddCommand(newMigrateCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal("Application error: ", err)
	}
}

func runBot() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("Received shutdown signal, shutting down gracefully...")
		cancel()
	}()

	return cmd.Run(ctx)
}

func newMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
	}

	migrateCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, args []string) error {
				databaseURL, err := migrationDatabaseURL()
				if err != nil {
					return err
				}
				return database.MigrateUp(databaseURL)
			},
		},
		&cobra.Command{
			Use:   "down [steps]",
			Short: "Roll back migrations (default 1 step)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				steps := 1
				if len(args) == 1 {
					parsed, err := strconv.Atoi(args[0])
					if err != nil {
						return fmt.Errorf("invalid steps %q: %w", args[0], err)
					}
					steps = parsed
				}

				databaseURL, err := migrationDatabaseURL()
				if err != nil {
					return err
				}
				return database.MigrateDown(databaseURL, steps)
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show the current migration version",
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, args []string) error {
				databaseURL, err := migrationDatabaseURL()
				if err != nil {
					return err
				}
				status, err := database.MigrateStatus(databaseURL)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.OutOrStdout(), "version: %d\ndirty: %t\napplied: %t\n", status.Version, status.Dirty, status.Applied)
				return nil
			},
		},
	)

	return migrateCmd
}

// migrationDatabaseURL loads only the database settings, so migrations run without a Discord token
func migrationDatabaseURL() (string, error) {
	cfg, err := config.LoadDatabaseOnly()
	if err != nil {
		return "", fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cmd.ConfigureLogging(cfg.LogLevel, cfg.IsProduction()); err != nil {
		return "", err
	}
	return cfg.GetDatabaseURL(), nil
}
