// Command siteapi is the entry point: HTTP server, migrations, seeding,
// queue workers, and route listing.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	_ "github.com/isipark/siteapi/app/jobs"            // job registration
	_ "github.com/isipark/siteapi/database/migrations" // migration registration

	"github.com/isipark/siteapi/app/routes"
	"github.com/isipark/siteapi/config"
	"github.com/isipark/siteapi/database/seeders"
	"github.com/isipark/siteapi/internal/server"
	"github.com/isipark/siteapi/pkg/cache"
	"github.com/isipark/siteapi/pkg/database"
	"github.com/isipark/siteapi/pkg/logger"
	"github.com/isipark/siteapi/pkg/migration"
	"github.com/isipark/siteapi/pkg/queue"
)

func main() {
	root := &cobra.Command{
		Use:   "siteapi",
		Short: "Content API for the company site",
	}

	root.AddCommand(
		serveCmd(),
		migrateCmd(),
		migrateRollbackCmd(),
		migrateStatusCmd(),
		seedCmd(),
		queueWorkCmd(),
		routesCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.Run()
		},
	}
}

// bootDB loads config and opens the database for the one-shot commands.
func bootDB() error {
	if err := config.Load(); err != nil {
		return err
	}
	return database.Connect()
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bootDB(); err != nil {
				return err
			}
			return migration.Run(database.DB)
		},
	}
}

func migrateRollbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate:rollback",
		Short: "Revert the most recent migration batch",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bootDB(); err != nil {
				return err
			}
			return migration.Rollback(database.DB)
		},
	}
}

func migrateStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate:status",
		Short: "Show which migrations have run",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bootDB(); err != nil {
				return err
			}

			entries, err := migration.Status(database.DB)
			if err != nil {
				return err
			}

			for _, e := range entries {
				state := "pending"
				if e.Applied {
					state = fmt.Sprintf("applied (batch %d)", e.Batch)
				}
				fmt.Printf("%-40s %s\n", e.Name, state)
			}
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the initial admin account and demo content",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bootDB(); err != nil {
				return err
			}
			return seeders.Run(database.DB)
		},
	}
}

func queueWorkCmd() *cobra.Command {
	workers := 4

	c := &cobra.Command{
		Use:   "queue:work",
		Short: "Process background jobs until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bootDB(); err != nil {
				return err
			}

			if err := cache.Connect(); err != nil {
				logger.Warn("redis unavailable, using in-memory queue", "error", err)
			} else {
				queue.SetDriver(queue.NewRedisDriver())
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			queue.StartWorkers(ctx, workers)
			<-ctx.Done()

			logger.Info("queue workers stopped")
			return nil
		},
	}
	c.Flags().IntVar(&workers, "workers", 4, "number of concurrent workers")
	return c
}

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List every registered route",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bootDB(); err != nil {
				return err
			}

			r := routes.Build(database.DB)
			for _, info := range r.Routes() {
				fmt.Printf("%-7s %-35s %s\n", info.Method, info.Path, info.Name)
			}
			return nil
		},
	}
}
