package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
	"github.com/whispr-campus/whispr/internal/db"
	"github.com/whispr-campus/whispr/pkg/config"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the whispr database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		dbCommand("up", "Apply all pending migrations", func(ctx context.Context, pg *db.Postgres) error {
			if err := pg.Up(ctx); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			fmt.Println("Migrations applied successfully")
			return nil
		}),
		dbCommand("down", "Roll back the latest migration", func(ctx context.Context, pg *db.Postgres) error {
			if err := pg.Down(ctx); err != nil {
				return fmt.Errorf("failed to rollback migration: %w", err)
			}
			fmt.Println("Migration rollback successful")
			return nil
		}),
		dbCommand("status", "Print the status of every migration", func(ctx context.Context, pg *db.Postgres) error {
			return pg.Status(ctx)
		}),
		dbCommand("reset", "Roll back every migration", func(ctx context.Context, pg *db.Postgres) error {
			if err := pg.Reset(ctx); err != nil {
				return fmt.Errorf("failed to reset migrations: %w", err)
			}
			fmt.Println("All migrations have been rolled back")
			return nil
		}),
		dbCommand("version", "Print the current schema version", func(ctx context.Context, pg *db.Postgres) error {
			v, err := pg.Version(ctx)
			if err != nil {
				return err
			}
			fmt.Println(v)
			return nil
		}),
		createCmd(),
	)

	return root
}

func dbCommand(use, short string, fn func(ctx context.Context, pg *db.Postgres) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			pg, err := db.NewConnect(cfg)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer pg.Close()

			return fn(cmd.Context(), pg)
		},
	}
}

func createCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Scaffold a new Go migration",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			fmt.Printf("Creating migration in: %s\n", dir)
			if err := goose.Create(nil, dir, args[0], "go"); err != nil {
				return fmt.Errorf("failed to create migration: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "internal/migrations", "directory holding the migration sources")

	return cmd
}
