package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/spf13/cobra"

	"github.com/pkordes/startrek-travel/internal/domain"
	"github.com/pkordes/startrek-travel/internal/repo"
	"github.com/pkordes/startrek-travel/migrations"
)

var errNoDatabaseURL = errors.New("DATABASE_URL is not set")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Manage the StarTrek database schema and seed data",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("database-url", "", "Postgres connection string (defaults to $DATABASE_URL)")

	root.AddCommand(newUpCmd(), newStatusCmd(), newSeedCmd())
	return root
}

func newUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openSQL(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			n, err := migrations.Up(cmd.Context(), db)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", n)
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "List migrations and their state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openSQL(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			p, err := migrations.NewProvider(db)
			if err != nil {
				return err
			}
			statuses, err := p.Status(cmd.Context())
			if err != nil {
				return fmt.Errorf("migrate status: %w", err)
			}
			out := cmd.OutOrStdout()
			for _, s := range statuses {
				fmt.Fprintf(out, "%05d  %-8s  %s\n", s.Source.Version, s.State, s.Source.Path)
			}
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the planned offerings",
		Long: "Inserts the four planned offerings shown on the landing page. " +
			"Does nothing when trips already exist unless --force is given.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dsn, err := databaseURL(cmd)
			if err != nil {
				return err
			}
			pool, err := pgxpool.New(cmd.Context(), dsn)
			if err != nil {
				return fmt.Errorf("migrate seed: open pool: %w", err)
			}
			defer pool.Close()

			n, err := seed(cmd.Context(), repo.NewTripRepo(pool), force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "inserted %d trip(s)\n", n)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Insert even when the trips table is not empty")
	return cmd
}

// seed inserts domain.PlannedOfferings through trips unless the table
// already has rows and force is false. The store assigns fresh IDs and the
// placeholder image URLs are dropped so the admin page lists every trip as
// having no image yet.
func seed(ctx context.Context, trips repo.TripRepo, force bool) (int, error) {
	if !force {
		existing, err := trips.List(ctx)
		if err != nil {
			return 0, fmt.Errorf("migrate seed: %w", err)
		}
		if len(existing) > 0 {
			return 0, nil
		}
	}
	n := 0
	for _, o := range domain.PlannedOfferings() {
		o.ImageURL = ""
		if _, err := trips.Create(ctx, o); err != nil {
			return n, fmt.Errorf("migrate seed: %s: %w", o.Title, err)
		}
		n++
	}
	return n, nil
}

func databaseURL(cmd *cobra.Command) (string, error) {
	dsn, _ := cmd.Flags().GetString("database-url")
	if dsn == "" {
		dsn = os.Getenv("DATABASE_URL")
	}
	if dsn == "" {
		return "", errNoDatabaseURL
	}
	return dsn, nil
}

func openSQL(cmd *cobra.Command) (*sql.DB, error) {
	dsn, err := databaseURL(cmd)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}
