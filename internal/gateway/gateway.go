// Package gateway builds the client the site uses for every read and write
// against the hosted backend: the Postgres store and the trip-image bucket.
//
// When configuration is missing New returns a stub whose operations all fail
// with domain.ErrNotConfigured, so the site can run as a demo without
// credentials.
package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pkordes/startrek-travel/internal/repo"
	"github.com/pkordes/startrek-travel/internal/storage"
)

// Settings are the two pieces of configuration the gateway needs: where the
// store lives and how to reach the bucket.
type Settings struct {
	DatabaseURL string
	Storage     storage.Settings
}

// Configured reports whether both the store endpoint and the bucket
// credentials are present.
func (s Settings) Configured() bool {
	return s.DatabaseURL != "" && s.Storage.Configured()
}

// Client exposes one repo per table and the image bucket.
type Client interface {
	Trips() repo.TripRepo
	Signups() repo.SignupRepo
	Surveys() repo.SurveyRepo
	Messages() repo.MessageRepo
	Images() storage.Bucket

	// Configured is false for the stub client.
	Configured() bool
	// Ping checks the store is reachable.
	Ping(ctx context.Context) error
	Close()
}

// New returns a live client when s is fully configured, and the stub
// otherwise. The live client's pool connects lazily; call Ping to verify
// the store is reachable.
func New(ctx context.Context, s Settings, log *slog.Logger) (Client, error) {
	if !s.Configured() {
		log.Warn("storage gateway not configured, using fallback data",
			"database_url_set", s.DatabaseURL != "",
			"storage_configured", s.Storage.Configured(),
		)
		return NotConfigured(), nil
	}

	pool, err := pgxpool.New(ctx, s.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("gateway.New: database pool: %w", err)
	}

	bucket, err := storage.NewBucket(s.Storage)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("gateway.New: %w", err)
	}

	return &live{
		pool:     pool,
		trips:    repo.NewTripRepo(pool),
		signups:  repo.NewSignupRepo(pool),
		surveys:  repo.NewSurveyRepo(pool),
		messages: repo.NewMessageRepo(pool),
		images:   bucket,
	}, nil
}

type live struct {
	pool     *pgxpool.Pool
	trips    repo.TripRepo
	signups  repo.SignupRepo
	surveys  repo.SurveyRepo
	messages repo.MessageRepo
	images   storage.Bucket
}

func (c *live) Trips() repo.TripRepo       { return c.trips }
func (c *live) Signups() repo.SignupRepo   { return c.signups }
func (c *live) Surveys() repo.SurveyRepo   { return c.surveys }
func (c *live) Messages() repo.MessageRepo { return c.messages }
func (c *live) Images() storage.Bucket     { return c.images }
func (c *live) Configured() bool           { return true }

func (c *live) Ping(ctx context.Context) error {
	if err := c.pool.Ping(ctx); err != nil {
		return fmt.Errorf("gateway.Ping: %w", err)
	}
	return nil
}

func (c *live) Close() { c.pool.Close() }
