// Package repo contains all database access logic for the StarTrek site.
// Each table has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/startrek-travel/internal/domain"
)

// DB is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test,
// giving per-test isolation without manual cleanup.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the persistence operations for the trips table.
type TripRepo interface {
	// Create inserts a new offering and returns the persisted record (with
	// DB-generated id and created_at populated).
	Create(ctx context.Context, o domain.Offering) (domain.Offering, error)

	// List returns all offerings ordered by created_at ascending.
	List(ctx context.Context) ([]domain.Offering, error)

	// SetImageURL attaches an image URL to an existing offering.
	// Returns domain.ErrNotFound if no offering with that ID exists.
	SetImageURL(ctx context.Context, id uuid.UUID, url string) error
}

type pgTripRepo struct {
	db DB
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db DB) TripRepo {
	return &pgTripRepo{db: db}
}

func (r *pgTripRepo) Create(ctx context.Context, o domain.Offering) (domain.Offering, error) {
	const q = `
		INSERT INTO trips (title, description, itinerary, price, image_url)
		VALUES (@title, @description, @itinerary, @price, @image_url)
		RETURNING id, title, description, itinerary, price, image_url, created_at`

	args := pgx.NamedArgs{
		"title":       o.Title,
		"description": o.Description,
		"itinerary":   o.Itinerary,
		"price":       o.Price,
		"image_url":   nullableText(o.ImageURL),
	}

	result, err := scanOffering(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Offering{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) List(ctx context.Context) ([]domain.Offering, error) {
	const q = `
		SELECT id, title, description, itinerary, price, image_url, created_at
		FROM trips
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	var offerings []domain.Offering
	for rows.Next() {
		o, err := scanOffering(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.List: scan: %w", err)
		}
		offerings = append(offerings, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: rows: %w", err)
	}

	return offerings, nil
}

func (r *pgTripRepo) SetImageURL(ctx context.Context, id uuid.UUID, url string) error {
	const q = `UPDATE trips SET image_url = @image_url WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "image_url": url})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.SetImageURL: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.SetImageURL: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanOffering maps a single trips row into a domain.Offering.
// A NULL image_url becomes the empty string.
func scanOffering(s scanner) (domain.Offering, error) {
	var (
		o        domain.Offering
		id       pgtype.UUID
		imageURL pgtype.Text
	)

	err := s.Scan(&id, &o.Title, &o.Description, &o.Itinerary, &o.Price, &imageURL, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Offering{}, domain.ErrNotFound
		}
		return domain.Offering{}, err
	}

	o.ID = uuid.UUID(id.Bytes)
	if imageURL.Valid {
		o.ImageURL = imageURL.String
	}
	return o, nil
}

// nullableText stores the empty string as NULL.
func nullableText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}
