// Package service contains the business logic for the StarTrek site.
// Services validate inputs, enforce business rules, and orchestrate repo and
// bucket calls. No SQL or HTTP lives here.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkordes/startrek-travel/internal/domain"
	"github.com/pkordes/startrek-travel/internal/repo"
)

// TripService serves the offerings shown on the landing and admin pages.
type TripService struct {
	repo repo.TripRepo
	log  *slog.Logger
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo, log *slog.Logger) *TripService {
	return &TripService{repo: r, log: log}
}

// Listing returns what the trips section should render. Any store error,
// including an unconfigured gateway, or an empty table yields the planned
// offerings with Fallback set. It never returns a mix of the two.
func (s *TripService) Listing(ctx context.Context) domain.Listing {
	offerings, err := s.repo.List(ctx)
	switch {
	case err != nil:
		s.log.InfoContext(ctx, "trips unavailable, using planned trips", "error", err)
	case len(offerings) == 0:
		s.log.DebugContext(ctx, "no trips stored, using planned trips")
	default:
		return domain.Listing{Offerings: offerings}
	}
	return domain.Listing{Offerings: domain.PlannedOfferings(), Fallback: true}
}

// List returns the stored offerings with no fallback, for the admin page.
// Always returns a non-nil slice on success.
func (s *TripService) List(ctx context.Context) ([]domain.Offering, error) {
	offerings, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if offerings == nil {
		return []domain.Offering{}, nil
	}
	return offerings, nil
}
