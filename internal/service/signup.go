package service

import (
	"context"
	"fmt"

	"github.com/pkordes/startrek-travel/internal/domain"
	"github.com/pkordes/startrek-travel/internal/repo"
)

// SignupService adds visitors to the launch list.
type SignupService struct {
	repo repo.SignupRepo
}

// NewSignupService constructs a SignupService backed by r.
func NewSignupService(r repo.SignupRepo) *SignupService {
	return &SignupService{repo: r}
}

// Submit validates email and stores a single signup row.
// Returns domain.ErrValidation for a missing or malformed address and
// domain.ErrNotConfigured (wrapped) in demo mode.
func (s *SignupService) Submit(ctx context.Context, email string) (domain.Signup, error) {
	email, err := validateEmail(email)
	if err != nil {
		return domain.Signup{}, err
	}
	out, err := s.repo.Create(ctx, domain.Signup{Email: email})
	if err != nil {
		return domain.Signup{}, fmt.Errorf("service.SignupService.Submit: %w", err)
	}
	return out, nil
}
