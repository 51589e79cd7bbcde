package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/pkordes/startrek-travel/internal/domain"
	"github.com/pkordes/startrek-travel/internal/repo"
)

// SurveyService stores interest-survey responses.
type SurveyService struct {
	repo repo.SurveyRepo
}

// NewSurveyService constructs a SurveyService backed by r.
func NewSurveyService(r repo.SurveyRepo) *SurveyService {
	return &SurveyService{repo: r}
}

// Submit validates the answers, flattens the multi-select fields with
// domain.JoinSelections and stores a single row.
func (s *SurveyService) Submit(ctx context.Context, a domain.SurveyAnswers) (domain.SurveyResponse, error) {
	if err := validateSurvey(&a); err != nil {
		return domain.SurveyResponse{}, err
	}
	out, err := s.repo.Create(ctx, a.Flatten())
	if err != nil {
		return domain.SurveyResponse{}, fmt.Errorf("service.SurveyService.Submit: %w", err)
	}
	return out, nil
}

// validateSurvey normalises a in place and enforces:
//   - email present and well-formed
//   - budget range empty or one of domain.BudgetOptions
//   - every selection drawn from its catalogue, without duplicates
func validateSurvey(a *domain.SurveyAnswers) error {
	email, err := validateEmail(a.Email)
	if err != nil {
		return err
	}
	a.Email = email

	a.BudgetRange = strings.TrimSpace(a.BudgetRange)
	if a.BudgetRange != "" && !slices.Contains(domain.BudgetOptions, a.BudgetRange) {
		return fmt.Errorf("%w: budget range %q is not offered", domain.ErrValidation, a.BudgetRange)
	}

	for _, f := range []struct {
		name     string
		selected *[]string
		options  []string
	}{
		{"destination", &a.Destinations, domain.DestinationOptions},
		{"travel style", &a.TravelStyle, domain.TravelStyleOptions},
		{"accessibility need", &a.AccessibilityNeeds, domain.AccessibilityOptions},
	} {
		var kept []string
		for _, v := range *f.selected {
			if !slices.Contains(f.options, v) {
				return fmt.Errorf("%w: unknown %s %q", domain.ErrValidation, f.name, v)
			}
			if !slices.Contains(kept, v) {
				kept = append(kept, v)
			}
		}
		*f.selected = kept
	}

	a.AdditionalComments = strings.TrimSpace(a.AdditionalComments)
	return nil
}
