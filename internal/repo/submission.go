package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/startrek-travel/internal/domain"
)

// SignupRepo persists launch-list signups.
type SignupRepo interface {
	Create(ctx context.Context, s domain.Signup) (domain.Signup, error)
}

// MessageRepo persists contact-form messages.
type MessageRepo interface {
	Create(ctx context.Context, m domain.ContactMessage) (domain.ContactMessage, error)
}

// SurveyRepo persists flattened interest-survey responses.
type SurveyRepo interface {
	Create(ctx context.Context, s domain.SurveyResponse) (domain.SurveyResponse, error)
}

type pgSignupRepo struct{ db DB }

// NewSignupRepo constructs a SignupRepo backed by db.
func NewSignupRepo(db DB) SignupRepo { return &pgSignupRepo{db: db} }

func (r *pgSignupRepo) Create(ctx context.Context, s domain.Signup) (domain.Signup, error) {
	const q = `
		INSERT INTO signups (email)
		VALUES (@email)
		RETURNING id, email, created_at`

	var out domain.Signup
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"email": s.Email}).Scan(&out.ID, &out.Email, &out.CreatedAt)
	if err != nil {
		return domain.Signup{}, fmt.Errorf("repo.SignupRepo.Create: %w", err)
	}
	return out, nil
}

type pgMessageRepo struct{ db DB }

// NewMessageRepo constructs a MessageRepo backed by db.
func NewMessageRepo(db DB) MessageRepo { return &pgMessageRepo{db: db} }

func (r *pgMessageRepo) Create(ctx context.Context, m domain.ContactMessage) (domain.ContactMessage, error) {
	const q = `
		INSERT INTO messages (name, email, message)
		VALUES (@name, @email, @message)
		RETURNING id, name, email, message, created_at`

	args := pgx.NamedArgs{
		"name":    m.Name,
		"email":   m.Email,
		"message": m.Message,
	}

	var out domain.ContactMessage
	err := r.db.QueryRow(ctx, q, args).Scan(&out.ID, &out.Name, &out.Email, &out.Message, &out.CreatedAt)
	if err != nil {
		return domain.ContactMessage{}, fmt.Errorf("repo.MessageRepo.Create: %w", err)
	}
	return out, nil
}

type pgSurveyRepo struct{ db DB }

// NewSurveyRepo constructs a SurveyRepo backed by db.
func NewSurveyRepo(db DB) SurveyRepo { return &pgSurveyRepo{db: db} }

func (r *pgSurveyRepo) Create(ctx context.Context, s domain.SurveyResponse) (domain.SurveyResponse, error) {
	const q = `
		INSERT INTO interest_survey
			(email, destinations, budget_range, travel_style, accessibility_needs, additional_comments)
		VALUES
			(@email, @destinations, @budget_range, @travel_style, @accessibility_needs, @additional_comments)
		RETURNING id, email, destinations, budget_range, travel_style,
		          accessibility_needs, additional_comments, created_at`

	args := pgx.NamedArgs{
		"email":               s.Email,
		"destinations":        s.Destinations,
		"budget_range":        s.BudgetRange,
		"travel_style":        s.TravelStyle,
		"accessibility_needs": s.AccessibilityNeeds,
		"additional_comments": s.AdditionalComments,
	}

	var out domain.SurveyResponse
	err := r.db.QueryRow(ctx, q, args).Scan(
		&out.ID, &out.Email, &out.Destinations, &out.BudgetRange,
		&out.TravelStyle, &out.AccessibilityNeeds, &out.AdditionalComments, &out.CreatedAt,
	)
	if err != nil {
		return domain.SurveyResponse{}, fmt.Errorf("repo.SurveyRepo.Create: %w", err)
	}
	return out, nil
}
