package service_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pkordes/startrek-travel/internal/domain"
	"github.com/pkordes/startrek-travel/internal/repo"
	"github.com/pkordes/startrek-travel/internal/storage"
)

// Hand-written test doubles. Each method is a function field; set only the
// ones a test needs. Calling an unset one panics, which fails the test loudly.

type mockTripRepo struct {
	create      func(ctx context.Context, o domain.Offering) (domain.Offering, error)
	list        func(ctx context.Context) ([]domain.Offering, error)
	setImageURL func(ctx context.Context, id uuid.UUID, url string) error
}

func (m *mockTripRepo) Create(ctx context.Context, o domain.Offering) (domain.Offering, error) {
	return m.create(ctx, o)
}
func (m *mockTripRepo) List(ctx context.Context) ([]domain.Offering, error) {
	return m.list(ctx)
}
func (m *mockTripRepo) SetImageURL(ctx context.Context, id uuid.UUID, url string) error {
	return m.setImageURL(ctx, id, url)
}

type mockSignupRepo struct {
	create func(ctx context.Context, s domain.Signup) (domain.Signup, error)
}

func (m *mockSignupRepo) Create(ctx context.Context, s domain.Signup) (domain.Signup, error) {
	return m.create(ctx, s)
}

type mockMessageRepo struct {
	create func(ctx context.Context, msg domain.ContactMessage) (domain.ContactMessage, error)
}

func (m *mockMessageRepo) Create(ctx context.Context, msg domain.ContactMessage) (domain.ContactMessage, error) {
	return m.create(ctx, msg)
}

type mockSurveyRepo struct {
	create func(ctx context.Context, s domain.SurveyResponse) (domain.SurveyResponse, error)
}

func (m *mockSurveyRepo) Create(ctx context.Context, s domain.SurveyResponse) (domain.SurveyResponse, error) {
	return m.create(ctx, s)
}

type mockBucket struct {
	upload    func(ctx context.Context, key string, body io.ReadSeeker, contentType string) error
	publicURL func(key string) string
}

func (m *mockBucket) Upload(ctx context.Context, key string, body io.ReadSeeker, contentType string) error {
	return m.upload(ctx, key, body, contentType)
}
func (m *mockBucket) PublicURL(key string) string {
	return m.publicURL(key)
}

// compile-time checks: the mocks must satisfy the interfaces they stand in for.
var (
	_ repo.TripRepo    = (*mockTripRepo)(nil)
	_ repo.SignupRepo  = (*mockSignupRepo)(nil)
	_ repo.MessageRepo = (*mockMessageRepo)(nil)
	_ repo.SurveyRepo  = (*mockSurveyRepo)(nil)
	_ storage.Bucket   = (*mockBucket)(nil)
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
