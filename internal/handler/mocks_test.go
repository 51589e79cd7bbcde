package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/startrek-travel/internal/domain"
	"github.com/pkordes/startrek-travel/internal/handler"
	"github.com/pkordes/startrek-travel/internal/service"
)

// Test doubles for the handler's consumer-side interfaces. Set only the
// function fields a test needs; an unset one panics when called.

type mockTripServicer struct {
	listing func(ctx context.Context) domain.Listing
	list    func(ctx context.Context) ([]domain.Offering, error)
}

func (m *mockTripServicer) Listing(ctx context.Context) domain.Listing { return m.listing(ctx) }
func (m *mockTripServicer) List(ctx context.Context) ([]domain.Offering, error) {
	return m.list(ctx)
}

type mockSignupServicer struct {
	submit func(ctx context.Context, email string) (domain.Signup, error)
}

func (m *mockSignupServicer) Submit(ctx context.Context, email string) (domain.Signup, error) {
	return m.submit(ctx, email)
}

type mockContactServicer struct {
	send func(ctx context.Context, msg domain.ContactMessage) (domain.ContactMessage, error)
}

func (m *mockContactServicer) Send(ctx context.Context, msg domain.ContactMessage) (domain.ContactMessage, error) {
	return m.send(ctx, msg)
}

type mockSurveyServicer struct {
	submit func(ctx context.Context, a domain.SurveyAnswers) (domain.SurveyResponse, error)
}

func (m *mockSurveyServicer) Submit(ctx context.Context, a domain.SurveyAnswers) (domain.SurveyResponse, error) {
	return m.submit(ctx, a)
}

type mockImageServicer struct {
	attach func(ctx context.Context, up service.ImageUpload) (string, error)
}

func (m *mockImageServicer) Attach(ctx context.Context, up service.ImageUpload) (string, error) {
	return m.attach(ctx, up)
}

type mockPinger struct {
	ping func(ctx context.Context) error
}

func (m *mockPinger) Ping(ctx context.Context) error { return m.ping(ctx) }

// Repo and bucket doubles, for tests that run the real services behind
// the handler.

type mockTripRepo struct {
	create      func(ctx context.Context, o domain.Offering) (domain.Offering, error)
	list        func(ctx context.Context) ([]domain.Offering, error)
	setImageURL func(ctx context.Context, id uuid.UUID, url string) error
}

func (m *mockTripRepo) Create(ctx context.Context, o domain.Offering) (domain.Offering, error) {
	return m.create(ctx, o)
}
func (m *mockTripRepo) List(ctx context.Context) ([]domain.Offering, error) { return m.list(ctx) }
func (m *mockTripRepo) SetImageURL(ctx context.Context, id uuid.UUID, url string) error {
	return m.setImageURL(ctx, id, url)
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
func (m *mockBucket) PublicURL(key string) string { return m.publicURL(key) }

// compile-time checks
var (
	_ handler.TripServicer    = (*mockTripServicer)(nil)
	_ handler.SignupServicer  = (*mockSignupServicer)(nil)
	_ handler.ContactServicer = (*mockContactServicer)(nil)
	_ handler.SurveyServicer  = (*mockSurveyServicer)(nil)
	_ handler.ImageServicer   = (*mockImageServicer)(nil)
	_ handler.Pinger          = (*mockPinger)(nil)
)

// ---- helpers ---------------------------------------------------------------

// fallbackTrips is a TripServicer whose listing is the planned set.
func fallbackTrips() *mockTripServicer {
	return &mockTripServicer{
		listing: func(context.Context) domain.Listing {
			return domain.Listing{Offerings: domain.PlannedOfferings(), Fallback: true}
		},
		list: func(context.Context) ([]domain.Offering, error) {
			return nil, domain.ErrNotConfigured
		},
	}
}

// newRouter builds the site router over d with no group middleware.
// Trips defaults to fallbackTrips.
func newRouter(t *testing.T, d handler.Deps) http.Handler {
	t.Helper()
	if d.Trips == nil {
		d.Trips = fallbackTrips()
	}
	srv, err := handler.NewServer(d)
	require.NoError(t, err)
	return srv.Routes(handler.Middleware{})
}

// postForm sends an urlencoded form post and returns the recorder.
func postForm(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
