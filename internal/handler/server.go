// Package handler implements the HTTP surface of the StarTrek site: the
// server-rendered landing and admin pages, their form posts, and a small
// JSON API under /api that mirrors the forms.
//
// All handlers are methods on Server. Methods are split into files by
// surface (page.go, admin.go, api.go, health.go) but share one struct so
// they can reach its dependencies.
package handler

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/startrek-travel/internal/domain"
	"github.com/pkordes/startrek-travel/internal/metrics"
	"github.com/pkordes/startrek-travel/internal/service"
)

// The interfaces below are the handler's view of the service layer. They
// are declared here, in the consumer, so tests can inject function-field
// mocks without a store.

// TripServicer lists offerings for the landing and admin pages.
type TripServicer interface {
	Listing(ctx context.Context) domain.Listing
	List(ctx context.Context) ([]domain.Offering, error)
}

// SignupServicer stores launch-list signups.
type SignupServicer interface {
	Submit(ctx context.Context, email string) (domain.Signup, error)
}

// ContactServicer stores contact messages.
type ContactServicer interface {
	Send(ctx context.Context, m domain.ContactMessage) (domain.ContactMessage, error)
}

// SurveyServicer stores interest-survey responses.
type SurveyServicer interface {
	Submit(ctx context.Context, a domain.SurveyAnswers) (domain.SurveyResponse, error)
}

// ImageServicer uploads trip images and links them to offerings.
type ImageServicer interface {
	Attach(ctx context.Context, up service.ImageUpload) (string, error)
}

// Pinger reports whether the hosted store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators a Server needs. Log and Metrics may be nil.
type Deps struct {
	Trips    TripServicer
	Signups  SignupServicer
	Contacts ContactServicer
	Surveys  SurveyServicer
	Images   ImageServicer
	Store    Pinger
	Log      *slog.Logger
	Metrics  *metrics.Metrics
}

// Server serves every route of the site.
type Server struct {
	trips    TripServicer
	signups  SignupServicer
	contacts ContactServicer
	surveys  SurveyServicer
	images   ImageServicer
	store    Pinger
	log      *slog.Logger
	metrics  *metrics.Metrics
	pages    *template.Template
}

// NewServer parses the embedded page templates and returns a Server.
func NewServer(d Deps) (*Server, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, fmt.Errorf("handler.NewServer: %w", err)
	}
	log := d.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Server{
		trips:    d.Trips,
		signups:  d.Signups,
		contacts: d.Contacts,
		surveys:  d.Surveys,
		images:   d.Images,
		store:    d.Store,
		log:      log,
		metrics:  d.Metrics,
		pages:    pages,
	}, nil
}

// Middleware is the optional per-group middleware applied by Routes.
// A nil field is skipped.
type Middleware struct {
	// API wraps /api, typically with CORS.
	API func(http.Handler) http.Handler
	// Admin wraps every /admin route, typically with basic auth.
	Admin func(http.Handler) http.Handler
	// Upload wraps POST /admin/images, typically with a body size cap.
	Upload func(http.Handler) http.Handler
}

// Routes returns a router with every site route registered. Global
// middleware (request id, logging, recovery) is the caller's concern.
func (s *Server) Routes(mw Middleware) chi.Router {
	r := chi.NewRouter()

	r.Get("/", s.getLanding)
	r.Post("/signup", s.postSignup)
	r.Post("/contact", s.postContact)
	r.Post("/interest", s.postSurvey)

	r.Route("/admin", func(r chi.Router) {
		use(r, mw.Admin)
		r.Get("/", s.getAdmin)
		r.With(optional(mw.Upload)...).Post("/images", s.postAdminImage)
	})

	r.Route("/api", func(r chi.Router) {
		use(r, mw.API)
		r.Get("/trips", s.apiListTrips)
		r.Post("/signups", s.apiCreateSignup)
		r.Post("/messages", s.apiCreateMessage)
		r.Post("/surveys", s.apiCreateSurvey)
	})

	r.Get("/healthz", s.getHealth)
	r.Get("/openapi.yaml", s.getOpenAPI)
	r.Handle("/static/*", staticHandler())

	return r
}

func use(r chi.Router, mw func(http.Handler) http.Handler) {
	if mw != nil {
		r.Use(mw)
	}
}

func optional(mw func(http.Handler) http.Handler) []func(http.Handler) http.Handler {
	if mw == nil {
		return nil
	}
	return []func(http.Handler) http.Handler{mw}
}
