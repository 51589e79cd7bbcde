package handler

import (
	"encoding/json"
	"net/http"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/startrek-travel/internal/domain"
)

// Trip is the JSON form of an offering.
type Trip struct {
	ID          openapi_types.UUID `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Itinerary   string             `json:"itinerary"`
	Price       int                `json:"price"`
	ImageURL    *string            `json:"image_url,omitempty"`
	CreatedAt   *time.Time         `json:"created_at,omitempty"`
}

// TripListResponse is the body of GET /api/trips.
type TripListResponse struct {
	Data     []Trip `json:"data"`
	Fallback bool   `json:"fallback"`
}

// SignupRequest is the body of POST /api/signups.
type SignupRequest struct {
	Email string `json:"email"`
}

// MessageRequest is the body of POST /api/messages.
type MessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SurveyRequest is the body of POST /api/surveys.
type SurveyRequest struct {
	Email              string   `json:"email"`
	Destinations       []string `json:"destinations"`
	BudgetRange        string   `json:"budget_range"`
	TravelStyle        []string `json:"travel_style"`
	AccessibilityNeeds []string `json:"accessibility_needs"`
	AdditionalComments string   `json:"additional_comments"`
}

// SubmissionResponse acknowledges a stored (201) or demo-mode (202) submission.
type SubmissionResponse struct {
	Status string              `json:"status"`
	ID     *openapi_types.UUID `json:"id,omitempty"`
}

// apiListTrips handles GET /api/trips.
func (s *Server) apiListTrips(w http.ResponseWriter, r *http.Request) {
	listing := s.trips.Listing(r.Context())
	s.metrics.TripsListed(listing.Fallback)

	data := make([]Trip, len(listing.Offerings))
	for i, o := range listing.Offerings {
		data[i] = tripToResponse(o)
	}
	s.writeJSON(w, r, http.StatusOK, TripListResponse{Data: data, Fallback: listing.Fallback})
}

// apiCreateSignup handles POST /api/signups.
func (s *Server) apiCreateSignup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if !s.decode(w, r, &req) {
		return
	}
	out, err := s.signups.Submit(r.Context(), req.Email)
	s.respondSubmission(w, r, "signup", out.ID, err)
}

// apiCreateMessage handles POST /api/messages.
func (s *Server) apiCreateMessage(w http.ResponseWriter, r *http.Request) {
	var req MessageRequest
	if !s.decode(w, r, &req) {
		return
	}
	out, err := s.contacts.Send(r.Context(), domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	s.respondSubmission(w, r, "contact", out.ID, err)
}

// apiCreateSurvey handles POST /api/surveys.
func (s *Server) apiCreateSurvey(w http.ResponseWriter, r *http.Request) {
	var req SurveyRequest
	if !s.decode(w, r, &req) {
		return
	}
	out, err := s.surveys.Submit(r.Context(), domain.SurveyAnswers{
		Email:              req.Email,
		Destinations:       req.Destinations,
		BudgetRange:        req.BudgetRange,
		TravelStyle:        req.TravelStyle,
		AccessibilityNeeds: req.AccessibilityNeeds,
		AdditionalComments: req.AdditionalComments,
	})
	s.respondSubmission(w, r, "survey", out.ID, err)
}

func (s *Server) respondSubmission(w http.ResponseWriter, r *http.Request, form string, id openapi_types.UUID, err error) {
	switch s.observe(r, form, err) {
	case outcomeSuccess:
		s.writeJSON(w, r, http.StatusCreated, SubmissionResponse{Status: "created", ID: &id})
	case outcomeDemo:
		s.writeJSON(w, r, http.StatusAccepted, SubmissionResponse{Status: "demo"})
	case outcomeInvalid:
		s.writeJSON(w, r, http.StatusUnprocessableEntity, validationBody(err))
	default:
		s.writeJSON(w, r, http.StatusInternalServerError, internalBody())
	}
}

// decode reads a JSON body into v. On failure it writes a 422 and
// returns false. Field checks, email included, happen in the services so
// the API and the forms report the same messages.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil || r.Body == http.NoBody {
		s.writeJSON(w, r, http.StatusUnprocessableEntity, requestBody("request body is required"))
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeJSON(w, r, http.StatusUnprocessableEntity, requestBody("invalid request body: "+err.Error()))
		return false
	}
	return true
}

// writeJSON serializes payload with status and logs on failure.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.ErrorContext(r.Context(), "encode response", "error", err)
	}
}

func tripToResponse(o domain.Offering) Trip {
	t := Trip{
		ID:          o.ID,
		Title:       o.Title,
		Description: o.Description,
		Itinerary:   o.Itinerary,
		Price:       o.Price,
	}
	if o.ImageURL != "" {
		url := o.ImageURL
		t.ImageURL = &url
	}
	if !o.CreatedAt.IsZero() {
		at := o.CreatedAt
		t.CreatedAt = &at
	}
	return t
}
