package handler

import (
	"context"
	"net/http"

	"github.com/pkordes/startrek-travel/internal/domain"
)

// landingPage is the view model of index.html.
type landingPage struct {
	Listing   domain.Listing
	Signup    signupView
	Contact   contactView
	Survey    surveyView
	Catalogue catalogue
}

type signupView struct {
	Email  string
	Notice *notice
}

type contactView struct {
	Name    string
	Email   string
	Message string
	Notice  *notice
}

type surveyView struct {
	Answers   domain.SurveyAnswers
	Submitted bool
	Notice    *notice
}

type catalogue struct {
	Destinations  []string
	Budgets       []string
	TravelStyles  []string
	Accessibility []string
}

var surveyCatalogue = catalogue{
	Destinations:  domain.DestinationOptions,
	Budgets:       domain.BudgetOptions,
	TravelStyles:  domain.TravelStyleOptions,
	Accessibility: domain.AccessibilityOptions,
}

// landing builds the page with the current trip listing and empty forms.
func (s *Server) landing(ctx context.Context) landingPage {
	listing := s.trips.Listing(ctx)
	s.metrics.TripsListed(listing.Fallback)
	return landingPage{Listing: listing, Catalogue: surveyCatalogue}
}

// getLanding handles GET /.
func (s *Server) getLanding(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "index.html", s.landing(r.Context()))
}

// parseForm parses an urlencoded body. A malformed body is logged and the
// fields that did parse are kept, so validation reports what is missing.
func (s *Server) parseForm(r *http.Request, form string) {
	if err := r.ParseForm(); err != nil {
		s.log.WarnContext(r.Context(), "parse "+form+" form", "error", err)
	}
}

// postSignup handles POST /signup.
func (s *Server) postSignup(w http.ResponseWriter, r *http.Request) {
	s.parseForm(r, "signup")
	email := r.PostForm.Get("email")

	_, err := s.signups.Submit(r.Context(), email)
	o := s.observe(r, "signup", err)

	page := s.landing(r.Context())
	page.Signup.Notice = signupNotices.pick(o, err)
	if o.keepsInput() {
		page.Signup.Email = email
	}
	s.render(w, r, o.status(), "index.html", page)
}

// postContact handles POST /contact.
func (s *Server) postContact(w http.ResponseWriter, r *http.Request) {
	s.parseForm(r, "contact")
	msg := domain.ContactMessage{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Message: r.PostForm.Get("message"),
	}

	_, err := s.contacts.Send(r.Context(), msg)
	o := s.observe(r, "contact", err)

	page := s.landing(r.Context())
	page.Contact.Notice = contactNotices.pick(o, err)
	if o.keepsInput() {
		page.Contact.Name = msg.Name
		page.Contact.Email = msg.Email
		page.Contact.Message = msg.Message
	}
	s.render(w, r, o.status(), "index.html", page)
}

// postSurvey handles POST /interest. Demo mode still shows the submitted
// card, like a real success.
func (s *Server) postSurvey(w http.ResponseWriter, r *http.Request) {
	s.parseForm(r, "survey")
	answers := domain.SurveyAnswers{
		Email:              r.PostForm.Get("email"),
		Destinations:       r.PostForm["destinations"],
		BudgetRange:        r.PostForm.Get("budget_range"),
		TravelStyle:        r.PostForm["travel_style"],
		AccessibilityNeeds: r.PostForm["accessibility_needs"],
		AdditionalComments: r.PostForm.Get("additional_comments"),
	}

	_, err := s.surveys.Submit(r.Context(), answers)
	o := s.observe(r, "survey", err)

	page := s.landing(r.Context())
	page.Survey.Notice = surveyNotices.pick(o, err)
	if o.keepsInput() {
		page.Survey.Answers = answers
	} else {
		page.Survey.Submitted = true
	}
	s.render(w, r, o.status(), "index.html", page)
}
