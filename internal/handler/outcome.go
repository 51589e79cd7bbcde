package handler

import (
	"errors"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/startrek-travel/internal/domain"
	"github.com/pkordes/startrek-travel/internal/metrics"
)

// outcome is how a submission ended, as far as the visitor is concerned.
type outcome int

const (
	outcomeSuccess outcome = iota
	// outcomeDemo means the store is not configured; treated as a soft success.
	outcomeDemo
	outcomeInvalid
	outcomeFailed
)

func classify(err error) outcome {
	switch {
	case err == nil:
		return outcomeSuccess
	case errors.Is(err, domain.ErrNotConfigured):
		return outcomeDemo
	case errors.Is(err, domain.ErrValidation):
		return outcomeInvalid
	default:
		return outcomeFailed
	}
}

func (o outcome) label() string {
	switch o {
	case outcomeSuccess:
		return metrics.OutcomeSuccess
	case outcomeDemo:
		return metrics.OutcomeDemo
	case outcomeInvalid:
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeError
	}
}

// status is the HTTP status a re-rendered page carries.
func (o outcome) status() int {
	switch o {
	case outcomeInvalid:
		return http.StatusUnprocessableEntity
	case outcomeFailed:
		return http.StatusInternalServerError
	default:
		return http.StatusOK
	}
}

// keepsInput reports whether the form should be re-filled with what the
// visitor typed. Successful and demo submissions clear it.
func (o outcome) keepsInput() bool {
	return o == outcomeInvalid || o == outcomeFailed
}

// observe classifies err, counts it and logs hosted-service failures.
func (s *Server) observe(r *http.Request, form string, err error) outcome {
	o := classify(err)
	s.metrics.FormSubmitted(form, o.label())
	switch o {
	case outcomeFailed:
		s.log.ErrorContext(r.Context(), "form submission failed",
			"form", form,
			"error", err,
			"request_id", chimiddleware.GetReqID(r.Context()),
		)
	case outcomeDemo:
		s.log.DebugContext(r.Context(), "form submitted in demo mode", "form", form)
	}
	return o
}

// notice is the server-rendered equivalent of a toast.
type notice struct {
	Title string
	Body  string
	Error bool
}

var failedNotice = notice{Title: "Error", Body: "Something went wrong. Please try again.", Error: true}

// notices holds the per-form texts for the two happy outcomes.
type notices struct {
	success notice
	demo    notice
}

func (n notices) pick(o outcome, err error) *notice {
	switch o {
	case outcomeSuccess:
		return &n.success
	case outcomeDemo:
		return &n.demo
	case outcomeInvalid:
		return &notice{Title: "Error", Body: sentence(unwrapMessage(err)), Error: true}
	default:
		f := failedNotice
		return &f
	}
}

var (
	signupNotices = notices{
		success: notice{Title: "Success!", Body: "Thank you for signing up! We'll keep you updated on new adventures."},
		demo:    notice{Title: "Demo Mode", Body: "Email signup is in demo mode. Connect a database to enable functionality."},
	}
	contactNotices = notices{
		success: notice{Title: "Message Sent!", Body: "Thank you for contacting us. We'll get back to you within 24 hours."},
		demo:    notice{Title: "Demo Mode", Body: "Contact form is in demo mode. Connect a database to enable functionality."},
	}
	surveyNotices = notices{
		success: notice{Title: "Thank You!", Body: "Your interest has been recorded. Your 10% off code will be sent to your email!"},
		demo:    notice{Title: "Thank You!", Body: "Your interest has been recorded. Your 10% off code will be sent to your email! (Demo mode)"},
	}
)

// sentence upper-cases the first letter and ends msg with a full stop.
// e.g. "email is required" -> "Email is required."
func sentence(msg string) string {
	if msg == "" {
		return msg
	}
	r, n := utf8.DecodeRuneInString(msg)
	msg = string(unicode.ToUpper(r)) + msg[n:]
	if !strings.HasSuffix(msg, ".") {
		msg += "."
	}
	return msg
}
