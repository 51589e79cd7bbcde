// Package metrics owns the Prometheus collectors for the site.
// Collectors live on a private registry so tests can build as many
// instances as they like without duplicate-registration panics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels shared by form and upload counters.
const (
	OutcomeSuccess = "success"
	OutcomeDemo    = "demo"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Metrics records what visitors and the operator do on the site.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry
	forms    *prometheus.CounterVec
	listings *prometheus.CounterVec
	uploads  *prometheus.CounterVec
}

// New registers the site collectors plus the Go runtime and process
// collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		forms: f.NewCounterVec(prometheus.CounterOpts{
			Name: "startrek_form_submissions_total",
			Help: "Form submissions by form and outcome.",
		}, []string{"form", "outcome"}),
		listings: f.NewCounterVec(prometheus.CounterOpts{
			Name: "startrek_trip_listings_total",
			Help: "Trip listings served, by whether they came from the store or the planned fallback.",
		}, []string{"source"}),
		uploads: f.NewCounterVec(prometheus.CounterOpts{
			Name: "startrek_image_uploads_total",
			Help: "Admin trip-image uploads by outcome.",
		}, []string{"outcome"}),
	}
}

// FormSubmitted counts one submission of form ("signup", "contact", "survey").
func (m *Metrics) FormSubmitted(form, outcome string) {
	if m == nil {
		return
	}
	m.forms.WithLabelValues(form, outcome).Inc()
}

// TripsListed counts one rendering of the trips section.
func (m *Metrics) TripsListed(fallback bool) {
	if m == nil {
		return
	}
	source := "db"
	if fallback {
		source = "fallback"
	}
	m.listings.WithLabelValues(source).Inc()
}

// ImageUploaded counts one admin upload attempt.
func (m *Metrics) ImageUploaded(outcome string) {
	if m == nil {
		return
	}
	m.uploads.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
