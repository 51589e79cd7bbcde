// Package middleware provides the HTTP middleware the site composes in
// cmd/api: request logging, CORS for the JSON API, admin basic auth and an
// upload size cap.
package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// NewCORSHandler returns a middleware that applies CORS headers for the
// /api routes. Each entry in allowedOrigins must be a full origin (scheme +
// host, no trailing slash). The API only reads trips and accepts JSON
// submissions, so only GET and POST are allowed.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	})
	return c.Handler
}
