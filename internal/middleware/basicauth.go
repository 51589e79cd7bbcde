package middleware

import (
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// AdminRealm is the basic-auth realm shown by browsers for /admin.
const AdminRealm = "StarTrek Admin"

// NewAdminAuth returns chi's basic-auth middleware for a single operator
// account, or nil when password is empty so the admin routes stay open in
// local development.
func NewAdminAuth(user, password string) func(http.Handler) http.Handler {
	if password == "" {
		return nil
	}
	return chimiddleware.BasicAuth(AdminRealm, map[string]string{user: password})
}
