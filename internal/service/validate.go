package service

import (
	"encoding/json"
	"fmt"
	"strings"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/startrek-travel/internal/domain"
)

// validateEmail trims the address, rejects blanks as missing and checks the
// rest against the openapi Email pattern. Both the forms and the JSON API
// go through here.
func validateEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	// openapi_types.Email has no exported validator; MarshalJSON runs the
	// pattern match and returns ErrValidationEmail on a mismatch.
	if _, err := json.Marshal(openapi_types.Email(email)); err != nil {
		return "", fmt.Errorf("%w: email is not a valid address", domain.ErrValidation)
	}
	return email, nil
}

// required trims v and rejects it when empty.
func required(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", fmt.Errorf("%w: %s is required", domain.ErrValidation, field)
	}
	return v, nil
}
