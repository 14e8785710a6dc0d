package view

import (
	"errors"

	"github.com/hrsuite/hrsuite-console/internal/pkg/forms"
	"github.com/hrsuite/hrsuite-console/internal/repository/rest"
)

// ErrorMessage picks the text a failure is surfaced with: the backend's own
// message when it provided one, validation detail for local form errors, and
// the view's generic fallback otherwise.
func ErrorMessage(err error, fallback string) string {
	var apiErr *rest.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	var validationErrs forms.ValidationErrors
	if errors.As(err, &validationErrs) {
		return validationErrs.Error()
	}

	return fallback
}
