package response

import (
	"errors"
	"net/http"

	"github.com/hrsuite/hrsuite-console/internal/domain/auth"
	"github.com/hrsuite/hrsuite-console/internal/domain/employee"
	"github.com/hrsuite/hrsuite-console/internal/domain/leave"
	"github.com/hrsuite/hrsuite-console/internal/domain/performance"
	"github.com/hrsuite/hrsuite-console/internal/domain/user"
	"github.com/hrsuite/hrsuite-console/internal/pkg/forms"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs forms.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrEmailTaken):
		BadRequest(w, "Email already registered", nil)
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, err.Error(), nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		BadRequest(w, "Leave request already processed", nil)

	// Performance domain errors
	case errors.Is(err, performance.ErrInvalidRating):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
