package auth

import (
	"github.com/hrsuite/hrsuite-console/internal/domain/user"
	"github.com/hrsuite/hrsuite-console/internal/pkg/forms"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs forms.ValidationErrors

	if forms.IsEmpty(r.Email) {
		errs = append(errs, forms.ValidationError{Field: "email", Message: "email is required"})
	}
	if forms.IsEmpty(r.Password) {
		errs = append(errs, forms.ValidationError{Field: "password", Message: "password is required"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RegisterRequest struct {
	Email    string    `json:"email"`
	Password string    `json:"password"`
	FullName string    `json:"full_name"`
	Role     user.Role `json:"role"`
}

func (r *RegisterRequest) Validate() error {
	var errs forms.ValidationErrors

	if forms.IsEmpty(r.Email) {
		errs = append(errs, forms.ValidationError{Field: "email", Message: "email is required"})
	}
	if forms.IsEmpty(r.Password) {
		errs = append(errs, forms.ValidationError{Field: "password", Message: "password is required"})
	}
	if forms.IsEmpty(r.FullName) {
		errs = append(errs, forms.ValidationError{Field: "full_name", Message: "full_name is required"})
	}
	if !user.ValidRole(r.Role) {
		errs = append(errs, forms.ValidationError{Field: "role", Message: "role must be employee, manager or hr_admin"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Token is the backend's response to a successful login or registration.
type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	User        user.User `json:"user"`
}
