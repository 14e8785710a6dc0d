package auth

import "errors"

var (
	// ErrSessionExpired marks any 401 from the backend; by the time a caller
	// sees it the session store has already been cleared and navigation to
	// the login view has been triggered.
	ErrSessionExpired     = errors.New("session expired")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)
