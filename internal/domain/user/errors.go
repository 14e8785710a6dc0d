package user

import "errors"

var (
	ErrInvalidRole = errors.New("role must be employee, manager or hr_admin")
)
