package session

import "github.com/hrsuite/hrsuite-console/internal/domain/user"

// Session is the authenticated identity the client holds between logins.
// The JSON field names are the two fixed keys the product has always used
// for its persisted client state.
type Session struct {
	Token string    `json:"hr_token"`
	User  user.User `json:"hr_user"`
}
