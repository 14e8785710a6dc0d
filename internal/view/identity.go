package view

import (
	"github.com/hrsuite/hrsuite-console/internal/domain/session"
	"github.com/hrsuite/hrsuite-console/internal/domain/user"
)

// CurrentUser returns the cached profile, or a zero User when logged out.
// A zero role grants no actions, so views degrade to read-only.
func CurrentUser(sessions session.Store) user.User {
	s, err := sessions.Get()
	if err != nil {
		return user.User{}
	}
	return s.User
}
