package session

// Store persists the session across process restarts on this machine.
// Implementations must be safe for use from the request interceptor and the
// shell at the same time, and Set/Clear must be idempotent: clearing an empty
// store or overwriting with identical values is a no-op in effect.
type Store interface {
	// Get returns the stored session, or ErrNoSession when logged out.
	Get() (Session, error)
	Set(s Session) error
	Clear() error
}
