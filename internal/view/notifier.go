// Package view holds the pieces shared by every screen: the notifier the
// views report outcomes through, and the generic list resource behind the
// fetch/render/mutate/refetch cycle.
package view

// Notifier is the transient-notification surface (the toast analogue).
// Views never render; they notify and the front-end decides how to show it.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// NopNotifier discards notifications. Useful in tests that assert on state
// rather than messages.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}
