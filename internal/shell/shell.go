// Package shell is the navigation state machine: which screen is active,
// which screens the current session may reach, and the logout / forced-logout
// transitions.
package shell

import (
	"github.com/hrsuite/hrsuite-console/internal/domain/session"
	"github.com/hrsuite/hrsuite-console/internal/domain/user"
	"github.com/hrsuite/hrsuite-console/internal/view"
)

type Route string

const (
	RouteLogin       Route = "/login"
	RouteDashboard   Route = "/"
	RouteEmployees   Route = "/employees"
	RouteLeave       Route = "/leave"
	RoutePerformance Route = "/performance"
	RoutePayroll     Route = "/payroll"
	RouteAssistant   Route = "/ai-assistant"
)

// MenuItem is one side-menu entry.
type MenuItem struct {
	Route Route
	Title string
}

var menu = []MenuItem{
	{RouteDashboard, "Dashboard"},
	{RouteEmployees, "Employees"},
	{RouteLeave, "Leave Management"},
	{RoutePerformance, "Performance"},
	{RoutePayroll, "Payroll"},
	{RouteAssistant, "AI Assistant"},
}

type Shell struct {
	sessions session.Store
	notify   view.Notifier
	current  Route
}

// New starts at the dashboard when a session survives from a previous run,
// otherwise at the login screen.
func New(sessions session.Store, notify view.Notifier) *Shell {
	s := &Shell{sessions: sessions, notify: notify, current: RouteLogin}
	if s.Authenticated() {
		s.current = RouteDashboard
	}
	return s
}

func (s *Shell) Current() Route {
	return s.current
}

func (s *Shell) Authenticated() bool {
	_, err := s.sessions.Get()
	return err == nil
}

// Identity returns the signed-in user's profile for the menu header.
func (s *Shell) Identity() (user.User, bool) {
	sess, err := s.sessions.Get()
	if err != nil {
		return user.User{}, false
	}
	return sess.User, true
}

// MenuItems lists the screens reachable once signed in.
func (s *Shell) MenuItems() []MenuItem {
	return menu
}

// Navigate moves to a route. Every route except login requires a session;
// without one the shell lands on login instead. A signed-in user asking for
// login is sent to the dashboard. Unknown routes are ignored.
func (s *Shell) Navigate(r Route) {
	if !known(r) {
		return
	}
	authed := s.Authenticated()
	switch {
	case r == RouteLogin && authed:
		s.current = RouteDashboard
	case r != RouteLogin && !authed:
		s.current = RouteLogin
	default:
		s.current = r
	}
}

// Logout clears the session and lands on login. Safe to call when already
// logged out.
func (s *Shell) Logout() error {
	if err := s.sessions.Clear(); err != nil {
		return err
	}
	s.current = RouteLogin
	s.notify.Success("Logged out successfully")
	return nil
}

// HandleUnauthorized is the target of the REST client's 401 hook. The store
// is already cleared by the time it fires; the shell only has to move to the
// login screen and tell the user once. Repeat interceptions while already on
// login stay silent.
func (s *Shell) HandleUnauthorized() {
	if s.current == RouteLogin {
		return
	}
	s.current = RouteLogin
	s.notify.Error("Session expired. Please log in again.")
}

func known(r Route) bool {
	if r == RouteLogin {
		return true
	}
	for _, item := range menu {
		if item.Route == r {
			return true
		}
	}
	return false
}
