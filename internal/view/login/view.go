// Package login drives the combined login/registration screen. It is the only
// view reachable without a session, and the only place a session is created.
package login

import (
	"context"

	"github.com/hrsuite/hrsuite-console/internal/domain/auth"
	"github.com/hrsuite/hrsuite-console/internal/domain/session"
	"github.com/hrsuite/hrsuite-console/internal/domain/user"
	"github.com/hrsuite/hrsuite-console/internal/view"
)

type Form struct {
	Email    string
	Password string
	FullName string
	Role     string
}

type View struct {
	repo     auth.Repository
	sessions session.Store
	notify   view.Notifier

	Registering bool
	Form        Form
}

func New(repo auth.Repository, sessions session.Store, notify view.Notifier) *View {
	return &View{
		repo:     repo,
		sessions: sessions,
		notify:   notify,
		Form:     defaultForm(),
	}
}

func defaultForm() Form {
	return Form{Role: string(user.RoleEmployee)}
}

// ToggleMode switches between login and registration without losing the
// form's entered values.
func (v *View) ToggleMode() {
	v.Registering = !v.Registering
}

// Submit authenticates (or registers) and stores the returned session. On
// failure the form keeps its entered values and the error is surfaced.
func (v *View) Submit(ctx context.Context) error {
	token, err := v.authenticate(ctx)
	if err != nil {
		v.notify.Error(view.ErrorMessage(err, "An error occurred"))
		return err
	}

	if err := v.sessions.Set(session.Session{Token: token.AccessToken, User: token.User}); err != nil {
		v.notify.Error("Failed to save session")
		return err
	}

	if v.Registering {
		v.notify.Success("Registration successful!")
	} else {
		v.notify.Success("Login successful!")
	}
	v.Form = defaultForm()
	return nil
}

func (v *View) authenticate(ctx context.Context) (auth.Token, error) {
	if v.Registering {
		req := auth.RegisterRequest{
			Email:    v.Form.Email,
			Password: v.Form.Password,
			FullName: v.Form.FullName,
			Role:     user.Role(v.Form.Role),
		}
		if err := req.Validate(); err != nil {
			return auth.Token{}, err
		}
		return v.repo.Register(ctx, req)
	}

	req := auth.LoginRequest{Email: v.Form.Email, Password: v.Form.Password}
	if err := req.Validate(); err != nil {
		return auth.Token{}, err
	}
	return v.repo.Login(ctx, req)
}
