package login

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hrsuite/hrsuite-console/internal/domain/auth"
	"github.com/hrsuite/hrsuite-console/internal/domain/session"
	"github.com/hrsuite/hrsuite-console/internal/domain/user"
	"github.com/hrsuite/hrsuite-console/internal/pkg/sessionstore"
	"github.com/hrsuite/hrsuite-console/internal/repository/rest"
	"github.com/hrsuite/hrsuite-console/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthRepo struct {
	loginCalls    int
	registerCalls int
	lastLogin     auth.LoginRequest
	lastRegister  auth.RegisterRequest
	token         auth.Token
	err           error
}

func (f *fakeAuthRepo) Login(_ context.Context, req auth.LoginRequest) (auth.Token, error) {
	f.loginCalls++
	f.lastLogin = req
	return f.token, f.err
}

func (f *fakeAuthRepo) Register(_ context.Context, req auth.RegisterRequest) (auth.Token, error) {
	f.registerCalls++
	f.lastRegister = req
	return f.token, f.err
}

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *recordingNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }

func TestView_LoginStoresSessionAndResetsForm(t *testing.T) {
	repo := &fakeAuthRepo{token: auth.Token{
		AccessToken: "tok-123",
		TokenType:   "bearer",
		User:        user.User{ID: "u-1", Email: "jane@corp.test", Role: user.RoleManager},
	}}
	store := sessionstore.NewMemoryStore()
	notify := &recordingNotifier{}
	v := New(repo, store, notify)
	v.Form.Email = "jane@corp.test"
	v.Form.Password = "secret"

	require.NoError(t, v.Submit(context.Background()))

	s, err := store.Get()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", s.Token)
	assert.Equal(t, user.RoleManager, s.User.Role)
	assert.Equal(t, auth.LoginRequest{Email: "jane@corp.test", Password: "secret"}, repo.lastLogin)
	assert.Equal(t, []string{"Login successful!"}, notify.successes)
	assert.Empty(t, v.Form.Email)
	assert.Empty(t, v.Form.Password)
}

func TestView_LoginFailureKeepsFormAndSurfacesBackendMessage(t *testing.T) {
	repo := &fakeAuthRepo{err: &rest.APIError{
		StatusCode: http.StatusUnauthorized,
		Message:    "Invalid email or password",
	}}
	store := sessionstore.NewMemoryStore()
	notify := &recordingNotifier{}
	v := New(repo, store, notify)
	v.Form.Email = "jane@corp.test"
	v.Form.Password = "wrong"

	err := v.Submit(context.Background())

	require.Error(t, err)
	assert.Equal(t, []string{"Invalid email or password"}, notify.errors)
	assert.Equal(t, "jane@corp.test", v.Form.Email)
	assert.Equal(t, "wrong", v.Form.Password)
	_, err = store.Get()
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestView_RejectedLoginSurfacesBackendMessageEndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid email or password"})
	}))
	t.Cleanup(srv.Close)

	store := sessionstore.NewMemoryStore()
	client := rest.NewClient(srv.URL, 5*time.Second, store)
	notify := &recordingNotifier{}
	v := New(rest.NewAuthRepository(client), store, notify)
	v.Form.Email = "jane@corp.test"
	v.Form.Password = "wrong"

	err := v.Submit(context.Background())

	require.Error(t, err)
	assert.Equal(t, []string{"Invalid email or password"}, notify.errors)
}

func TestView_RegisterSendsFullProfile(t *testing.T) {
	repo := &fakeAuthRepo{token: auth.Token{
		AccessToken: "tok-456",
		User:        user.User{ID: "u-2", Role: user.RoleEmployee},
	}}
	store := sessionstore.NewMemoryStore()
	notify := &recordingNotifier{}
	v := New(repo, store, notify)
	v.ToggleMode()
	v.Form = Form{
		Email:    "new@corp.test",
		Password: "secret",
		FullName: "New Hire",
		Role:     string(user.RoleEmployee),
	}

	require.NoError(t, v.Submit(context.Background()))

	assert.Equal(t, 1, repo.registerCalls)
	assert.Zero(t, repo.loginCalls)
	assert.Equal(t, "New Hire", repo.lastRegister.FullName)
	assert.Equal(t, user.RoleEmployee, repo.lastRegister.Role)
	assert.Equal(t, []string{"Registration successful!"}, notify.successes)
}

func TestView_LocalValidationSkipsBackendCall(t *testing.T) {
	repo := &fakeAuthRepo{}
	v := New(repo, sessionstore.NewMemoryStore(), &recordingNotifier{})

	err := v.Submit(context.Background())

	require.Error(t, err)
	assert.Zero(t, repo.loginCalls)
}

func TestView_ToggleModeKeepsEnteredValues(t *testing.T) {
	v := New(&fakeAuthRepo{}, sessionstore.NewMemoryStore(), view.NopNotifier{})
	v.Form.Email = "typed@corp.test"

	v.ToggleMode()

	assert.True(t, v.Registering)
	assert.Equal(t, "typed@corp.test", v.Form.Email)
}

func TestView_DefaultRoleIsEmployee(t *testing.T) {
	v := New(&fakeAuthRepo{}, sessionstore.NewMemoryStore(), view.NopNotifier{})
	assert.Equal(t, string(user.RoleEmployee), v.Form.Role)
}
