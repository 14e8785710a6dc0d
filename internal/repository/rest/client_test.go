package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hrsuite/hrsuite-console/internal/domain/auth"
	"github.com/hrsuite/hrsuite-console/internal/domain/employee"
	"github.com/hrsuite/hrsuite-console/internal/domain/session"
	"github.com/hrsuite/hrsuite-console/internal/domain/user"
	"github.com/hrsuite/hrsuite-console/internal/pkg/sessionstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *sessionstore.MemoryStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	store := sessionstore.NewMemoryStore()
	return NewClient(srv.URL, 5*time.Second, store), store
}

func loggedIn(t *testing.T, store *sessionstore.MemoryStore) {
	t.Helper()
	require.NoError(t, store.Set(session.Session{
		Token: "test-token",
		User:  user.User{ID: "u-1", Role: user.RoleEmployee},
	}))
}

func TestClient_InjectsBearerTokenWhenSessionExists(t *testing.T) {
	var gotAuth, gotRequestID string
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		assert.Equal(t, "/api/employees", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": []employee.Employee{}})
	}))
	loggedIn(t, store)

	_, err := NewEmployeeRepository(client).List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestClient_SendsUnauthenticatedWithoutSession(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": []employee.Employee{}})
	}))

	_, err := NewEmployeeRepository(client).List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_UnauthorizedClearsSessionAndFiresHookOnce(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   map[string]string{"code": "UNAUTHORIZED", "message": "Token expired"},
		})
	}))
	loggedIn(t, store)

	hookCalls := 0
	client.OnUnauthorized(func() { hookCalls++ })

	_, err := NewEmployeeRepository(client).List(context.Background())

	assert.ErrorIs(t, err, auth.ErrSessionExpired)
	assert.Contains(t, err.Error(), "Token expired")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Token expired", apiErr.Message)
	assert.Equal(t, 1, hookCalls)
	_, err = store.Get()
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestClient_ErrorCarriesBackendMessage(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   map[string]string{"code": "CONFLICT", "message": "Leave request already processed"},
		})
	}))
	loggedIn(t, store)

	_, err := NewLeaveRepository(client).List(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "Leave request already processed", apiErr.Message)
}

func TestClient_ErrorReadsLegacyDetailField(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Email already registered"})
	}))
	loggedIn(t, store)

	_, err := NewAuthRepository(client).Register(context.Background(), auth.RegisterRequest{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Email already registered", apiErr.Message)
}

func TestClient_ErrorFallsBackToGenericMessage(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	loggedIn(t, store)

	_, err := NewEmployeeRepository(client).List(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Message)
}

func TestClient_DecodesBarePayloadWithoutEnvelope(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]employee.Employee{{ID: "e-1", Position: "Engineer"}})
	}))
	loggedIn(t, store)

	employees, err := NewEmployeeRepository(client).List(context.Background())

	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "Engineer", employees[0].Position)
}
