// Package stub is an in-memory implementation of the HR backend's /api
// surface. It exists as a development and test double; production deploys
// point the client at the real backend instead.
package stub

import (
	"encoding/json"
	"net/http"

	"github.com/hrsuite/hrsuite-console/internal/domain/auth"
	"github.com/hrsuite/hrsuite-console/internal/domain/user"
	"github.com/hrsuite/hrsuite-console/internal/stub/response"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	store  *Store
	tokens *TokenService
}

func NewAuthHandler(store *Store, tokens *TokenService) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	u, err := h.store.CreateAccount(req.Email, hash, req.FullName, req.Role)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.respondWithToken(w, u, http.StatusCreated)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	account, ok := h.store.AccountByEmail(req.Email)
	if !ok {
		response.HandleError(w, auth.ErrInvalidCredentials)
		return
	}
	if err := bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(req.Password)); err != nil {
		response.HandleError(w, auth.ErrInvalidCredentials)
		return
	}

	h.respondWithToken(w, account.User, http.StatusOK)
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, u user.User, status int) {
	tokenString, err := h.tokens.GenerateAccessToken(u)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	token := auth.Token{
		AccessToken: tokenString,
		TokenType:   "bearer",
		User:        u,
	}
	if status == http.StatusCreated {
		response.Created(w, "Account registered", token)
		return
	}
	response.Success(w, token)
}
