package rest

import (
	"context"
	"net/http"

	"github.com/hrsuite/hrsuite-console/internal/domain/auth"
)

type AuthRepository struct {
	client *Client
}

var _ auth.Repository = (*AuthRepository)(nil)

func NewAuthRepository(client *Client) *AuthRepository {
	return &AuthRepository{client: client}
}

func (r *AuthRepository) Login(ctx context.Context, req auth.LoginRequest) (auth.Token, error) {
	var token auth.Token
	if err := r.client.do(ctx, http.MethodPost, "/auth/login", req, &token); err != nil {
		return auth.Token{}, err
	}
	return token, nil
}

func (r *AuthRepository) Register(ctx context.Context, req auth.RegisterRequest) (auth.Token, error) {
	var token auth.Token
	if err := r.client.do(ctx, http.MethodPost, "/auth/register", req, &token); err != nil {
		return auth.Token{}, err
	}
	return token, nil
}
