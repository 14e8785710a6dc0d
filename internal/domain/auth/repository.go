package auth

import "context"

type Repository interface {
	Login(ctx context.Context, req LoginRequest) (Token, error)
	Register(ctx context.Context, req RegisterRequest) (Token, error)
}
