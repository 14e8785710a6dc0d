package stub

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hrsuite/hrsuite-console/internal/domain/user"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// TokenService signs and verifies the stub's HS256 access tokens.
type TokenService struct {
	tokenAuth  *jwtauth.JWTAuth
	expiration string
}

func NewTokenService(secret, expiration string) *TokenService {
	return &TokenService{
		tokenAuth:  jwtauth.New("HS256", []byte(secret), nil, jwt.WithAcceptableSkew(30*time.Second)),
		expiration: expiration,
	}
}

func (s *TokenService) JWTAuth() *jwtauth.JWTAuth {
	return s.tokenAuth
}

func (s *TokenService) GenerateAccessToken(u user.User) (string, error) {
	expDuration, err := time.ParseDuration(s.expiration)
	if err != nil {
		return "", err
	}

	_, tokenString, err := s.tokenAuth.Encode(map[string]interface{}{
		"sub":       u.ID,
		"email":     u.Email,
		"full_name": u.FullName,
		"role":      string(u.Role),
		"type":      "access",
		"exp":       time.Now().Add(expDuration).Unix(),
	})
	return tokenString, err
}

// identityFromClaims rebuilds the caller's profile from a verified token.
func identityFromClaims(claims map[string]interface{}) (user.User, error) {
	id, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	fullName, _ := claims["full_name"].(string)
	role, _ := claims["role"].(string)
	if id == "" || role == "" {
		return user.User{}, errors.New("token missing identity claims")
	}
	return user.User{ID: id, Email: email, FullName: fullName, Role: user.Role(role)}, nil
}
