package stub

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hrsuite/hrsuite-console/internal/domain/user"
	"github.com/hrsuite/hrsuite-console/internal/stub/response"
)

// AuthRequired rejects requests whose token is missing, unverifiable, or not
// an access token.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.Unauthorized(w, "Missing access token")
				return
			}
			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.Unauthorized(w, "Invalid access token")
				return
			}
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// RequireRole limits a route to the given roles. Runs after AuthRequired, so
// the claims are already verified.
func RequireRole(roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			caller, err := identityFromClaims(claims)
			if err != nil {
				response.Unauthorized(w, "Invalid access token")
				return
			}
			for _, role := range roles {
				if caller.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			response.Forbidden(w, "Insufficient permissions")
		}
		return http.HandlerFunc(hfn)
	}
}
