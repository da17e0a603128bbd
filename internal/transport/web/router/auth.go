package router

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/codebytes2/gamerec/internal/auth"
	"github.com/codebytes2/gamerec/internal/domain"
)

// AuthResult represents the result of a successful authentication.
type AuthResult struct {
	UserID string
	Roles  []domain.UserRole
}

// AuthValidator attempts to validate authentication from a request.
// Returns nil, nil if this validator doesn't apply (wrong auth type).
// Returns AuthResult, nil on success.
// Returns nil, error if validation was attempted but failed.
type AuthValidator func(r *http.Request) (*AuthResult, error)

// NewAuthMiddleware creates a middleware that validates requests using the
// given authentication methods. Requests that match no validator continue
// unauthenticated; public endpoints stay reachable and requireAuthMiddleware
// guards the rest.
func NewAuthMiddleware(validators []AuthValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, validate := range validators {
				result, err := validate(r)
				if result == nil && err == nil {
					continue // This validator doesn't apply
				}

				if err != nil {
					logger := domain.LoggerFromContext(r.Context())
					logger.WarnContext(r.Context(), "authentication failed", "error", err)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusUnauthorized)
					_, _ = fmt.Fprintf(w, `{"message":"%s"}`, err.Error())
					return
				}

				ctx := domain.ContextWithUserID(r.Context(), result.UserID)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// NewJWTValidator creates a validator for the service's own bearer tokens.
func NewJWTValidator(tokens *auth.JWT) AuthValidator {
	return func(r *http.Request) (*AuthResult, error) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return nil, nil
		}

		claims, err := tokens.Parse(authHeader[len("Bearer "):])
		if err != nil {
			return nil, fmt.Errorf("invalid access token")
		}

		return &AuthResult{
			UserID: claims.UserID,
			Roles:  claims.Roles,
		}, nil
	}
}
