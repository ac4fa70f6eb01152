package router

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/jbeshir/reading-queue/internal/domain"
)

const bearerPrefix = "Bearer "

// AuthResult represents the result of a successful authentication.
type AuthResult struct {
	UserID string
	Method domain.AuthMethod
}

// AuthValidator attempts to validate authentication from a request.
// Returns nil, nil if this validator doesn't apply (wrong auth type).
// Returns AuthResult, nil on success.
// Returns nil, error if validation was attempted but failed.
type AuthValidator func(r *http.Request) (*AuthResult, error)

// NewAuthMiddleware creates a middleware that validates requests using multiple authentication methods.
// The first validator that applies decides; requests no validator applies to pass through unauthenticated.
func NewAuthMiddleware(validators []AuthValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, validate := range validators {
				result, err := validate(r)
				if result == nil && err == nil {
					continue
				}

				if err != nil {
					logger := domain.LoggerFromContext(r.Context())
					logger.WarnContext(r.Context(), "authentication failed", "error", err)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusUnauthorized)
					_ = json.NewEncoder(w).Encode(map[string]string{"message": err.Error()})
					return
				}

				ctx := domain.ContextWithUserID(r.Context(), result.UserID)
				ctx = domain.ContextWithAuthMethod(ctx, result.Method)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// NewSingleUserValidator authenticates the one reader of a self-hosted
// instance. Any bearer token other than an auth0 one must equal token, and
// the request then acts as userID. Tokens are compared by hash in constant
// time.
func NewSingleUserValidator(userID, token string) AuthValidator {
	want := sha256.Sum256([]byte(token))

	return func(r *http.Request) (*AuthResult, error) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) || strings.HasPrefix(authHeader, auth0AuthHeaderPrefix) {
			return nil, nil
		}

		got := sha256.Sum256([]byte(authHeader[len(bearerPrefix):]))
		if subtle.ConstantTimeCompare(got[:], want[:]) != 1 {
			return nil, errors.New("invalid token")
		}

		return &AuthResult{
			UserID: userID,
			Method: domain.AuthMethodSingleUser,
		}, nil
	}
}
