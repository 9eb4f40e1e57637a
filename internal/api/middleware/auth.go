package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"Postboard/internal/auth"
	"Postboard/internal/core/users"
)

// Context keys for storing user information
type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	JWTClaimsKey contextKey = "jwt_claims"
)

// UserLookup resolves the user named by a verified token
type UserLookup interface {
	GetUser(ctx context.Context, id int64) (*users.User, error)
}

// AuthMiddleware enforces bearer token authentication for protected routes
type AuthMiddleware struct {
	tokens *auth.TokenManager
	users  UserLookup
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(tokens *auth.TokenManager, users UserLookup) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		users:  users,
	}
}

// RequireAuth middleware ensures the caller presents a valid access token for an existing user
// If not authenticated, returns 401
// If authenticated, injects the user ID and claims into context
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeAuthError(w, "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeAuthError(w, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		claims, err := m.tokens.Verify(token)
		if err != nil {
			slog.Warn("[AUTH_FAILURE] token verification failed",
				slog.String("ip", r.RemoteAddr),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("error", err.Error()),
			)
			writeAuthError(w, "Could not validate credentials")
			return
		}

		// A token can outlive its account
		if _, err := m.users.GetUser(r.Context(), claims.UserID); err != nil {
			if errors.Is(err, users.ErrUserNotFound) {
				slog.Warn("[AUTH_FAILURE] token for unknown user",
					slog.Int64("user_id", claims.UserID),
					slog.String("path", r.URL.Path),
				)
				writeAuthError(w, "Could not validate credentials")
				return
			}
			slog.Error("[AUTH_FAILURE] user lookup failed", slog.String("error", err.Error()))
			writeJSONError(w, http.StatusInternalServerError, "InternalServerError", "An internal error occurred")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, JWTClaimsKey, claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the authenticated user's ID from the request context
// Returns 0 if not authenticated
func GetUserID(r *http.Request) int64 {
	return GetAuthenticatedUserID(r.Context())
}

// GetAuthenticatedUserID extracts the authenticated user's ID from the context
// Returns 0 if not authenticated
func GetAuthenticatedUserID(ctx context.Context) int64 {
	id, _ := ctx.Value(UserIDKey).(int64)
	return id
}

// GetJWTClaims extracts the JWT claims from the request context
// Returns nil if not authenticated
func GetJWTClaims(r *http.Request) *auth.Claims {
	claims, _ := r.Context().Value(JWTClaimsKey).(*auth.Claims)
	return claims
}

// SetTestUserID sets the user ID in the context for testing purposes
// This function should ONLY be used in tests to mock authenticated users
func SetTestUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// writeAuthError writes a JSON error response for authentication failures
func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeJSONError(w, http.StatusUnauthorized, "AuthenticationRequired", message)
}

func writeJSONError(w http.ResponseWriter, status int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error":   errorType,
		"message": message,
	}); err != nil {
		slog.Error("failed to write error response", slog.String("error", err.Error()))
	}
}
