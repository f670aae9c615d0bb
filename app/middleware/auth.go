package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"patternshelf/service"
)

type contextKey string

const userIDKey contextKey = "userID"

// AuthMiddleware gates handlers behind a valid Bearer access token.
type AuthMiddleware struct {
	auth service.AuthServiceInterface
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(auth service.AuthServiceInterface) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// RequireAuth verifies the Authorization header and stores the caller's
// user id in the request context. Rejects with 401 on any failure.
func (m *AuthMiddleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			unauthorized(w, "missing bearer token")
			return
		}

		userID, err := m.auth.VerifyAccessToken(token)
		if err != nil {
			unauthorized(w, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next(w, r.WithContext(ctx))
	}
}

// UserID returns the authenticated caller's id from the request context.
func UserID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
