package middleware

import (
	"context"
	"net/http"
	"strings"

	"chatfuture/internal/logging"
	"chatfuture/internal/service"
	"chatfuture/internal/storage"
)

// AuthMiddleware resolves the caller's identity from an optional bearer JWT
type AuthMiddleware struct {
	authSvc *service.AuthService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authSvc *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authSvc: authSvc}
}

// Identify puts the user identity into the request context. Requests without a
// token run as the anonymous identity; a token that fails validation is rejected.
func (m *AuthMiddleware) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := m.authSvc.Identity(extractBearerToken(r))
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"invalid or expired token","code":"invalid_token"}`))
			return
		}

		ctx := logging.WithUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the user identity from context
func GetUserID(ctx context.Context) string {
	return storage.UserID(logging.UserIDFromContext(ctx))
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
