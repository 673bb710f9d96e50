package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/logger"
	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/security"
)

type contextKey string

const (
	contextKeyEmail     contextKey = "email"
	contextKeyRequestID contextKey = "request_id"
)

// RequestID attaches a correlation ID to every request and echoes it back in
// the X-Request-ID header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), contextKeyRequestID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthMiddleware guards dashboard endpoints with the session token issued on
// OTP verification.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "missing session token")
			return
		}

		claims, err := m.tokens.ValidateToken(token, security.TokenTypeSession)
		if err != nil {
			logger.Debug("session token rejected", "error", err)
			writeError(w, http.StatusUnauthorized, "invalid or expired session token")
			return
		}

		ctx := context.WithValue(r.Context(), contextKeyEmail, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// EmailFromContext returns the authenticated email, if any.
func EmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(contextKeyEmail).(string)
	return email
}
