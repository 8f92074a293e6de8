package middleware

import (
	"context"
	"net/http"
	"strings"

	"account-service/internal/domain"
	"account-service/pkg/response"
)

// SessionChecker reports whether a session is still live. Revoked sessions
// make an otherwise-valid token useless.
type SessionChecker interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
}

type AuthMiddleware struct {
	verifier *JWT
	sessions SessionChecker
}

func NewAuthMiddleware(verifier *JWT, sessions SessionChecker) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, sessions: sessions}
}

func extractBearer(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func (am *AuthMiddleware) authenticate(r *http.Request) (*Claims, bool) {
	token := extractBearer(r)
	if token == "" {
		return nil, false
	}
	claims, err := am.verifier.Verify(token)
	if err != nil {
		return nil, false
	}
	if _, err := am.sessions.Get(r.Context(), claims.SessionID); err != nil {
		return nil, false
	}
	return claims, true
}

// Require rejects requests without a valid, unrevoked session token.
func (am *AuthMiddleware) Require() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := am.authenticate(r)
			if !ok {
				response.Error(w, http.StatusUnauthorized, "authentication required")
				return
			}

			ctx := context.WithValue(r.Context(), ContextAccountID, claims.AccountID)
			ctx = context.WithValue(ctx, ContextSessionID, claims.SessionID)
			ctx = context.WithValue(ctx, ContextToken, extractBearer(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RejectAuthenticated is the guest guard: callers that already hold a live
// session may not pass, e.g. an authenticated client re-submitting sign-in.
func (am *AuthMiddleware) RejectAuthenticated() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := am.authenticate(r); ok {
				response.Error(w, http.StatusConflict, "already authenticated")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
