package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"account-service/internal/domain"
	xerrors "account-service/pkg/xerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySessions map[string]*domain.Session

func (m memorySessions) Get(ctx context.Context, id string) (*domain.Session, error) {
	if s, ok := m[id]; ok {
		return s, nil
	}
	return nil, xerrors.ErrSessionNotFound
}

func newAuthFixture(t *testing.T) (*AuthMiddleware, *JWT, memorySessions) {
	t.Helper()
	j := NewJWT("secret", "account-service", time.Hour)
	sessions := memorySessions{}
	return NewAuthMiddleware(j, sessions), j, sessions
}

func echoAccountID(w http.ResponseWriter, r *http.Request) {
	accountID, _ := GetAccountID(r.Context())
	_, _ = w.Write([]byte(accountID))
}

func TestRequire(t *testing.T) {
	am, j, sessions := newAuthFixture(t)
	handler := am.Require()(http.HandlerFunc(echoAccountID))

	token, _, err := j.Mint("acct-1", "sess-1")
	require.NoError(t, err)
	sessions["sess-1"] = &domain.Session{ID: "sess-1", AccountID: "acct-1"}

	t.Run("no token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("live session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "acct-1", rec.Body.String())
	})

	t.Run("revoked session", func(t *testing.T) {
		delete(sessions, "sess-1")
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRejectAuthenticated(t *testing.T) {
	am, j, sessions := newAuthFixture(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := am.RejectAuthenticated()(next)

	t.Run("guest passes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("stale token passes", func(t *testing.T) {
		token, _, err := j.Mint("acct-1", "gone")
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("authenticated caller is blocked", func(t *testing.T) {
		token, _, err := j.Mint("acct-1", "sess-1")
		require.NoError(t, err)
		sessions["sess-1"] = &domain.Session{ID: "sess-1", AccountID: "acct-1"}

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
