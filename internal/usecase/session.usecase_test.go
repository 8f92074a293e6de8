package usecase

import (
	"context"
	"testing"
	"time"

	"account-service/pkg/id"
	"account-service/pkg/middleware"
	xerrors "account-service/pkg/xerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionFixture(t *testing.T) (*SessionUsecase, *fakeAccountStore, *fakeSessionStore, *middleware.JWT) {
	t.Helper()
	accounts := newFakeAccountStore()
	sessions := newFakeSessionStore()
	tokens := middleware.NewJWT("test-secret", "account-service", time.Hour)
	sf, err := id.NewSnowflake(1)
	require.NoError(t, err)
	return NewSessionUsecase(accounts, sessions, tokens, sf), accounts, sessions, tokens
}

func TestSignIn_IssuesVerifiableToken(t *testing.T) {
	uc, accounts, sessions, tokens := newSessionFixture(t)
	accountUC := newAccountUsecase(accounts)
	created := registerAccount(t, accountUC, "signin@x.com")

	view, err := uc.SignIn(context.Background(), "signin@x.com", "Secret1!", "203.0.113.9", "tests")
	require.NoError(t, err)
	assert.Equal(t, created.ID, view.AccountID)
	assert.NotEmpty(t, view.Token)
	assert.True(t, view.ExpiresAt.After(time.Now()))

	claims, err := tokens.Verify(view.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.AccountID)
	assert.Equal(t, view.SessionID, claims.SessionID)

	session, err := sessions.Get(context.Background(), view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, session.AccountID)
	assert.Equal(t, "203.0.113.9", session.IPAddress)
}

func TestSignIn_RejectsBadCredentials(t *testing.T) {
	uc, accounts, _, _ := newSessionFixture(t)
	registerAccount(t, newAccountUsecase(accounts), "signin@x.com")

	// Wrong password and unknown email are indistinguishable.
	_, err := uc.SignIn(context.Background(), "signin@x.com", "WrongPass1!", "", "")
	assert.ErrorIs(t, err, xerrors.ErrInvalidCredentials)

	_, err = uc.SignIn(context.Background(), "nobody@x.com", "Secret1!", "", "")
	assert.ErrorIs(t, err, xerrors.ErrInvalidCredentials)

	_, err = uc.SignIn(context.Background(), "", "", "", "")
	assert.ErrorIs(t, err, xerrors.ErrInvalidCredentials)
}

func TestSignOut_RevokesSession(t *testing.T) {
	uc, accounts, sessions, _ := newSessionFixture(t)
	registerAccount(t, newAccountUsecase(accounts), "signout@x.com")

	view, err := uc.SignIn(context.Background(), "signout@x.com", "Secret1!", "", "")
	require.NoError(t, err)

	require.NoError(t, uc.SignOut(context.Background(), view.SessionID))

	_, err = sessions.Get(context.Background(), view.SessionID)
	assert.ErrorIs(t, err, xerrors.ErrSessionNotFound)

	// Revoking again reports the session gone.
	assert.ErrorIs(t, uc.SignOut(context.Background(), view.SessionID), xerrors.ErrSessionNotFound)
	assert.ErrorIs(t, uc.SignOut(context.Background(), ""), xerrors.ErrSessionNotFound)
}
