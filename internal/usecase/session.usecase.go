package usecase

import (
	"context"
	"time"

	"account-service/internal/domain"
	"account-service/pkg/id"
	"account-service/pkg/utils"
	xerrors "account-service/pkg/xerrors"
)

type CredentialStore interface {
	GetByEmailWithHash(ctx context.Context, email string) (*domain.Account, string, error)
}

type SessionStore interface {
	Save(ctx context.Context, s *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

type TokenIssuer interface {
	Mint(accountID, sessionID string) (string, time.Time, error)
}

type SessionUsecase struct {
	accounts CredentialStore
	sessions SessionStore
	tokens   TokenIssuer
	sf       *id.Snowflake
}

func NewSessionUsecase(accounts CredentialStore, sessions SessionStore, tokens TokenIssuer, sf *id.Snowflake) *SessionUsecase {
	return &SessionUsecase{
		accounts: accounts,
		sessions: sessions,
		tokens:   tokens,
		sf:       sf,
	}
}

// SignIn verifies credentials and opens a session. Unknown email and wrong
// password are indistinguishable to the caller.
func (uc *SessionUsecase) SignIn(ctx context.Context, email, password, ipAddress, userAgent string) (*domain.SessionView, error) {
	if email == "" || password == "" {
		return nil, xerrors.ErrInvalidCredentials
	}

	acc, hash, err := uc.accounts.GetByEmailWithHash(ctx, email)
	if err != nil {
		return nil, xerrors.ErrInvalidCredentials
	}
	if !utils.CheckPassword(hash, password) {
		return nil, xerrors.ErrInvalidCredentials
	}

	sessionID := uc.sf.Generate()
	token, expiresAt, err := uc.tokens.Mint(acc.ID, sessionID)
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		ID:        sessionID,
		AccountID: acc.ID,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		CreatedAt: time.Now(),
		ExpiresAt: expiresAt,
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	return &domain.SessionView{
		SessionID: sessionID,
		AccountID: acc.ID,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// SignOut revokes the session; the matching token stops working immediately.
func (uc *SessionUsecase) SignOut(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return xerrors.ErrSessionNotFound
	}
	return uc.sessions.Delete(ctx, sessionID)
}
