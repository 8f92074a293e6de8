package usecase

import (
	"context"
	"sync"
	"time"

	"account-service/internal/domain"
	"account-service/pkg/utils"
	xerrors "account-service/pkg/xerrors"
)

// fakeAccountStore is an in-memory identity store enforcing the same email
// uniqueness rule as the real one.
type fakeAccountStore struct {
	mu         sync.Mutex
	accounts   map[string]*domain.Account
	hashes     map[string]string
	failCreate error
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{
		accounts: make(map[string]*domain.Account),
		hashes:   make(map[string]string),
	}
}

func (s *fakeAccountStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.accounts {
		if utils.NormalizeEmail(acc.Email) == utils.NormalizeEmail(email) {
			copied := *acc
			return &copied, nil
		}
	}
	return nil, xerrors.ErrAccountNotFound
}

func (s *fakeAccountStore) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[id]
	if !ok {
		return nil, xerrors.ErrAccountNotFound
	}
	copied := *acc
	return &copied, nil
}

func (s *fakeAccountStore) Create(ctx context.Context, acc *domain.Account, passwordHash string) (*domain.Account, error) {
	if s.failCreate != nil {
		return nil, s.failCreate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.accounts {
		if utils.NormalizeEmail(existing.Email) == utils.NormalizeEmail(acc.Email) {
			return nil, xerrors.ErrEmailTaken
		}
	}
	saved := *acc
	saved.CreatedAt = time.Now()
	saved.UpdatedAt = saved.CreatedAt
	s.accounts[saved.ID] = &saved
	s.hashes[saved.ID] = passwordHash
	copied := saved
	return &copied, nil
}

func (s *fakeAccountStore) IsAdmin(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[id]
	if !ok {
		return false, xerrors.ErrAccountNotFound
	}
	return acc.IsAdmin, nil
}

func (s *fakeAccountStore) GetByEmailWithHash(ctx context.Context, email string) (*domain.Account, string, error) {
	acc, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return acc, s.hashes[acc.ID], nil
}

func (s *fakeAccountStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.accounts)
}

func (s *fakeAccountStore) setAdmin(id string, isAdmin bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if acc, ok := s.accounts[id]; ok {
		acc.IsAdmin = isAdmin
	}
}

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*domain.Session)}
}

func (s *fakeSessionStore) Save(ctx context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *session
	s.sessions[session.ID] = &copied
	return nil
}

func (s *fakeSessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, xerrors.ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (s *fakeSessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return xerrors.ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

type fakeTicketStore struct {
	mu      sync.Mutex
	tickets []*domain.Ticket
}

func (s *fakeTicketStore) Create(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	saved := *t
	saved.CreatedAt = time.Now()
	s.tickets = append(s.tickets, &saved)
	copied := saved
	return &copied, nil
}
