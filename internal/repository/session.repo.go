package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"account-service/internal/domain"
	xerrors "account-service/pkg/xerrors"

	"github.com/redis/go-redis/v9"
)

// SessionRepository keeps sessions in Redis; the key TTL matches the token
// lifetime so revocation and expiry share one mechanism.
type SessionRepository struct {
	rdb *redis.Client
}

func NewSessionRepository(rdb *redis.Client) *SessionRepository {
	return &SessionRepository{rdb: rdb}
}

func sessionKey(id string) string {
	return "session:" + id
}

func (r *SessionRepository) Save(ctx context.Context, s *domain.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return errors.New("session already expired")
	}
	return r.rdb.Set(ctx, sessionKey(s.ID), data, ttl).Err()
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	data, err := r.rdb.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, xerrors.ErrSessionNotFound
		}
		return nil, err
	}
	s := new(domain.Session)
	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	deleted, err := r.rdb.Del(ctx, sessionKey(id)).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return xerrors.ErrSessionNotFound
	}
	return nil
}
