// Package authz answers policy-based access-control questions for account
// resources.
package authz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"account-service/internal/domain"
	xerrors "account-service/pkg/xerrors"

	"github.com/redis/go-redis/v9"
)

// PolicyOwnerOrAdmin grants access iff the principal is the resource itself
// or holds administrator privilege.
const PolicyOwnerOrAdmin = "resource-owner-or-admin"

// Principal identifies the authenticated caller.
type Principal struct {
	AccountID string
}

// AdminChecker is the administrator-status lookup, backed by the account
// store.
type AdminChecker interface {
	IsAdmin(ctx context.Context, accountID string) (bool, error)
}

// Evaluator decides named policies. The admin flag is cached in Redis with a
// short TTL; a nil client disables caching.
type Evaluator struct {
	checker AdminChecker
	rdb     *redis.Client
}

func NewEvaluator(checker AdminChecker, rdb *redis.Client) *Evaluator {
	return &Evaluator{checker: checker, rdb: rdb}
}

const adminCacheTTL = 5 * time.Minute

func (e *Evaluator) Authorize(ctx context.Context, p Principal, resource *domain.Account, policy string) (bool, error) {
	switch policy {
	case PolicyOwnerOrAdmin:
		if p.AccountID == "" || resource == nil {
			return false, nil
		}
		if p.AccountID == resource.ID {
			return true, nil
		}
		return e.isAdmin(ctx, p.AccountID)
	default:
		return false, fmt.Errorf("unknown policy: %s", policy)
	}
}

func (e *Evaluator) isAdmin(ctx context.Context, accountID string) (bool, error) {
	cacheKey := "authz:admin:" + accountID

	if e.rdb != nil {
		if cached, err := e.rdb.Get(ctx, cacheKey).Result(); err == nil {
			return cached == "1", nil
		}
	}

	isAdmin, err := e.checker.IsAdmin(ctx, accountID)
	if err != nil {
		// A principal the store no longer knows is simply not an admin.
		if errors.Is(err, xerrors.ErrAccountNotFound) {
			return false, nil
		}
		return false, err
	}

	if e.rdb != nil {
		val := "0"
		if isAdmin {
			val = "1"
		}
		_ = e.rdb.Set(ctx, cacheKey, val, adminCacheTTL).Err()
	}
	return isAdmin, nil
}
