package usecase

import (
	"context"

	"account-service/internal/authz"
	"account-service/internal/domain"
	xerrors "account-service/pkg/xerrors"

	"github.com/google/uuid"
)

// GetAccount returns the public view of an account. A missing account is
// reported before authorization runs, so an unknown id is a 404 for every
// caller.
func (uc *AccountUsecase) GetAccount(ctx context.Context, p authz.Principal, targetID string) (*domain.AccountView, error) {
	if _, err := uuid.Parse(targetID); err != nil {
		return nil, xerrors.ErrAccountNotFound
	}

	acc, err := uc.store.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	granted, err := uc.authorizer.Authorize(ctx, p, acc, authz.PolicyOwnerOrAdmin)
	if err != nil {
		return nil, err
	}
	if !granted {
		return nil, xerrors.ErrUnauthorized
	}

	// Admin status has its own lookup; resolve it before building the view.
	isAdmin, err := uc.store.IsAdmin(ctx, acc.ID)
	if err != nil {
		return nil, err
	}

	return domain.NewAccountView(acc, isAdmin), nil
}
