package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"account-service/internal/domain"
	"account-service/pkg/utils"
	xerrors "account-service/pkg/xerrors"

	"github.com/google/uuid"
)

// Register creates a new account. Validation failures come back as
// *domain.ValidationError; anything else is an infrastructure fault.
//
// The email lookup before Create is a fast path for a friendly error. The
// unique index on the credentials table is the source of truth: a concurrent
// duplicate that slips past the check still fails the insert and maps to the
// same field-keyed error.
func (uc *AccountUsecase) Register(ctx context.Context, req *domain.CreateAccountRequest) (*domain.AccountView, error) {
	email := strings.TrimSpace(req.Email)

	ve := &domain.ValidationError{}
	if email == "" {
		ve.Add("email", "is required")
	} else if !utils.ValidateEmail(email) {
		ve.Add("email", "is not a valid e-mail address")
	}
	if req.Password == "" {
		ve.Add("password", "is required")
	}
	if len(ve.Errors) > 0 {
		return nil, ve
	}

	if _, err := uc.store.GetByEmail(ctx, email); err == nil {
		return nil, domain.NewValidationError("email", "must be unique")
	} else if !errors.Is(err, xerrors.ErrAccountNotFound) {
		return nil, err
	}

	// Password policy failures are provider-level, keyed "*".
	if ok, err := utils.ValidatePassword(req.Password); !ok {
		return nil, domain.NewValidationError(domain.FieldGeneric, err.Error())
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	acc := &domain.Account{
		ID:            uuid.New().String(),
		Email:         email,
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		SecurityStamp: uuid.New().String(),
	}

	saved, err := uc.store.Create(ctx, acc, hash)
	if err != nil {
		if errors.Is(err, xerrors.ErrEmailTaken) {
			return nil, domain.NewValidationError("email", "must be unique")
		}
		return nil, err
	}

	if uc.producer != nil {
		go func() {
			if err := uc.producer.PublishAccountCreated(context.Background(), saved); err != nil {
				log.Printf("publish account.created for %s: %v", saved.ID, err)
			}
		}()
	}

	return domain.NewAccountView(saved, saved.IsAdmin), nil
}
