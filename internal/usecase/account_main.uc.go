package usecase

import (
	"context"

	"account-service/internal/authz"
	"account-service/internal/domain"
)

// AccountStore is the identity-store contract consumed by the account
// usecases. Create is atomic: either the account is fully persisted or
// nothing is.
type AccountStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	Create(ctx context.Context, acc *domain.Account, passwordHash string) (*domain.Account, error)
	IsAdmin(ctx context.Context, id string) (bool, error)
}

// Authorizer answers whether a principal satisfies a named policy against a
// resource.
type Authorizer interface {
	Authorize(ctx context.Context, p authz.Principal, resource *domain.Account, policy string) (bool, error)
}

// EventProducer publishes lifecycle events. May be nil when eventing is
// disabled.
type EventProducer interface {
	PublishAccountCreated(ctx context.Context, acc *domain.Account) error
	PublishTicketCreated(ctx context.Context, t *domain.Ticket) error
}

type AccountUsecase struct {
	store      AccountStore
	authorizer Authorizer
	producer   EventProducer
}

func NewAccountUsecase(store AccountStore, authorizer Authorizer, producer EventProducer) *AccountUsecase {
	return &AccountUsecase{
		store:      store,
		authorizer: authorizer,
		producer:   producer,
	}
}
