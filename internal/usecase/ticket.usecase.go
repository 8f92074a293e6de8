package usecase

import (
	"context"
	"log"
	"strings"

	"account-service/internal/domain"
	"account-service/pkg/id"
)

type TicketStore interface {
	Create(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error)
}

type TicketUsecase struct {
	store    TicketStore
	sf       *id.Snowflake
	producer EventProducer
}

func NewTicketUsecase(store TicketStore, sf *id.Snowflake, producer EventProducer) *TicketUsecase {
	return &TicketUsecase{
		store:    store,
		sf:       sf,
		producer: producer,
	}
}

func (uc *TicketUsecase) CreateTicket(ctx context.Context, accountID string, req *domain.CreateTicketRequest) (*domain.TicketView, error) {
	subject := strings.TrimSpace(req.Subject)
	message := strings.TrimSpace(req.Message)

	ve := &domain.ValidationError{}
	if subject == "" {
		ve.Add("subject", "is required")
	}
	if message == "" {
		ve.Add("message", "is required")
	}
	if len(ve.Errors) > 0 {
		return nil, ve
	}

	ticket := &domain.Ticket{
		ID:        uc.sf.Generate(),
		Reference: id.NewTicketRef(),
		AccountID: accountID,
		Subject:   subject,
		Message:   message,
		Status:    domain.TicketStatusOpen,
	}

	saved, err := uc.store.Create(ctx, ticket)
	if err != nil {
		return nil, err
	}

	if uc.producer != nil {
		go func() {
			if err := uc.producer.PublishTicketCreated(context.Background(), saved); err != nil {
				log.Printf("publish ticket.created for %s: %v", saved.ID, err)
			}
		}()
	}

	return domain.NewTicketView(saved), nil
}
