package repository

import (
	"context"
	"fmt"
	"strconv"

	"account-service/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TicketRepository struct {
	db *pgxpool.Pool
}

func NewTicketRepository(db *pgxpool.Pool) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) Create(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error) {
	ticketID, err := strconv.ParseInt(t.ID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket ID: %w", err)
	}

	saved := *t
	err = r.db.QueryRow(ctx, `
		INSERT INTO support_tickets (id, reference, account_id, subject, message, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`, ticketID, t.Reference, t.AccountID, t.Subject, t.Message, t.Status).Scan(&saved.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert ticket: %w", err)
	}
	return &saved, nil
}
