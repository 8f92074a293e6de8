package domain

import "time"

const (
	TicketStatusOpen   = "open"
	TicketStatusClosed = "closed"
)

type Ticket struct {
	ID        string
	Reference string
	AccountID string
	Subject   string
	Message   string
	Status    string
	CreatedAt time.Time
}

type CreateTicketRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type TicketView struct {
	ID        string    `json:"id"`
	Reference string    `json:"reference"`
	Subject   string    `json:"subject"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewTicketView(t *Ticket) *TicketView {
	return &TicketView{
		ID:        t.ID,
		Reference: t.Reference,
		Subject:   t.Subject,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
	}
}
