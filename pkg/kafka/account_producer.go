package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"account-service/internal/domain"

	"github.com/IBM/sarama"
)

const (
	TopicAccountCreated = "account.created"
	TopicTicketCreated  = "ticket.created"
)

type AccountCreatedEvent struct {
	AccountID string    `json:"account_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type TicketCreatedEvent struct {
	TicketID  string    `json:"ticket_id"`
	Reference string    `json:"reference"`
	AccountID string    `json:"account_id"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`
}

// AccountEventProducer publishes lifecycle events for downstream consumers
// (welcome emails, support desk intake).
type AccountEventProducer struct {
	producer sarama.SyncProducer
}

func NewAccountEventProducer(brokers []string) (*AccountEventProducer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Return.Errors = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}
	return &AccountEventProducer{producer: producer}, nil
}

func (p *AccountEventProducer) publish(topic, key string, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(data),
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

func (p *AccountEventProducer) PublishAccountCreated(ctx context.Context, acc *domain.Account) error {
	return p.publish(TopicAccountCreated, acc.ID, AccountCreatedEvent{
		AccountID: acc.ID,
		Email:     acc.Email,
		CreatedAt: acc.CreatedAt,
	})
}

func (p *AccountEventProducer) PublishTicketCreated(ctx context.Context, t *domain.Ticket) error {
	return p.publish(TopicTicketCreated, t.ID, TicketCreatedEvent{
		TicketID:  t.ID,
		Reference: t.Reference,
		AccountID: t.AccountID,
		Subject:   t.Subject,
		CreatedAt: t.CreatedAt,
	})
}

func (p *AccountEventProducer) Close() error {
	return p.producer.Close()
}
