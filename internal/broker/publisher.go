// Package broker publishes booking lifecycle events to a RabbitMQ topic
// exchange. Routing keys have the form booking.<status>.
package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stpnv0/SocietyBooker/internal/domain"
)

const routingPrefix = "booking."

type EntryEvent struct {
	EntryID       string               `json:"entry_id"`
	BuildingID    string               `json:"building_id"`
	Class         domain.ResourceClass `json:"class"`
	ResourceID    string               `json:"resource_id"`
	MemberID      string               `json:"member_id"`
	UnitID        string               `json:"unit_id"`
	Status        domain.EntryStatus   `json:"status"`
	PaymentStatus domain.PaymentStatus `json:"payment_status"`
	Amount        string               `json:"amount"`
	EffectiveAt   *time.Time           `json:"effective_at,omitempty"`
	OccurredAt    time.Time            `json:"occurred_at"`
}

func NewEntryEvent(e *domain.Entry) EntryEvent {
	return EntryEvent{
		EntryID:       e.ID,
		BuildingID:    e.BuildingID,
		Class:         e.Class,
		ResourceID:    e.ResourceID,
		MemberID:      e.MemberID,
		UnitID:        e.UnitID,
		Status:        e.Status,
		PaymentStatus: e.PaymentStatus,
		Amount:        e.Amount.StringFixed(2),
		EffectiveAt:   e.EffectiveAt,
		OccurredAt:    e.UpdatedAt,
	}
}

func RoutingKey(status domain.EntryStatus) string {
	return routingPrefix + string(status)
}

type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err = ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

func (p *Publisher) PublishEntry(ctx context.Context, e *domain.Entry) error {
	body, err := json.Marshal(NewEntryEvent(e))
	if err != nil {
		return fmt.Errorf("marshal entry event: %w", err)
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, RoutingKey(e.Status), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    e.ID + ":" + string(e.Status),
		Timestamp:    e.UpdatedAt,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish entry event: %w", err)
	}

	return nil
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// Noop is used when no broker URL is configured.
type Noop struct{}

func (Noop) PublishEntry(context.Context, *domain.Entry) error { return nil }

func (Noop) Close() error { return nil }
