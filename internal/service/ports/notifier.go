package ports

import (
	"context"

	"github.com/stpnv0/SocietyBooker/internal/domain"
)

type BookingNotifier interface {
	NotifyEntry(ctx context.Context, member *domain.Member, entry *domain.Entry)
	SendCode(ctx context.Context, member *domain.Member, code string) error
}

// EventPublisher emits booking lifecycle events to other services.
type EventPublisher interface {
	PublishEntry(ctx context.Context, entry *domain.Entry) error
}
