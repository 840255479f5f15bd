package ports

import (
	"context"
	"time"

	"github.com/stpnv0/SocietyBooker/internal/domain"
)

type LedgerRepo interface {
	Create(ctx context.Context, e *domain.Entry) error
	GetByID(ctx context.Context, buildingID, id string) (*domain.Entry, error)
	// Transition is a compare-and-set on status; it fails with
	// domain.ErrInvalidTransition when the current status is not from.
	Transition(ctx context.Context, buildingID, id string, from, to domain.EntryStatus, actorID string, at time.Time) (*domain.Entry, error)
	FindActiveByResource(ctx context.Context, buildingID, resourceID string) (*domain.Entry, error)
	ListByRequester(ctx context.Context, buildingID, memberID string, statuses []domain.EntryStatus) ([]*domain.Entry, error)
	ListByStatus(ctx context.Context, buildingID string, class domain.ResourceClass, statuses []domain.EntryStatus) ([]*domain.Entry, error)
	CancelExpiredPending(ctx context.Context, now time.Time) ([]*domain.Entry, error)
	MarkPaid(ctx context.Context, buildingID, id string, at time.Time) (*domain.Entry, error)
	CountByStatus(ctx context.Context, buildingID string) (map[domain.EntryStatus]int, error)
}
