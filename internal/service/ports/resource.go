package ports

import (
	"context"
	"time"

	"github.com/stpnv0/SocietyBooker/internal/domain"
)

type PoolRepo interface {
	Create(ctx context.Context, p *domain.Pool) error
	GetByID(ctx context.Context, buildingID, id string) (*domain.Pool, error)
	List(ctx context.Context, buildingID string, class domain.ResourceClass) ([]*domain.Pool, error)
}

// ResourceRepo owns availability of discrete resources. Reserve and Release
// are conditional updates: they never read-then-write.
type ResourceRepo interface {
	Create(ctx context.Context, r *domain.Resource) error
	GetByID(ctx context.Context, buildingID, id string) (*domain.Resource, error)
	FindAvailable(ctx context.Context, buildingID string, f domain.ResourceFilter) ([]*domain.Resource, error)
	Reserve(ctx context.Context, buildingID, id, entryID string) error
	Release(ctx context.Context, buildingID, id, entryID string) error
	SetMaintenance(ctx context.Context, buildingID, id string, on bool) error
	SoftDelete(ctx context.Context, buildingID, id string) error
	ReleaseOrphaned(ctx context.Context, reservedBefore time.Time) ([]*domain.Resource, error)
	CountByStatus(ctx context.Context, buildingID string) (map[domain.ResourceClass]map[domain.ResourceStatus]int, error)
}

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, buildingID, id string) (*domain.Event, error)
	ListOpen(ctx context.Context, buildingID string, now time.Time) ([]*domain.Event, error)
	IncrementRegistration(ctx context.Context, buildingID, id string) error
	DecrementRegistration(ctx context.Context, buildingID, id string) error
}
