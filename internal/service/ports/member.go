package ports

import (
	"context"
	"time"

	"github.com/stpnv0/SocietyBooker/internal/domain"
)

type MemberRepo interface {
	Create(ctx context.Context, m *domain.Member) error
	GetByID(ctx context.Context, buildingID, id string) (*domain.Member, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Member, error)
}

type ChallengeStore interface {
	Save(ctx context.Context, c *domain.Challenge, ttl time.Duration) error
	Get(ctx context.Context, phone string) (*domain.Challenge, error)
	IncrAttempts(ctx context.Context, phone string) (int, error)
	Delete(ctx context.Context, phone string) error
}
