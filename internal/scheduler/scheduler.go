package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/SocietyBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingSweeper interface {
	CancelExpired(ctx context.Context) ([]*domain.Entry, error)
	Reconcile(ctx context.Context) (int, error)
}

type Scheduler struct {
	bookingService bookingSweeper
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService bookingSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick runs both sweeps; a failing one does not skip the other.
func (s *Scheduler) tick(ctx context.Context) {
	cancelled, err := s.bookingService.CancelExpired(ctx)
	if err != nil {
		s.logger.Error("failed to cancel expired bookings",
			logger.String("error", err.Error()),
		)
	}

	for _, e := range cancelled {
		s.logger.Info("booking expired",
			logger.String("booking_id", e.ID),
			logger.String("building_id", e.BuildingID),
			logger.String("member_id", e.MemberID),
			logger.String("resource_id", e.ResourceID),
		)
	}

	released, err := s.bookingService.Reconcile(ctx)
	if err != nil {
		s.logger.Error("failed to reconcile reservations",
			logger.String("error", err.Error()),
		)
		return
	}

	if released > 0 {
		s.logger.Warn("reconciler released resources",
			logger.Int("count", released),
		)
	}
}
