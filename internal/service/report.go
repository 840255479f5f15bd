package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/SocietyBooker/internal/domain"
	"github.com/stpnv0/SocietyBooker/internal/service/ports"
)

type ReportService struct {
	resources ports.ResourceRepo
	events    ports.EventRepo
	ledger    ports.LedgerRepo
	now       func() time.Time
}

func NewReportService(resources ports.ResourceRepo, events ports.EventRepo, ledger ports.LedgerRepo) *ReportService {
	return &ReportService{
		resources: resources,
		events:    events,
		ledger:    ledger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *ReportService) Dashboard(ctx context.Context, buildingID string) (*domain.Dashboard, error) {
	resources, err := s.resources.CountByStatus(ctx, buildingID)
	if err != nil {
		return nil, fmt.Errorf("count resources: %w", err)
	}

	entries, err := s.ledger.CountByStatus(ctx, buildingID)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	open, err := s.OpenEvents(ctx, buildingID)
	if err != nil {
		return nil, err
	}

	return &domain.Dashboard{
		BuildingID: buildingID,
		Resources:  resources,
		Entries:    entries,
		OpenEvents: open,
	}, nil
}

func (s *ReportService) OpenEvents(ctx context.Context, buildingID string) ([]domain.EventAvailability, error) {
	events, err := s.events.ListOpen(ctx, buildingID, s.now())
	if err != nil {
		return nil, fmt.Errorf("list open events: %w", err)
	}

	res := make([]domain.EventAvailability, 0, len(events))
	for _, e := range events {
		res = append(res, domain.EventAvailability{Event: e, Remaining: e.Remaining()})
	}

	return res, nil
}
