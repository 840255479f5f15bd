package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/SocietyBooker/internal/domain"
	"github.com/stpnv0/SocietyBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReportService(t *testing.T) (*ReportService, *mocks.MockResourceRepo, *mocks.MockEventRepo, *mocks.MockLedgerRepo) {
	t.Helper()
	resources := mocks.NewMockResourceRepo(t)
	events := mocks.NewMockEventRepo(t)
	ledger := mocks.NewMockLedgerRepo(t)

	svc := NewReportService(resources, events, ledger)
	svc.now = func() time.Time { return baseTime }
	return svc, resources, events, ledger
}

func TestReport_Dashboard(t *testing.T) {
	svc, resources, events, ledger := newReportService(t)

	resources.EXPECT().CountByStatus(mock.Anything, testBuilding).Return(map[domain.ResourceClass]map[domain.ResourceStatus]int{
		domain.ClassParkingSpot: {domain.ResourceAvailable: 3, domain.ResourceOccupied: 1},
	}, nil)
	ledger.EXPECT().CountByStatus(mock.Anything, testBuilding).Return(map[domain.EntryStatus]int{
		domain.EntryPending: 2, domain.EntryConfirmed: 5,
	}, nil)
	events.EXPECT().ListOpen(mock.Anything, testBuilding, baseTime).Return([]*domain.Event{
		{ID: "ev-1", RegistrationLimit: 10, RegisteredCount: 7},
	}, nil)

	d, err := svc.Dashboard(context.Background(), testBuilding)
	require.NoError(t, err)
	assert.Equal(t, testBuilding, d.BuildingID)
	assert.Equal(t, 1, d.Resources[domain.ClassParkingSpot][domain.ResourceOccupied])
	assert.Equal(t, 5, d.Entries[domain.EntryConfirmed])
	require.Len(t, d.OpenEvents, 1)
	assert.Equal(t, 3, d.OpenEvents[0].Remaining)
}

func TestReport_Dashboard_RepoError(t *testing.T) {
	svc, resources, _, ledger := newReportService(t)

	resources.EXPECT().CountByStatus(mock.Anything, testBuilding).Return(nil, nil)
	ledger.EXPECT().CountByStatus(mock.Anything, testBuilding).Return(nil, errors.New("db down"))

	_, err := svc.Dashboard(context.Background(), testBuilding)
	assert.ErrorContains(t, err, "count bookings")
}

func TestReport_OpenEvents_FromStore(t *testing.T) {
	f := newFixture(t)
	a := f.member(t, "101", "A")
	full := f.event(t, 1, false)
	open := f.event(t, 3, false)

	_, err := f.book(a, byEvent(full))
	require.NoError(t, err)
	_, err = f.book(a, byEvent(open))
	require.NoError(t, err)

	svc := NewReportService(f.store.Resources(), f.store.Events(), f.store.Ledger())
	svc.now = func() time.Time { return baseTime }

	res, err := svc.OpenEvents(context.Background(), testBuilding)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, open.ID, res[0].Event.ID)
	assert.Equal(t, 2, res[0].Remaining)
}
