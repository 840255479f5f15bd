package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/SocietyBooker/internal/domain"
	"github.com/stpnv0/SocietyBooker/internal/repository/memory"
	"github.com/stpnv0/SocietyBooker/internal/service/ports"
	"github.com/stpnv0/SocietyBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

const testBuilding = "b1"

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// fixture wires the allocation and inventory services to one memory store,
// with a fixed clock both services share.
type fixture struct {
	store     *memory.Store
	alloc     *AllocationService
	inv       *InventoryService
	notifier  *mocks.MockBookingNotifier
	publisher *mocks.MockEventPublisher
	now       time.Time
	phones    atomic.Int64
}

var baseTime = time.Date(2025, 11, 30, 12, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWith(t, nil)
}

// newFixtureWith lets a test replace the ledger, e.g. to inject failures.
func newFixtureWith(t *testing.T, wrapLedger func(ports.LedgerRepo) ports.LedgerRepo) *fixture {
	t.Helper()

	store := memory.NewStore()
	notifier := mocks.NewMockBookingNotifier(t)
	notifier.EXPECT().NotifyEntry(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	publisher := mocks.NewMockEventPublisher(t)
	publisher.EXPECT().PublishEntry(mock.Anything, mock.Anything).Return(nil).Maybe()

	var ledger ports.LedgerRepo = store.Ledger()
	if wrapLedger != nil {
		ledger = wrapLedger(ledger)
	}

	f := &fixture{
		store:     store,
		notifier:  notifier,
		publisher: publisher,
		now:       baseTime,
	}
	f.alloc = NewAllocationService(
		store.Resources(), store.Events(), ledger, store.Members(),
		notifier, publisher, 2*time.Minute, newTestLogger(t),
	)
	f.alloc.now = func() time.Time { return f.now }
	f.inv = NewInventoryService(store.Pools(), store.Resources(), store.Events(), store.Members())
	f.inv.now = func() time.Time { return f.now }

	return f
}

func (f *fixture) member(t *testing.T, unit, block string) *domain.Member {
	t.Helper()
	m, err := f.inv.CreateMember(context.Background(), domain.CreateMemberInput{
		BuildingID: testBuilding,
		BlockID:    block,
		UnitID:     unit,
		Name:       "member " + unit,
		Phone:      fmt.Sprintf("+7900%07d", f.phones.Add(1)),
	})
	require.NoError(t, err)
	return m
}

func (f *fixture) pool(t *testing.T, class domain.ResourceClass, approval bool, fee int64) *domain.Pool {
	t.Helper()
	p, err := f.inv.CreatePool(context.Background(), domain.CreatePoolInput{
		BuildingID:       testBuilding,
		Class:            class,
		Name:             fmt.Sprintf("%s pool", class),
		RequiresApproval: approval,
		Fee:              decimal.NewFromInt(fee),
	})
	require.NoError(t, err)
	return p
}

func (f *fixture) slot(t *testing.T, poolID string, start time.Time) *domain.Resource {
	t.Helper()
	end := start.Add(time.Hour)
	r, err := f.inv.CreateResource(context.Background(), domain.CreateResourceInput{
		BuildingID: testBuilding,
		PoolID:     poolID,
		StartsAt:   &start,
		EndsAt:     &end,
	})
	require.NoError(t, err)
	return r
}

func (f *fixture) spot(t *testing.T, poolID, label string, block *string) *domain.Resource {
	t.Helper()
	r, err := f.inv.CreateResource(context.Background(), domain.CreateResourceInput{
		BuildingID: testBuilding,
		PoolID:     poolID,
		Label:      label,
		BlockID:    block,
	})
	require.NoError(t, err)
	return r
}

func (f *fixture) event(t *testing.T, limit int, approval bool) *domain.Event {
	t.Helper()
	e, err := f.inv.CreateEvent(context.Background(), domain.CreateEventInput{
		BuildingID:        testBuilding,
		Title:             "Yoga",
		StartsAt:          f.now.Add(48 * time.Hour),
		RegistrationLimit: limit,
		RequiresApproval:  approval,
	})
	require.NoError(t, err)
	return e
}

func (f *fixture) book(m *domain.Member, sel domain.Selector) (*domain.Entry, error) {
	return f.alloc.RequestBooking(context.Background(), domain.BookingRequest{
		BuildingID: testBuilding,
		MemberID:   m.ID,
		UnitID:     m.UnitID,
		Selector:   sel,
	})
}

func (f *fixture) resource(t *testing.T, id string) *domain.Resource {
	t.Helper()
	r, err := f.store.Resources().GetByID(context.Background(), testBuilding, id)
	require.NoError(t, err)
	return r
}

func (f *fixture) eventState(t *testing.T, id string) *domain.Event {
	t.Helper()
	e, err := f.store.Events().GetByID(context.Background(), testBuilding, id)
	require.NoError(t, err)
	return e
}

// assertConsistent checks that a discrete resource is occupied exactly when
// one holding entry references it, and that entry is the recorded holder.
func (f *fixture) assertConsistent(t *testing.T, resourceID string) {
	t.Helper()
	r := f.resource(t, resourceID)

	entries, err := f.store.Ledger().ListByStatus(context.Background(), testBuilding, "", domain.HoldingStatuses)
	require.NoError(t, err)

	var holders []*domain.Entry
	for _, e := range entries {
		if e.ResourceID == resourceID {
			holders = append(holders, e)
		}
	}

	if r.Status == domain.ResourceOccupied {
		require.Len(t, holders, 1)
		require.NotNil(t, r.HeldBy)
		require.Equal(t, holders[0].ID, *r.HeldBy)
		return
	}
	require.Empty(t, holders)
}
