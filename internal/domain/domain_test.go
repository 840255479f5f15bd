package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	all := []EntryStatus{EntryPending, EntryApproved, EntryConfirmed, EntryRejected, EntryCancelled, EntryReleased}
	allowed := map[[2]EntryStatus]bool{
		{EntryPending, EntryApproved}:    true,
		{EntryPending, EntryConfirmed}:   true,
		{EntryPending, EntryRejected}:    true,
		{EntryPending, EntryCancelled}:   true,
		{EntryApproved, EntryCancelled}:  true,
		{EntryApproved, EntryReleased}:   true,
		{EntryConfirmed, EntryCancelled}: true,
		{EntryConfirmed, EntryReleased}:  true,
	}

	for _, from := range all {
		for _, to := range all {
			want := allowed[[2]EntryStatus{from, to}]
			assert.Equal(t, want, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestEntryStatus_Classes(t *testing.T) {
	for _, s := range []EntryStatus{EntryRejected, EntryCancelled, EntryReleased} {
		assert.True(t, s.Terminal(), s)
		assert.False(t, s.Holding(), s)
	}
	for _, s := range HoldingStatuses {
		assert.True(t, s.Holding(), s)
		assert.False(t, s.Terminal(), s)
	}
	assert.False(t, EntryPending.Holding())
	assert.False(t, EntryPending.Terminal())
	assert.False(t, EntryStatus("paid").Valid())
}

func TestEntry_Stamp(t *testing.T) {
	at := time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)

	e := &Entry{Status: EntryPending}
	e.Stamp(EntryApproved, "admin", at)
	require.NotNil(t, e.DecidedBy)
	assert.Equal(t, "admin", *e.DecidedBy)
	assert.Equal(t, at, *e.DecidedAt)
	assert.Nil(t, e.ClosedBy)

	e.Stamp(EntryReleased, "admin-2", at.Add(time.Hour))
	require.NotNil(t, e.ClosedBy)
	assert.Equal(t, "admin-2", *e.ClosedBy)
	assert.Equal(t, "admin", *e.DecidedBy)
	assert.Equal(t, EntryReleased, e.Status)
	assert.Equal(t, at.Add(time.Hour), e.UpdatedAt)
}

func TestEntry_CheckCancellable(t *testing.T) {
	now := time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)
	future, past := now.Add(time.Minute), now.Add(-time.Minute)

	assert.NoError(t, (&Entry{EffectiveAt: &future}).CheckCancellable(now))
	assert.ErrorIs(t, (&Entry{EffectiveAt: &past}).CheckCancellable(now), ErrPastBooking)
	assert.ErrorIs(t, (&Entry{EffectiveAt: &now}).CheckCancellable(now), ErrPastBooking)
	assert.NoError(t, (&Entry{}).CheckCancellable(now))
}

func TestEntry_CheckNotStarted(t *testing.T) {
	now := time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)
	future, past := now.Add(time.Minute), now.Add(-time.Minute)

	assert.NoError(t, (&Entry{EffectiveAt: &future}).CheckNotStarted(now))
	assert.NoError(t, (&Entry{}).CheckNotStarted(now))

	err := (&Entry{EffectiveAt: &past}).CheckNotStarted(now)
	assert.ErrorIs(t, err, ErrAlreadyStarted)
	assert.NotErrorIs(t, err, ErrPastBooking)
	assert.Equal(t, "RESOURCE_UNAVAILABLE", Code(err))
}

func TestDedupeKey(t *testing.T) {
	assert.Nil(t, DedupeKey(ClassAmenitySlot, "m-1", "101", "r-1"))

	parking := DedupeKey(ClassParkingSpot, "m-1", "101", "r-1")
	require.NotNil(t, parking)
	assert.Equal(t, "parking:101", *parking)
	assert.Equal(t, *parking, *DedupeKey(ClassParkingSpot, "m-2", "101", "r-2"))

	event := DedupeKey(ClassEvent, "m-1", "101", "ev-1")
	require.NotNil(t, event)
	assert.NotEqual(t, *event, *DedupeKey(ClassEvent, "m-2", "101", "ev-1"))
}

func TestPaymentFor(t *testing.T) {
	assert.Equal(t, PaymentNotRequired, PaymentFor(decimal.Zero))
	assert.Equal(t, PaymentUnpaid, PaymentFor(decimal.RequireFromString("0.01")))
}

func TestEvent_Capacity(t *testing.T) {
	e := &Event{RegistrationLimit: 2, RegisteredCount: 1}
	assert.False(t, e.Full())
	assert.Equal(t, 1, e.Remaining())

	e.RegisteredCount = 3
	assert.True(t, e.Full())
	assert.Zero(t, e.Remaining())
}

func TestResourceFilter_Matches(t *testing.T) {
	day := time.Date(2025, 12, 1, 15, 30, 0, 0, time.UTC)
	inDay := time.Date(2025, 12, 1, 23, 59, 0, 0, time.UTC)
	nextDay := time.Date(2025, 12, 2, 0, 0, 0, 0, time.UTC)
	blockA := "A"

	slot := &Resource{Class: ClassAmenitySlot, PoolID: "p", StartsAt: &inDay}
	assert.True(t, ResourceFilter{Class: ClassAmenitySlot, PoolID: "p", Date: &day}.Matches(slot))
	assert.False(t, ResourceFilter{Class: ClassParkingSpot}.Matches(slot))
	assert.False(t, ResourceFilter{PoolID: "q"}.Matches(slot))
	assert.False(t, ResourceFilter{Date: &day}.Matches(&Resource{StartsAt: &nextDay}))
	assert.False(t, ResourceFilter{Date: &day}.Matches(&Resource{}))

	spot := &Resource{Class: ClassParkingSpot, BlockID: &blockA}
	assert.True(t, ResourceFilter{BlockID: "A"}.Matches(spot))
	assert.False(t, ResourceFilter{BlockID: "B"}.Matches(spot))
	assert.True(t, ResourceFilter{BlockID: "B"}.Matches(&Resource{Class: ClassParkingSpot}))
}

func TestResource_Overlaps(t *testing.T) {
	at := func(h int) *time.Time {
		v := time.Date(2025, 12, 1, h, 0, 0, 0, time.UTC)
		return &v
	}
	slot := func(pool string, from, to int) *Resource {
		return &Resource{PoolID: pool, StartsAt: at(from), EndsAt: at(to)}
	}
	deleted := slot("p", 10, 11)
	deleted.DeletedAt = at(9)

	assert.True(t, slot("p", 10, 12).Overlaps(slot("p", 11, 13)))
	assert.True(t, slot("p", 10, 13).Overlaps(slot("p", 11, 12)))
	assert.False(t, slot("p", 10, 11).Overlaps(slot("p", 11, 12)))
	assert.False(t, slot("p", 10, 11).Overlaps(slot("q", 10, 11)))
	assert.False(t, slot("p", 10, 11).Overlaps(deleted))
	assert.False(t, slot("p", 10, 11).Overlaps(&Resource{PoolID: "p"}))
}

func TestMaintenanceConflict(t *testing.T) {
	assert.ErrorIs(t, MaintenanceConflict(ResourceOccupied), ErrResourceInUse)
	assert.ErrorIs(t, MaintenanceConflict(ResourceMaintenance), ErrValidation)
}

func TestCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrAlreadyReserved, "RESOURCE_UNAVAILABLE"},
		{fmt.Errorf("x: %w", ErrResourceUnavailable), "RESOURCE_UNAVAILABLE"},
		{ErrDuplicateActiveEntry, "DUPLICATE_ACTIVE_ENTRY"},
		{ErrCapacityExceeded, "CAPACITY_EXCEEDED"},
		{ErrPastBooking, "PAST_BOOKING"},
		{ErrInvalidTransition, "INVALID_TRANSITION"},
		{ErrNotReserved, "NOT_RESERVED"},
		{ErrResourceInUse, "RESOURCE_IN_USE"},
		{fmt.Errorf("get: %w", ErrEntryNotFound), "NOT_FOUND"},
		{ErrInvalidCode, "UNAUTHORIZED"},
		{ErrForbidden, "FORBIDDEN"},
		{ErrTooManyAttempts, "TOO_MANY_ATTEMPTS"},
		{ErrPhoneTaken, "VALIDATION"},
		{ErrNoDeliveryChannel, "VALIDATION"},
		{ErrSlotOverlap, "VALIDATION"},
		{ErrAlreadyStarted, "RESOURCE_UNAVAILABLE"},
		{fmt.Errorf("pq: timeout"), "INTERNAL"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Code(tt.err), "%v", tt.err)
	}
}
