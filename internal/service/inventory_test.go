package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/SocietyBooker/internal/domain"
	"github.com/stpnv0/SocietyBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInventory_CreatePool_Validation(t *testing.T) {
	inv := NewInventoryService(nil, nil, nil, nil)

	tests := []struct {
		name  string
		input domain.CreatePoolInput
	}{
		{"empty name", domain.CreatePoolInput{Class: domain.ClassAmenitySlot}},
		{"event class", domain.CreatePoolInput{Class: domain.ClassEvent, Name: "Hall"}},
		{"negative fee", domain.CreatePoolInput{Class: domain.ClassParkingSpot, Name: "Garage", Fee: decimal.NewFromInt(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := inv.CreatePool(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestInventory_CreatePool_Success(t *testing.T) {
	pools := mocks.NewMockPoolRepo(t)
	inv := NewInventoryService(pools, nil, nil, nil)

	pools.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p *domain.Pool) bool {
		return p.Class == domain.ClassAmenitySlot && p.Name == "Tennis court" && p.ID != ""
	})).Return(nil)

	pool, err := inv.CreatePool(context.Background(), domain.CreatePoolInput{
		BuildingID: testBuilding,
		Class:      domain.ClassAmenitySlot,
		Name:       "Tennis court",
		Fee:        decimal.NewFromInt(300),
	})
	require.NoError(t, err)
	assert.Equal(t, testBuilding, pool.BuildingID)
	assert.True(t, pool.Fee.Equal(decimal.NewFromInt(300)))
}

func TestInventory_CreateResource_SlotRules(t *testing.T) {
	pools := mocks.NewMockPoolRepo(t)
	inv := NewInventoryService(pools, nil, nil, nil)

	pools.EXPECT().GetByID(mock.Anything, testBuilding, "pool-1").
		Return(&domain.Pool{ID: "pool-1", BuildingID: testBuilding, Class: domain.ClassAmenitySlot}, nil)

	start := baseTime.Add(time.Hour)
	before := start.Add(-time.Minute)

	_, err := inv.CreateResource(context.Background(), domain.CreateResourceInput{
		BuildingID: testBuilding, PoolID: "pool-1",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = inv.CreateResource(context.Background(), domain.CreateResourceInput{
		BuildingID: testBuilding, PoolID: "pool-1", StartsAt: &start, EndsAt: &before,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestInventory_CreateResource_SpotRules(t *testing.T) {
	pools := mocks.NewMockPoolRepo(t)
	resources := mocks.NewMockResourceRepo(t)
	inv := NewInventoryService(pools, resources, nil, nil)

	pools.EXPECT().GetByID(mock.Anything, testBuilding, "pool-2").
		Return(&domain.Pool{ID: "pool-2", BuildingID: testBuilding, Class: domain.ClassParkingSpot, RequiresApproval: true}, nil)

	start := baseTime
	_, err := inv.CreateResource(context.Background(), domain.CreateResourceInput{
		BuildingID: testBuilding, PoolID: "pool-2", Label: "P-1", StartsAt: &start,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = inv.CreateResource(context.Background(), domain.CreateResourceInput{
		BuildingID: testBuilding, PoolID: "pool-2",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	resources.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

	res, err := inv.CreateResource(context.Background(), domain.CreateResourceInput{
		BuildingID: testBuilding, PoolID: "pool-2", Label: "P-1",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ClassParkingSpot, res.Class)
	assert.Equal(t, domain.ResourceAvailable, res.Status)
	assert.True(t, res.RequiresApproval)
}

func TestInventory_CreateResource_UnknownPool(t *testing.T) {
	pools := mocks.NewMockPoolRepo(t)
	inv := NewInventoryService(pools, nil, nil, nil)

	pools.EXPECT().GetByID(mock.Anything, testBuilding, "missing").Return(nil, domain.ErrPoolNotFound)

	_, err := inv.CreateResource(context.Background(), domain.CreateResourceInput{
		BuildingID: testBuilding, PoolID: "missing", Label: "P-1",
	})
	assert.ErrorIs(t, err, domain.ErrPoolNotFound)
}

func TestInventory_SetMaintenance(t *testing.T) {
	f := newFixture(t)
	a := f.member(t, "101", "A")
	pool := f.pool(t, domain.ClassParkingSpot, false, 0)
	spot := f.spot(t, pool.ID, "P-1", nil)
	ctx := context.Background()

	res, err := f.inv.SetMaintenance(ctx, testBuilding, spot.ID, true)
	require.NoError(t, err)
	assert.Equal(t, domain.ResourceMaintenance, res.Status)

	_, err = f.inv.SetMaintenance(ctx, testBuilding, spot.ID, true)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.book(a, bySlot(spot))
	assert.ErrorIs(t, err, domain.ErrResourceUnavailable)

	res, err = f.inv.SetMaintenance(ctx, testBuilding, spot.ID, false)
	require.NoError(t, err)
	assert.Equal(t, domain.ResourceAvailable, res.Status)

	_, err = f.book(a, bySlot(spot))
	require.NoError(t, err)

	_, err = f.inv.SetMaintenance(ctx, testBuilding, spot.ID, true)
	assert.ErrorIs(t, err, domain.ErrResourceInUse)
}

func TestInventory_CreateResource_RejectsOverlappingSlots(t *testing.T) {
	f := newFixture(t)
	pool := f.pool(t, domain.ClassAmenitySlot, false, 0)
	other := f.pool(t, domain.ClassAmenitySlot, false, 0)
	ctx := context.Background()
	start := baseTime.Add(24 * time.Hour)
	first := f.slot(t, pool.ID, start)

	create := func(poolID string, from, to time.Time) error {
		_, err := f.inv.CreateResource(ctx, domain.CreateResourceInput{
			BuildingID: testBuilding, PoolID: poolID, StartsAt: &from, EndsAt: &to,
		})
		return err
	}

	tests := []struct {
		name    string
		poolID  string
		from    time.Time
		to      time.Time
		wantErr bool
	}{
		{"same window", pool.ID, start, start.Add(time.Hour), true},
		{"starts inside", pool.ID, start.Add(30 * time.Minute), start.Add(90 * time.Minute), true},
		{"covers", pool.ID, start.Add(-time.Hour), start.Add(2 * time.Hour), true},
		{"back to back", pool.ID, start.Add(time.Hour), start.Add(2 * time.Hour), false},
		{"other pool", other.ID, start, start.Add(time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := create(tt.poolID, tt.from, tt.to)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrSlotOverlap)
				assert.Equal(t, "VALIDATION", domain.Code(err))
				return
			}
			assert.NoError(t, err)
		})
	}

	// A deleted slot frees its window.
	require.NoError(t, f.inv.DeleteResource(ctx, testBuilding, first.ID))
	assert.NoError(t, create(pool.ID, start, start.Add(time.Hour)))
}

func TestInventory_DeleteResource(t *testing.T) {
	f := newFixture(t)
	a := f.member(t, "101", "A")
	pool := f.pool(t, domain.ClassParkingSpot, false, 0)
	busy := f.spot(t, pool.ID, "P-1", nil)
	idle := f.spot(t, pool.ID, "P-2", nil)
	ctx := context.Background()

	_, err := f.book(a, bySlot(busy))
	require.NoError(t, err)

	assert.ErrorIs(t, f.inv.DeleteResource(ctx, testBuilding, busy.ID), domain.ErrResourceInUse)
	require.NoError(t, f.inv.DeleteResource(ctx, testBuilding, idle.ID))
	assert.ErrorIs(t, f.inv.DeleteResource(ctx, testBuilding, idle.ID), domain.ErrResourceNotFound)

	found, err := f.alloc.FindAvailable(ctx, testBuilding, domain.ResourceFilter{Class: domain.ClassParkingSpot})
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestInventory_CreateEvent_Validation(t *testing.T) {
	inv := NewInventoryService(nil, nil, nil, nil)
	inv.now = func() time.Time { return baseTime }

	tests := []struct {
		name  string
		input domain.CreateEventInput
	}{
		{"empty title", domain.CreateEventInput{StartsAt: baseTime.Add(time.Hour), RegistrationLimit: 1}},
		{"zero limit", domain.CreateEventInput{Title: "Yoga", StartsAt: baseTime.Add(time.Hour)}},
		{"in the past", domain.CreateEventInput{Title: "Yoga", StartsAt: baseTime.Add(-time.Hour), RegistrationLimit: 1}},
		{"negative fee", domain.CreateEventInput{Title: "Yoga", StartsAt: baseTime.Add(time.Hour), RegistrationLimit: 1, Fee: decimal.NewFromInt(-5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := inv.CreateEvent(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestInventory_CreateMember(t *testing.T) {
	members := mocks.NewMockMemberRepo(t)
	inv := NewInventoryService(nil, nil, nil, members)

	members.EXPECT().Create(mock.Anything, mock.MatchedBy(func(m *domain.Member) bool {
		return m.Role == domain.RoleMember
	})).Return(nil).Once()

	m, err := inv.CreateMember(context.Background(), domain.CreateMemberInput{
		BuildingID: testBuilding, UnitID: "101", Name: "Anna", Phone: "+79001112233",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleMember, m.Role)

	_, err = inv.CreateMember(context.Background(), domain.CreateMemberInput{
		BuildingID: testBuilding, UnitID: "101", Name: "Anna", Phone: "+79001112233", Role: "owner",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = inv.CreateMember(context.Background(), domain.CreateMemberInput{
		BuildingID: testBuilding, Name: "Anna", Phone: "+79001112233",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestInventory_CreateMember_PhoneTaken(t *testing.T) {
	members := mocks.NewMockMemberRepo(t)
	inv := NewInventoryService(nil, nil, nil, members)

	members.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrPhoneTaken)

	_, err := inv.CreateMember(context.Background(), domain.CreateMemberInput{
		BuildingID: testBuilding, UnitID: "101", Name: "Anna", Phone: "+79001112233",
	})
	assert.True(t, errors.Is(err, domain.ErrPhoneTaken))
	assert.Equal(t, "VALIDATION", domain.Code(err))
}
