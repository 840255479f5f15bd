package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/SocietyBooker/internal/domain"
	"github.com/stpnv0/SocietyBooker/internal/service/ports"
)

// InventoryService covers the administrative setup of bookable things:
// pools, their resources, events and the members allowed to book them.
type InventoryService struct {
	pools     ports.PoolRepo
	resources ports.ResourceRepo
	events    ports.EventRepo
	members   ports.MemberRepo
	now       func() time.Time
}

func NewInventoryService(
	pools ports.PoolRepo,
	resources ports.ResourceRepo,
	events ports.EventRepo,
	members ports.MemberRepo,
) *InventoryService {
	return &InventoryService{
		pools:     pools,
		resources: resources,
		events:    events,
		members:   members,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *InventoryService) CreatePool(ctx context.Context, input domain.CreatePoolInput) (*domain.Pool, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !input.Class.Discrete() {
		return nil, fmt.Errorf("%w: pool class must be %s or %s", domain.ErrValidation, domain.ClassAmenitySlot, domain.ClassParkingSpot)
	}
	if input.Fee.IsNegative() {
		return nil, fmt.Errorf("%w: fee must not be negative", domain.ErrValidation)
	}

	pool := &domain.Pool{
		ID:               uuid.New().String(),
		BuildingID:       input.BuildingID,
		Class:            input.Class,
		Name:             input.Name,
		RequiresApproval: input.RequiresApproval,
		Fee:              input.Fee,
		CreatedAt:        s.now(),
	}
	if err := s.pools.Create(ctx, pool); err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	return pool, nil
}

func (s *InventoryService) ListPools(ctx context.Context, buildingID string, class domain.ResourceClass) ([]*domain.Pool, error) {
	return s.pools.List(ctx, buildingID, class)
}

func (s *InventoryService) CreateResource(ctx context.Context, input domain.CreateResourceInput) (*domain.Resource, error) {
	pool, err := s.pools.GetByID(ctx, input.BuildingID, input.PoolID)
	if err != nil {
		return nil, fmt.Errorf("get pool: %w", err)
	}

	switch pool.Class {
	case domain.ClassAmenitySlot:
		if input.StartsAt == nil || input.EndsAt == nil {
			return nil, fmt.Errorf("%w: slot start and end are required", domain.ErrValidation)
		}
		if !input.StartsAt.Before(*input.EndsAt) {
			return nil, fmt.Errorf("%w: slot must end after it starts", domain.ErrValidation)
		}
	case domain.ClassParkingSpot:
		if strings.TrimSpace(input.Label) == "" {
			return nil, fmt.Errorf("%w: spot label is required", domain.ErrValidation)
		}
		if input.StartsAt != nil || input.EndsAt != nil {
			return nil, fmt.Errorf("%w: parking spots are not time slots", domain.ErrValidation)
		}
	}

	now := s.now()
	res := &domain.Resource{
		ID:               uuid.New().String(),
		BuildingID:       input.BuildingID,
		PoolID:           pool.ID,
		Class:            pool.Class,
		Label:            input.Label,
		BlockID:          input.BlockID,
		StartsAt:         utcPtr(input.StartsAt),
		EndsAt:           utcPtr(input.EndsAt),
		Status:           domain.ResourceAvailable,
		CreatedAt:        now,
		UpdatedAt:        now,
		RequiresApproval: pool.RequiresApproval,
		Fee:              pool.Fee,
	}
	if err = s.resources.Create(ctx, res); err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	return res, nil
}

func (s *InventoryService) SetMaintenance(ctx context.Context, buildingID, id string, on bool) (*domain.Resource, error) {
	if err := s.resources.SetMaintenance(ctx, buildingID, id, on); err != nil {
		return nil, fmt.Errorf("set maintenance: %w", err)
	}
	return s.resources.GetByID(ctx, buildingID, id)
}

func (s *InventoryService) DeleteResource(ctx context.Context, buildingID, id string) error {
	if err := s.resources.SoftDelete(ctx, buildingID, id); err != nil {
		return fmt.Errorf("delete resource: %w", err)
	}
	return nil
}

func (s *InventoryService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.RegistrationLimit <= 0 {
		return nil, fmt.Errorf("%w: registration_limit must be positive", domain.ErrValidation)
	}
	if !input.StartsAt.After(s.now()) {
		return nil, fmt.Errorf("%w: starts_at must be in the future", domain.ErrValidation)
	}
	if input.Fee.IsNegative() {
		return nil, fmt.Errorf("%w: fee must not be negative", domain.ErrValidation)
	}

	now := s.now()
	event := &domain.Event{
		ID:                uuid.New().String(),
		BuildingID:        input.BuildingID,
		Title:             input.Title,
		Description:       input.Description,
		StartsAt:          input.StartsAt.UTC(),
		RegistrationLimit: input.RegistrationLimit,
		RequiresApproval:  input.RequiresApproval,
		Fee:               input.Fee,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *InventoryService) CreateMember(ctx context.Context, input domain.CreateMemberInput) (*domain.Member, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Phone) == "" {
		return nil, fmt.Errorf("%w: phone is required", domain.ErrValidation)
	}
	if input.UnitID == "" {
		return nil, fmt.Errorf("%w: unit_id is required", domain.ErrValidation)
	}
	role := input.Role
	if role == "" {
		role = domain.RoleMember
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}

	member := &domain.Member{
		ID:             uuid.New().String(),
		BuildingID:     input.BuildingID,
		BlockID:        input.BlockID,
		UnitID:         input.UnitID,
		Name:           input.Name,
		Phone:          input.Phone,
		Role:           role,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      s.now(),
	}
	if err := s.members.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}

	return member, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
