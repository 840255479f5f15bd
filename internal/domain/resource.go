package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type ResourceClass string

const (
	ClassAmenitySlot ResourceClass = "amenity_slot"
	ClassParkingSpot ResourceClass = "parking_spot"
	ClassEvent       ResourceClass = "event"
)

func (c ResourceClass) Valid() bool {
	switch c {
	case ClassAmenitySlot, ClassParkingSpot, ClassEvent:
		return true
	}
	return false
}

// Discrete reports whether the class is backed by individual resource rows
// rather than an event capacity counter.
func (c ResourceClass) Discrete() bool {
	return c == ClassAmenitySlot || c == ClassParkingSpot
}

type ResourceStatus string

const (
	ResourceAvailable   ResourceStatus = "available"
	ResourceOccupied    ResourceStatus = "occupied"
	ResourceMaintenance ResourceStatus = "maintenance"
)

// Pool is the owning container of discrete resources: an amenity for slots,
// a parking area for spots.
type Pool struct {
	ID               string          `json:"id"`
	BuildingID       string          `json:"building_id"`
	Class            ResourceClass   `json:"class"`
	Name             string          `json:"name"`
	RequiresApproval bool            `json:"requires_approval"`
	Fee              decimal.Decimal `json:"fee"`
	CreatedAt        time.Time       `json:"created_at"`
	DeletedAt        *time.Time      `json:"deleted_at,omitempty"`
}

type Resource struct {
	ID         string         `json:"id"`
	BuildingID string         `json:"building_id"`
	PoolID     string         `json:"pool_id"`
	Class      ResourceClass  `json:"class"`
	Label      string         `json:"label"`
	BlockID    *string        `json:"block_id,omitempty"`
	StartsAt   *time.Time     `json:"starts_at,omitempty"`
	EndsAt     *time.Time     `json:"ends_at,omitempty"`
	Status     ResourceStatus `json:"status"`
	HeldBy     *string        `json:"held_by,omitempty"`
	ReservedAt *time.Time     `json:"reserved_at,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  *time.Time     `json:"deleted_at,omitempty"`

	// Copied from the owning pool on read.
	RequiresApproval bool            `json:"requires_approval"`
	Fee              decimal.Decimal `json:"fee"`
}

func (r *Resource) Available() bool {
	return r.Status == ResourceAvailable && r.DeletedAt == nil
}

// Overlaps reports whether two live slots of the same pool share any time.
// Slots are half-open, so back-to-back slots do not overlap.
func (r *Resource) Overlaps(o *Resource) bool {
	if r.PoolID != o.PoolID || r.DeletedAt != nil || o.DeletedAt != nil {
		return false
	}
	if r.StartsAt == nil || r.EndsAt == nil || o.StartsAt == nil || o.EndsAt == nil {
		return false
	}
	return r.StartsAt.Before(*o.EndsAt) && o.StartsAt.Before(*r.EndsAt)
}

// ResourceFilter narrows FindAvailable. Date selects one UTC calendar day of
// amenity slots; BlockID is the requester's block, spots restricted to another
// block never match.
type ResourceFilter struct {
	Class   ResourceClass
	PoolID  string
	Date    *time.Time
	BlockID string
}

// DayBounds returns the [start, end) UTC interval of the filter date.
func (f ResourceFilter) DayBounds() (time.Time, time.Time) {
	d := f.Date.UTC()
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}

// Matches applies the filter to an already building-scoped resource.
func (f ResourceFilter) Matches(r *Resource) bool {
	if f.Class != "" && r.Class != f.Class {
		return false
	}
	if f.PoolID != "" && r.PoolID != f.PoolID {
		return false
	}
	if f.Date != nil {
		if r.StartsAt == nil {
			return false
		}
		from, to := f.DayBounds()
		if r.StartsAt.Before(from) || !r.StartsAt.Before(to) {
			return false
		}
	}
	if r.BlockID != nil && *r.BlockID != f.BlockID {
		return false
	}
	return true
}

// MaintenanceConflict explains why a maintenance toggle found the resource
// in the wrong state.
func MaintenanceConflict(current ResourceStatus) error {
	if current == ResourceOccupied {
		return ErrResourceInUse
	}
	return fmt.Errorf("%w: resource is already %s", ErrValidation, current)
}

type CreatePoolInput struct {
	BuildingID       string
	Class            ResourceClass
	Name             string
	RequiresApproval bool
	Fee              decimal.Decimal
}

type CreateResourceInput struct {
	BuildingID string
	PoolID     string
	Label      string
	BlockID    *string
	StartsAt   *time.Time
	EndsAt     *time.Time
}
