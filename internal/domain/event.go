package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event is a capacity-bound resource: registrations consume one unit of
// RegistrationLimit each.
type Event struct {
	ID                string          `json:"id"`
	BuildingID        string          `json:"building_id"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	StartsAt          time.Time       `json:"starts_at"`
	RegistrationLimit int             `json:"registration_limit"`
	RegisteredCount   int             `json:"registered_count"`
	RequiresApproval  bool            `json:"requires_approval"`
	Fee               decimal.Decimal `json:"fee"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	DeletedAt         *time.Time      `json:"deleted_at,omitempty"`
}

func (e *Event) Remaining() int {
	if n := e.RegistrationLimit - e.RegisteredCount; n > 0 {
		return n
	}
	return 0
}

// Full means exactly-at-limit or above.
func (e *Event) Full() bool {
	return e.RegisteredCount >= e.RegistrationLimit
}

type CreateEventInput struct {
	BuildingID        string
	Title             string
	Description       string
	StartsAt          time.Time
	RegistrationLimit int
	RequiresApproval  bool
	Fee               decimal.Decimal
}
