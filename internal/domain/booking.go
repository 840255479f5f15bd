package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SystemActor is recorded on transitions made without a human actor.
const SystemActor = "system"

type EntryStatus string

const (
	EntryPending   EntryStatus = "pending"
	EntryApproved  EntryStatus = "approved"
	EntryConfirmed EntryStatus = "confirmed"
	EntryRejected  EntryStatus = "rejected"
	EntryCancelled EntryStatus = "cancelled"
	EntryReleased  EntryStatus = "released"
)

var (
	ActiveStatuses  = []EntryStatus{EntryPending, EntryApproved, EntryConfirmed}
	HoldingStatuses = []EntryStatus{EntryApproved, EntryConfirmed}
)

var transitions = map[EntryStatus][]EntryStatus{
	EntryPending:   {EntryApproved, EntryConfirmed, EntryRejected, EntryCancelled},
	EntryApproved:  {EntryCancelled, EntryReleased},
	EntryConfirmed: {EntryCancelled, EntryReleased},
}

func (s EntryStatus) Valid() bool {
	switch s {
	case EntryPending, EntryApproved, EntryConfirmed, EntryRejected, EntryCancelled, EntryReleased:
		return true
	}
	return false
}

func (s EntryStatus) Terminal() bool {
	return s == EntryRejected || s == EntryCancelled || s == EntryReleased
}

// Holding statuses are the ones that own a reserved resource or a unit of
// event capacity.
func (s EntryStatus) Holding() bool {
	return s == EntryApproved || s == EntryConfirmed
}

func CanTransition(from, to EntryStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type ApprovalPolicy string

const (
	PolicyAutoConfirm      ApprovalPolicy = "auto_confirm"
	PolicyRequiresApproval ApprovalPolicy = "requires_approval"
)

func PolicyFor(requiresApproval bool) ApprovalPolicy {
	if requiresApproval {
		return PolicyRequiresApproval
	}
	return PolicyAutoConfirm
}

type PaymentStatus string

const (
	PaymentNotRequired PaymentStatus = "not_required"
	PaymentUnpaid      PaymentStatus = "unpaid"
	PaymentPaid        PaymentStatus = "paid"
)

func PaymentFor(amount decimal.Decimal) PaymentStatus {
	if amount.IsPositive() {
		return PaymentUnpaid
	}
	return PaymentNotRequired
}

// Entry is one ledger record: a requester's claim on a resource or on event
// capacity. Entries are never deleted, only transitioned.
type Entry struct {
	ID            string          `json:"id"`
	BuildingID    string          `json:"building_id"`
	Class         ResourceClass   `json:"class"`
	ResourceID    string          `json:"resource_id"`
	MemberID      string          `json:"member_id"`
	UnitID        string          `json:"unit_id"`
	Status        EntryStatus     `json:"status"`
	Policy        ApprovalPolicy  `json:"policy"`
	EffectiveAt   *time.Time      `json:"effective_at,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	Note          string          `json:"note,omitempty"`
	DedupeKey     *string         `json:"-"`
	CreatedBy     string          `json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`
	DecidedBy     *string         `json:"decided_by,omitempty"`
	DecidedAt     *time.Time      `json:"decided_at,omitempty"`
	ClosedBy      *string         `json:"closed_by,omitempty"`
	ClosedAt      *time.Time      `json:"closed_at,omitempty"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Stamp applies a status change and its audit fields. Approve, confirm and
// reject are decisions; cancel and release close the entry.
func (e *Entry) Stamp(to EntryStatus, actorID string, at time.Time) {
	e.Status = to
	e.UpdatedAt = at
	switch to {
	case EntryApproved, EntryConfirmed, EntryRejected:
		e.DecidedBy, e.DecidedAt = &actorID, &at
	case EntryCancelled, EntryReleased:
		e.ClosedBy, e.ClosedAt = &actorID, &at
	}
}

// CheckCancellable enforces the future-dated cancellation policy against now.
// Entries without an effective time (parking) are always cancellable.
func (e *Entry) CheckCancellable(now time.Time) error {
	if e.EffectiveAt != nil && !e.EffectiveAt.After(now) {
		return ErrPastBooking
	}
	return nil
}

// CheckNotStarted refuses to grant an entry whose effective time is not in
// the future.
func (e *Entry) CheckNotStarted(now time.Time) error {
	if e.EffectiveAt != nil && !e.EffectiveAt.After(now) {
		return ErrAlreadyStarted
	}
	return nil
}

// DedupeKey returns the per-requester uniqueness key for non-terminal entries
// of a class, or nil when the class allows several at once.
func DedupeKey(class ResourceClass, memberID, unitID, resourceID string) *string {
	var key string
	switch class {
	case ClassParkingSpot:
		key = "parking:" + unitID
	case ClassEvent:
		key = "event:" + resourceID + ":" + memberID
	default:
		return nil
	}
	return &key
}

// Selector resolves to one candidate resource. An explicit ResourceID wins;
// otherwise the first available resource matching PoolID and Date is taken.
// For events ResourceID is the event id.
type Selector struct {
	Class      ResourceClass
	ResourceID string
	PoolID     string
	Date       *time.Time
}

type BookingRequest struct {
	BuildingID string
	MemberID   string
	UnitID     string
	Selector   Selector
	Note       string
}
