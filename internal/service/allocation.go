package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/SocietyBooker/internal/domain"
	"github.com/stpnv0/SocietyBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// AllocationService moves resources and ledger entries together. Every
// operation is scoped to the caller's building.
type AllocationService struct {
	resources ports.ResourceRepo
	events    ports.EventRepo
	ledger    ports.LedgerRepo
	members   ports.MemberRepo
	notifier  ports.BookingNotifier
	publisher ports.EventPublisher
	grace     time.Duration
	logger    logger.Logger
	now       func() time.Time
}

func NewAllocationService(
	resources ports.ResourceRepo,
	events ports.EventRepo,
	ledger ports.LedgerRepo,
	members ports.MemberRepo,
	notifier ports.BookingNotifier,
	publisher ports.EventPublisher,
	reconcileGrace time.Duration,
	logger logger.Logger,
) *AllocationService {
	return &AllocationService{
		resources: resources,
		events:    events,
		ledger:    ledger,
		members:   members,
		notifier:  notifier,
		publisher: publisher,
		grace:     reconcileGrace,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

type candidate struct {
	resourceID  string
	effectiveAt *time.Time
	amount      decimal.Decimal
	policy      domain.ApprovalPolicy
}

func (s *AllocationService) RequestBooking(ctx context.Context, req domain.BookingRequest) (*domain.Entry, error) {
	if !req.Selector.Class.Valid() {
		return nil, fmt.Errorf("%w: unknown resource class %q", domain.ErrValidation, req.Selector.Class)
	}

	member, err := s.eligibleMember(ctx, req.BuildingID, req.MemberID, req.UnitID)
	if err != nil {
		return nil, err
	}

	c, err := s.resolve(ctx, req, member)
	if err != nil {
		return nil, err
	}

	now := s.now()
	entry := &domain.Entry{
		ID:            uuid.New().String(),
		BuildingID:    req.BuildingID,
		Class:         req.Selector.Class,
		ResourceID:    c.resourceID,
		MemberID:      member.ID,
		UnitID:        member.UnitID,
		Status:        domain.EntryPending,
		Policy:        c.policy,
		EffectiveAt:   c.effectiveAt,
		Amount:        c.amount,
		PaymentStatus: domain.PaymentFor(c.amount),
		Note:          req.Note,
		DedupeKey:     domain.DedupeKey(req.Selector.Class, member.ID, member.UnitID, c.resourceID),
		CreatedBy:     member.ID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err = s.ledger.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking requested",
		logger.String("booking_id", entry.ID),
		logger.String("building_id", entry.BuildingID),
		logger.String("member_id", entry.MemberID),
		logger.String("resource_id", entry.ResourceID),
		logger.String("policy", string(entry.Policy)),
	)

	if c.policy == domain.PolicyRequiresApproval {
		s.announce(ctx, member, entry)
		return entry, nil
	}

	confirmed, err := s.hold(ctx, entry, domain.EntryConfirmed, domain.SystemActor)
	if err != nil {
		s.rejectLoser(ctx, entry, err)
		return nil, err
	}

	s.logger.Info("booking confirmed",
		logger.String("booking_id", confirmed.ID),
		logger.String("resource_id", confirmed.ResourceID),
	)
	s.announce(ctx, member, confirmed)

	return confirmed, nil
}

// Approve re-checks the resource and reserves it for a pending entry. When
// several pending entries compete, the first reservation wins and the rest
// get domain.ErrAlreadyReserved; they are left pending for the approver.
func (s *AllocationService) Approve(ctx context.Context, buildingID, entryID, approverID string) (*domain.Entry, error) {
	entry, err := s.ledger.GetByID(ctx, buildingID, entryID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if entry.Status != domain.EntryPending {
		return nil, fmt.Errorf("%w: booking is %s", domain.ErrInvalidTransition, entry.Status)
	}
	if err = entry.CheckNotStarted(s.now()); err != nil {
		return nil, err
	}

	if entry.Class.Discrete() {
		res, err := s.resources.GetByID(ctx, buildingID, entry.ResourceID)
		if err != nil {
			return nil, fmt.Errorf("get resource: %w", err)
		}
		if res.Status == domain.ResourceOccupied {
			return nil, domain.ErrAlreadyReserved
		}
		if !res.Available() {
			return nil, fmt.Errorf("%w: resource is %s", domain.ErrResourceUnavailable, res.Status)
		}
	}

	approved, err := s.hold(ctx, entry, domain.EntryApproved, approverID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking approved",
		logger.String("booking_id", approved.ID),
		logger.String("resource_id", approved.ResourceID),
		logger.String("approver_id", approverID),
	)
	s.announceByID(ctx, approved)

	return approved, nil
}

func (s *AllocationService) Reject(ctx context.Context, buildingID, entryID, approverID string) (*domain.Entry, error) {
	rejected, err := s.ledger.Transition(ctx, buildingID, entryID, domain.EntryPending, domain.EntryRejected, approverID, s.now())
	if err != nil {
		return nil, fmt.Errorf("reject booking: %w", err)
	}

	s.logger.Info("booking rejected",
		logger.String("booking_id", rejected.ID),
		logger.String("approver_id", approverID),
	)
	s.announceByID(ctx, rejected)

	return rejected, nil
}

// Cancel is the requester's own cancellation. It is refused once the
// booking's effective time has passed, evaluated at call time.
func (s *AllocationService) Cancel(ctx context.Context, buildingID, entryID, requesterID string) (*domain.Entry, error) {
	entry, err := s.ledger.GetByID(ctx, buildingID, entryID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if entry.MemberID != requesterID {
		return nil, fmt.Errorf("%w: booking belongs to another member", domain.ErrForbidden)
	}
	if !domain.CanTransition(entry.Status, domain.EntryCancelled) {
		return nil, fmt.Errorf("%w: booking is %s", domain.ErrInvalidTransition, entry.Status)
	}

	now := s.now()
	if err = entry.CheckCancellable(now); err != nil {
		return nil, err
	}

	cancelled, err := s.ledger.Transition(ctx, buildingID, entryID, entry.Status, domain.EntryCancelled, requesterID, now)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	if entry.Status.Holding() {
		s.freeAfterClose(ctx, entry)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", cancelled.ID),
		logger.String("member_id", requesterID),
	)
	s.announceByID(ctx, cancelled)

	return cancelled, nil
}

// Release is the administrative end of a holding entry, e.g. a parking spot
// handed back. There is no date policy.
func (s *AllocationService) Release(ctx context.Context, buildingID, entryID, actorID string) (*domain.Entry, error) {
	entry, err := s.ledger.GetByID(ctx, buildingID, entryID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if !entry.Status.Holding() {
		return nil, fmt.Errorf("%w: booking is %s", domain.ErrInvalidTransition, entry.Status)
	}

	released, err := s.ledger.Transition(ctx, buildingID, entryID, entry.Status, domain.EntryReleased, actorID, s.now())
	if err != nil {
		return nil, fmt.Errorf("release booking: %w", err)
	}

	s.freeAfterClose(ctx, entry)

	s.logger.Info("booking released",
		logger.String("booking_id", released.ID),
		logger.String("actor_id", actorID),
	)
	s.announceByID(ctx, released)

	return released, nil
}

func (s *AllocationService) MarkPaid(ctx context.Context, buildingID, entryID, actorID string) (*domain.Entry, error) {
	paid, err := s.ledger.MarkPaid(ctx, buildingID, entryID, s.now())
	if err != nil {
		return nil, fmt.Errorf("mark paid: %w", err)
	}

	s.logger.Info("booking paid",
		logger.String("booking_id", paid.ID),
		logger.String("actor_id", actorID),
	)

	return paid, nil
}

// FindAvailable lists discrete resources that can be booked right now;
// slots that have already started are left out.
func (s *AllocationService) FindAvailable(ctx context.Context, buildingID string, f domain.ResourceFilter) ([]*domain.Resource, error) {
	if !f.Class.Discrete() {
		return nil, fmt.Errorf("%w: class must be %s or %s", domain.ErrValidation, domain.ClassAmenitySlot, domain.ClassParkingSpot)
	}

	found, err := s.resources.FindAvailable(ctx, buildingID, f)
	if err != nil {
		return nil, fmt.Errorf("find available: %w", err)
	}

	now := s.now()
	res := make([]*domain.Resource, 0, len(found))
	for _, r := range found {
		if bookable(r, now) {
			res = append(res, r)
		}
	}

	return res, nil
}

// CurrentHolder returns the holding entry of a discrete resource.
func (s *AllocationService) CurrentHolder(ctx context.Context, buildingID, resourceID string) (*domain.Entry, error) {
	entry, err := s.ledger.FindActiveByResource(ctx, buildingID, resourceID)
	if err != nil {
		return nil, fmt.Errorf("find holder: %w", err)
	}
	return entry, nil
}

func (s *AllocationService) ListMine(ctx context.Context, buildingID, memberID string, statuses []domain.EntryStatus) ([]*domain.Entry, error) {
	return s.ledger.ListByRequester(ctx, buildingID, memberID, statuses)
}

func (s *AllocationService) ListQueue(ctx context.Context, buildingID string, class domain.ResourceClass, statuses []domain.EntryStatus) ([]*domain.Entry, error) {
	if len(statuses) == 0 {
		statuses = []domain.EntryStatus{domain.EntryPending}
	}
	return s.ledger.ListByStatus(ctx, buildingID, class, statuses)
}

// CancelExpired closes pending entries whose effective time has passed; they
// can no longer be approved.
func (s *AllocationService) CancelExpired(ctx context.Context) ([]*domain.Entry, error) {
	cancelled, err := s.ledger.CancelExpiredPending(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("cancel expired: %w", err)
	}

	if len(cancelled) > 0 {
		s.logger.Info("expired bookings cancelled",
			logger.Int("count", len(cancelled)),
		)

		go s.notifyClosed(context.WithoutCancel(ctx), cancelled)
	}

	return cancelled, nil
}

// Reconcile frees resources left occupied by an entry that is not holding,
// the residue of a failed compensation. Only reservations older than the
// grace period are touched so in-flight bookings are not disturbed.
func (s *AllocationService) Reconcile(ctx context.Context) (int, error) {
	released, err := s.resources.ReleaseOrphaned(ctx, s.now().Add(-s.grace))
	if err != nil {
		return 0, fmt.Errorf("release orphaned: %w", err)
	}

	for _, r := range released {
		s.logger.Warn("orphaned reservation released",
			logger.String("resource_id", r.ID),
			logger.String("building_id", r.BuildingID),
		)
	}

	return len(released), nil
}

func (s *AllocationService) eligibleMember(ctx context.Context, buildingID, memberID, unitID string) (*domain.Member, error) {
	member, err := s.members.GetByID(ctx, buildingID, memberID)
	if err != nil {
		return nil, fmt.Errorf("check member: %w", err)
	}
	if member.UnitID != unitID {
		return nil, fmt.Errorf("%w: member does not belong to unit", domain.ErrForbidden)
	}
	return member, nil
}

func (s *AllocationService) resolve(ctx context.Context, req domain.BookingRequest, member *domain.Member) (*candidate, error) {
	sel := req.Selector
	now := s.now()

	if sel.Class == domain.ClassEvent {
		if sel.ResourceID == "" {
			return nil, fmt.Errorf("%w: event id is required", domain.ErrValidation)
		}
		event, err := s.events.GetByID(ctx, req.BuildingID, sel.ResourceID)
		if err != nil {
			return nil, fmt.Errorf("get event: %w", err)
		}
		if !event.StartsAt.After(now) {
			return nil, fmt.Errorf("%w: event has already started", domain.ErrResourceUnavailable)
		}
		if event.Full() {
			return nil, domain.ErrCapacityExceeded
		}
		return &candidate{
			resourceID:  event.ID,
			effectiveAt: &event.StartsAt,
			amount:      event.Fee,
			policy:      domain.PolicyFor(event.RequiresApproval),
		}, nil
	}

	if sel.Class == domain.ClassAmenitySlot && sel.ResourceID == "" && sel.PoolID == "" {
		return nil, fmt.Errorf("%w: slot id or amenity id is required", domain.ErrValidation)
	}

	var res *domain.Resource
	if sel.ResourceID != "" {
		r, err := s.resources.GetByID(ctx, req.BuildingID, sel.ResourceID)
		if err != nil {
			return nil, fmt.Errorf("get resource: %w", err)
		}
		if r.Class != sel.Class {
			return nil, fmt.Errorf("%w: resource is not a %s", domain.ErrValidation, sel.Class)
		}
		if !(domain.ResourceFilter{BlockID: member.BlockID}).Matches(r) {
			return nil, fmt.Errorf("%w: resource is restricted to another block", domain.ErrResourceUnavailable)
		}
		if !r.Available() || !bookable(r, now) {
			return nil, fmt.Errorf("%w: resource is %s", domain.ErrResourceUnavailable, r.Status)
		}
		res = r
	} else {
		found, err := s.resources.FindAvailable(ctx, req.BuildingID, domain.ResourceFilter{
			Class:   sel.Class,
			PoolID:  sel.PoolID,
			Date:    sel.Date,
			BlockID: member.BlockID,
		})
		if err != nil {
			return nil, fmt.Errorf("find available: %w", err)
		}
		for _, r := range found {
			if bookable(r, now) {
				res = r
				break
			}
		}
		if res == nil {
			return nil, fmt.Errorf("%w: nothing matches the selection", domain.ErrResourceUnavailable)
		}
	}

	return &candidate{
		resourceID:  res.ID,
		effectiveAt: res.StartsAt,
		amount:      res.Fee,
		policy:      domain.PolicyFor(res.RequiresApproval),
	}, nil
}

// hold acquires the resource (or a unit of capacity) and then moves the
// entry out of pending. A failed ledger step gives the acquisition back.
func (s *AllocationService) hold(ctx context.Context, entry *domain.Entry, to domain.EntryStatus, actorID string) (*domain.Entry, error) {
	if err := s.acquire(ctx, entry); err != nil {
		return nil, err
	}

	updated, err := s.ledger.Transition(ctx, entry.BuildingID, entry.ID, domain.EntryPending, to, actorID, s.now())
	if err != nil {
		if relErr := s.free(context.WithoutCancel(ctx), entry); relErr != nil {
			s.logger.Error("compensating release failed",
				logger.String("booking_id", entry.ID),
				logger.String("resource_id", entry.ResourceID),
				logger.String("error", relErr.Error()),
			)
		}
		return nil, fmt.Errorf("transition booking: %w", err)
	}

	return updated, nil
}

func (s *AllocationService) acquire(ctx context.Context, entry *domain.Entry) error {
	if entry.Class == domain.ClassEvent {
		return s.events.IncrementRegistration(ctx, entry.BuildingID, entry.ResourceID)
	}
	return s.resources.Reserve(ctx, entry.BuildingID, entry.ResourceID, entry.ID)
}

func (s *AllocationService) free(ctx context.Context, entry *domain.Entry) error {
	if entry.Class == domain.ClassEvent {
		return s.events.DecrementRegistration(ctx, entry.BuildingID, entry.ResourceID)
	}
	return s.resources.Release(ctx, entry.BuildingID, entry.ResourceID, entry.ID)
}

// freeAfterClose runs once the ledger already shows a terminal status. A
// failure here leaves an occupied resource with a closed holder, which
// Reconcile repairs; an event counter can only stay too high.
func (s *AllocationService) freeAfterClose(ctx context.Context, entry *domain.Entry) {
	err := s.free(context.WithoutCancel(ctx), entry)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotReserved):
		s.logger.Warn("resource was not reserved by booking",
			logger.String("booking_id", entry.ID),
			logger.String("resource_id", entry.ResourceID),
		)
	default:
		s.logger.Error("failed to free resource",
			logger.String("booking_id", entry.ID),
			logger.String("resource_id", entry.ResourceID),
			logger.String("error", err.Error()),
		)
	}
}

// rejectLoser closes an auto-confirm entry whose reservation did not go
// through, so it does not linger as pending.
func (s *AllocationService) rejectLoser(ctx context.Context, entry *domain.Entry, cause error) {
	rejected, err := s.ledger.Transition(context.WithoutCancel(ctx), entry.BuildingID, entry.ID,
		domain.EntryPending, domain.EntryRejected, domain.SystemActor, s.now())
	if err != nil {
		s.logger.Error("failed to reject unconfirmed booking",
			logger.String("booking_id", entry.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.logger.Info("booking lost reservation",
		logger.String("booking_id", entry.ID),
		logger.String("resource_id", entry.ResourceID),
		logger.String("cause", cause.Error()),
	)
	s.announceByID(context.WithoutCancel(ctx), rejected)
}

func (s *AllocationService) announce(ctx context.Context, member *domain.Member, entry *domain.Entry) {
	s.publish(ctx, entry)
	go s.notifier.NotifyEntry(context.WithoutCancel(ctx), member, entry)
}

func (s *AllocationService) announceByID(ctx context.Context, entry *domain.Entry) {
	s.publish(ctx, entry)

	member, err := s.members.GetByID(ctx, entry.BuildingID, entry.MemberID)
	if err != nil {
		s.logger.Error("failed to get member for notification",
			logger.String("member_id", entry.MemberID),
			logger.String("error", err.Error()),
		)
		return
	}

	go s.notifier.NotifyEntry(context.WithoutCancel(ctx), member, entry)
}

func (s *AllocationService) publish(ctx context.Context, entry *domain.Entry) {
	if err := s.publisher.PublishEntry(ctx, entry); err != nil {
		s.logger.Error("failed to publish booking event",
			logger.String("booking_id", entry.ID),
			logger.String("error", err.Error()),
		)
	}
}

func (s *AllocationService) notifyClosed(ctx context.Context, entries []*domain.Entry) {
	for _, e := range entries {
		s.announceByID(ctx, e)
	}
}

func bookable(r *domain.Resource, now time.Time) bool {
	return r.StartsAt == nil || r.StartsAt.After(now)
}
