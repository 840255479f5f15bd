package memory

import (
	"context"
	"sort"
	"time"

	"github.com/stpnv0/SocietyBooker/internal/domain"
)

type LedgerRepository struct{ s *Store }

// Create enforces the same two uniqueness rules as the ledger's partial
// indexes: one non-terminal entry per dedupe key, one holding entry per
// resource.
func (r *LedgerRepository) Create(_ context.Context, e *domain.Entry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, other := range r.s.entries {
		if other.BuildingID != e.BuildingID || other.Status.Terminal() {
			continue
		}
		if e.DedupeKey != nil && other.DedupeKey != nil && *e.DedupeKey == *other.DedupeKey {
			return domain.ErrDuplicateActiveEntry
		}
		if e.Status.Holding() && other.Status.Holding() && other.ResourceID == e.ResourceID {
			return domain.ErrDuplicateActiveEntry
		}
	}

	cp := *e
	r.s.entries[e.ID] = &cp
	return nil
}

func (r *LedgerRepository) GetByID(_ context.Context, buildingID, id string) (*domain.Entry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.entries[id]
	if !ok || e.BuildingID != buildingID {
		return nil, domain.ErrEntryNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *LedgerRepository) Transition(
	_ context.Context,
	buildingID, id string,
	from, to domain.EntryStatus,
	actorID string,
	at time.Time,
) (*domain.Entry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.entries[id]
	if !ok || e.BuildingID != buildingID {
		return nil, domain.ErrEntryNotFound
	}
	if e.Status != from || !domain.CanTransition(from, to) {
		return nil, domain.ErrInvalidTransition
	}
	if to.Holding() && e.Class.Discrete() {
		for _, other := range r.s.entries {
			if other.ID != e.ID && other.ResourceID == e.ResourceID && other.Class.Discrete() && other.Status.Holding() {
				return nil, domain.ErrDuplicateActiveEntry
			}
		}
	}

	e.Stamp(to, actorID, at)
	cp := *e
	return &cp, nil
}

func (r *LedgerRepository) FindActiveByResource(_ context.Context, buildingID, resourceID string) (*domain.Entry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, e := range r.s.entries {
		if e.BuildingID == buildingID && e.ResourceID == resourceID && e.Status.Holding() {
			cp := *e
			return &cp, nil
		}
	}
	return nil, domain.ErrEntryNotFound
}

func (r *LedgerRepository) ListByRequester(_ context.Context, buildingID, memberID string, statuses []domain.EntryStatus) ([]*domain.Entry, error) {
	return r.list(func(e *domain.Entry) bool {
		return e.BuildingID == buildingID && e.MemberID == memberID && hasStatus(statuses, e.Status)
	}), nil
}

func (r *LedgerRepository) ListByStatus(_ context.Context, buildingID string, class domain.ResourceClass, statuses []domain.EntryStatus) ([]*domain.Entry, error) {
	return r.list(func(e *domain.Entry) bool {
		return e.BuildingID == buildingID && (class == "" || e.Class == class) && hasStatus(statuses, e.Status)
	}), nil
}

func (r *LedgerRepository) CancelExpiredPending(_ context.Context, now time.Time) ([]*domain.Entry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var res []*domain.Entry
	for _, e := range r.s.entries {
		if e.Status != domain.EntryPending || e.EffectiveAt == nil || e.EffectiveAt.After(now) {
			continue
		}
		e.Stamp(domain.EntryCancelled, domain.SystemActor, now)
		cp := *e
		res = append(res, &cp)
	}
	return res, nil
}

func (r *LedgerRepository) MarkPaid(_ context.Context, buildingID, id string, at time.Time) (*domain.Entry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.entries[id]
	if !ok || e.BuildingID != buildingID {
		return nil, domain.ErrEntryNotFound
	}
	if !e.Status.Holding() || e.PaymentStatus != domain.PaymentUnpaid {
		return nil, domain.ErrInvalidTransition
	}

	e.PaymentStatus = domain.PaymentPaid
	e.UpdatedAt = at
	cp := *e
	return &cp, nil
}

func (r *LedgerRepository) CountByStatus(_ context.Context, buildingID string) (map[domain.EntryStatus]int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res := make(map[domain.EntryStatus]int)
	for _, e := range r.s.entries {
		if e.BuildingID == buildingID {
			res[e.Status]++
		}
	}
	return res, nil
}

func (r *LedgerRepository) list(keep func(*domain.Entry) bool) []*domain.Entry {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var res []*domain.Entry
	for _, e := range r.s.entries {
		if keep(e) {
			cp := *e
			res = append(res, &cp)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res
}

// hasStatus treats an empty filter as "any status".
func hasStatus(statuses []domain.EntryStatus, s domain.EntryStatus) bool {
	if len(statuses) == 0 {
		return true
	}
	for _, st := range statuses {
		if st == s {
			return true
		}
	}
	return false
}
