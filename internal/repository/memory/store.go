// Package memory keeps every table in process memory behind one mutex. It
// gives the same conditional-update guarantees as the Postgres repositories
// and backs the memory storage driver.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/stpnv0/SocietyBooker/internal/domain"
)

type Store struct {
	mu        sync.Mutex
	pools     map[string]*domain.Pool
	resources map[string]*domain.Resource
	events    map[string]*domain.Event
	entries   map[string]*domain.Entry
	members   map[string]*domain.Member
}

func NewStore() *Store {
	return &Store{
		pools:     make(map[string]*domain.Pool),
		resources: make(map[string]*domain.Resource),
		events:    make(map[string]*domain.Event),
		entries:   make(map[string]*domain.Entry),
		members:   make(map[string]*domain.Member),
	}
}

func (s *Store) Pools() *PoolRepository         { return &PoolRepository{s: s} }
func (s *Store) Resources() *ResourceRepository { return &ResourceRepository{s: s} }
func (s *Store) Events() *EventRepository       { return &EventRepository{s: s} }
func (s *Store) Ledger() *LedgerRepository      { return &LedgerRepository{s: s} }
func (s *Store) Members() *MemberRepository     { return &MemberRepository{s: s} }

type PoolRepository struct{ s *Store }

func (r *PoolRepository) Create(_ context.Context, p *domain.Pool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cp := *p
	r.s.pools[p.ID] = &cp
	return nil
}

func (r *PoolRepository) GetByID(_ context.Context, buildingID, id string) (*domain.Pool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.pools[id]
	if !ok || p.BuildingID != buildingID || p.DeletedAt != nil {
		return nil, domain.ErrPoolNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *PoolRepository) List(_ context.Context, buildingID string, class domain.ResourceClass) ([]*domain.Pool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var res []*domain.Pool
	for _, p := range r.s.pools {
		if p.BuildingID != buildingID || p.DeletedAt != nil {
			continue
		}
		if class != "" && p.Class != class {
			continue
		}
		cp := *p
		res = append(res, &cp)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res, nil
}

type ResourceRepository struct{ s *Store }

func (r *ResourceRepository) Create(_ context.Context, res *domain.Resource) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pools[res.PoolID]; !ok {
		return domain.ErrPoolNotFound
	}
	for _, other := range r.s.resources {
		if res.Overlaps(other) {
			return domain.ErrSlotOverlap
		}
	}
	cp := *res
	r.s.resources[res.ID] = &cp
	return nil
}

func (r *ResourceRepository) GetByID(_ context.Context, buildingID, id string) (*domain.Resource, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res, ok := r.s.lookupResource(buildingID, id)
	if !ok {
		return nil, domain.ErrResourceNotFound
	}
	return r.s.withPool(res), nil
}

func (r *ResourceRepository) FindAvailable(_ context.Context, buildingID string, f domain.ResourceFilter) ([]*domain.Resource, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var res []*domain.Resource
	for _, rs := range r.s.resources {
		if rs.BuildingID != buildingID || !rs.Available() || !f.Matches(rs) {
			continue
		}
		res = append(res, r.s.withPool(rs))
	}
	sortResources(res)
	return res, nil
}

func (r *ResourceRepository) Reserve(_ context.Context, buildingID, id, entryID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res, ok := r.s.lookupResource(buildingID, id)
	if !ok {
		return domain.ErrResourceNotFound
	}
	switch res.Status {
	case domain.ResourceAvailable:
	case domain.ResourceOccupied:
		return domain.ErrAlreadyReserved
	default:
		return fmt.Errorf("%w: resource is %s", domain.ErrResourceUnavailable, res.Status)
	}

	now := time.Now().UTC()
	res.Status = domain.ResourceOccupied
	res.HeldBy = &entryID
	res.ReservedAt = &now
	res.UpdatedAt = now
	return nil
}

func (r *ResourceRepository) Release(_ context.Context, buildingID, id, entryID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res, ok := r.s.resources[id]
	if !ok || res.BuildingID != buildingID {
		return domain.ErrResourceNotFound
	}
	if res.Status != domain.ResourceOccupied || res.HeldBy == nil || *res.HeldBy != entryID {
		return domain.ErrNotReserved
	}

	res.Status = domain.ResourceAvailable
	res.HeldBy = nil
	res.ReservedAt = nil
	res.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *ResourceRepository) SetMaintenance(_ context.Context, buildingID, id string, on bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res, ok := r.s.lookupResource(buildingID, id)
	if !ok {
		return domain.ErrResourceNotFound
	}

	from, to := domain.ResourceAvailable, domain.ResourceMaintenance
	if !on {
		from, to = to, from
	}
	if res.Status != from {
		return domain.MaintenanceConflict(res.Status)
	}

	res.Status = to
	res.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *ResourceRepository) SoftDelete(_ context.Context, buildingID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res, ok := r.s.lookupResource(buildingID, id)
	if !ok {
		return domain.ErrResourceNotFound
	}
	if res.Status == domain.ResourceOccupied {
		return domain.ErrResourceInUse
	}

	now := time.Now().UTC()
	res.DeletedAt = &now
	res.UpdatedAt = now
	return nil
}

func (r *ResourceRepository) ReleaseOrphaned(_ context.Context, reservedBefore time.Time) ([]*domain.Resource, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var res []*domain.Resource
	for _, rs := range r.s.resources {
		if rs.Status != domain.ResourceOccupied || rs.ReservedAt == nil || !rs.ReservedAt.Before(reservedBefore) {
			continue
		}
		if rs.HeldBy != nil {
			if e, ok := r.s.entries[*rs.HeldBy]; ok && e.Status.Holding() {
				continue
			}
		}
		rs.Status = domain.ResourceAvailable
		rs.HeldBy = nil
		rs.ReservedAt = nil
		rs.UpdatedAt = time.Now().UTC()
		res = append(res, r.s.withPool(rs))
	}
	return res, nil
}

func (r *ResourceRepository) CountByStatus(_ context.Context, buildingID string) (map[domain.ResourceClass]map[domain.ResourceStatus]int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res := make(map[domain.ResourceClass]map[domain.ResourceStatus]int)
	for _, rs := range r.s.resources {
		if rs.BuildingID != buildingID || rs.DeletedAt != nil {
			continue
		}
		if res[rs.Class] == nil {
			res[rs.Class] = make(map[domain.ResourceStatus]int)
		}
		res[rs.Class][rs.Status]++
	}
	return res, nil
}

type EventRepository struct{ s *Store }

func (r *EventRepository) Create(_ context.Context, e *domain.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cp := *e
	r.s.events[e.ID] = &cp
	return nil
}

func (r *EventRepository) GetByID(_ context.Context, buildingID, id string) (*domain.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.lookupEvent(buildingID, id)
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *EventRepository) ListOpen(_ context.Context, buildingID string, now time.Time) ([]*domain.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var res []*domain.Event
	for _, e := range r.s.events {
		if e.BuildingID != buildingID || e.DeletedAt != nil || e.Full() || !e.StartsAt.After(now) {
			continue
		}
		cp := *e
		res = append(res, &cp)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].StartsAt.Before(res[j].StartsAt) })
	return res, nil
}

func (r *EventRepository) IncrementRegistration(_ context.Context, buildingID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.lookupEvent(buildingID, id)
	if !ok {
		return domain.ErrEventNotFound
	}
	if e.RegisteredCount >= e.RegistrationLimit {
		return domain.ErrCapacityExceeded
	}
	e.RegisteredCount++
	e.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *EventRepository) DecrementRegistration(_ context.Context, buildingID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.events[id]
	if !ok || e.BuildingID != buildingID {
		return domain.ErrEventNotFound
	}
	if e.RegisteredCount > 0 {
		e.RegisteredCount--
		e.UpdatedAt = time.Now().UTC()
	}
	return nil
}

type MemberRepository struct{ s *Store }

func (r *MemberRepository) Create(_ context.Context, m *domain.Member) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.members {
		if existing.Phone == m.Phone && existing.DeletedAt == nil {
			return domain.ErrPhoneTaken
		}
	}
	cp := *m
	r.s.members[m.ID] = &cp
	return nil
}

func (r *MemberRepository) GetByID(_ context.Context, buildingID, id string) (*domain.Member, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.members[id]
	if !ok || m.BuildingID != buildingID || m.DeletedAt != nil {
		return nil, domain.ErrMemberNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *MemberRepository) GetByPhone(_ context.Context, phone string) (*domain.Member, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, m := range r.s.members {
		if m.Phone == phone && m.DeletedAt == nil {
			cp := *m
			return &cp, nil
		}
	}
	return nil, domain.ErrMemberNotFound
}

// lookupResource returns the stored pointer; callers hold the lock.
func (s *Store) lookupResource(buildingID, id string) (*domain.Resource, bool) {
	res, ok := s.resources[id]
	if !ok || res.BuildingID != buildingID || res.DeletedAt != nil {
		return nil, false
	}
	return res, true
}

func (s *Store) lookupEvent(buildingID, id string) (*domain.Event, bool) {
	e, ok := s.events[id]
	if !ok || e.BuildingID != buildingID || e.DeletedAt != nil {
		return nil, false
	}
	return e, true
}

func (s *Store) withPool(res *domain.Resource) *domain.Resource {
	cp := *res
	if p, ok := s.pools[res.PoolID]; ok {
		cp.RequiresApproval = p.RequiresApproval
		cp.Fee = p.Fee
	}
	return &cp
}

func sortResources(res []*domain.Resource) {
	sort.Slice(res, func(i, j int) bool {
		a, b := res[i], res[j]
		if a.StartsAt != nil && b.StartsAt != nil && !a.StartsAt.Equal(*b.StartsAt) {
			return a.StartsAt.Before(*b.StartsAt)
		}
		if a.Label != b.Label {
			return a.Label < b.Label
		}
		return a.ID < b.ID
	})
}
