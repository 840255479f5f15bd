package memory

import (
	"context"
	"sync"
	"time"

	"github.com/stpnv0/SocietyBooker/internal/domain"
)

// ChallengeStore is the in-process counterpart of the Redis challenge store.
// Expired challenges are dropped on read.
type ChallengeStore struct {
	mu    sync.Mutex
	items map[string]*domain.Challenge
	now   func() time.Time
}

func NewChallengeStore() *ChallengeStore {
	return &ChallengeStore{
		items: make(map[string]*domain.Challenge),
		now:   time.Now,
	}
}

func (s *ChallengeStore) Save(_ context.Context, c *domain.Challenge, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *c
	cp.ExpiresAt = s.now().Add(ttl)
	s.items[c.Phone] = &cp
	return nil
}

func (s *ChallengeStore) Get(_ context.Context, phone string) (*domain.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.live(phone)
	if !ok {
		return nil, domain.ErrChallengeNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *ChallengeStore) IncrAttempts(_ context.Context, phone string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.live(phone)
	if !ok {
		return 0, domain.ErrChallengeNotFound
	}
	c.Attempts++
	return c.Attempts, nil
}

func (s *ChallengeStore) Delete(_ context.Context, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, phone)
	return nil
}

func (s *ChallengeStore) live(phone string) (*domain.Challenge, bool) {
	c, ok := s.items[phone]
	if !ok {
		return nil, false
	}
	if !s.now().Before(c.ExpiresAt) {
		delete(s.items, phone)
		return nil, false
	}
	return c, true
}
