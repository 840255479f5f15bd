package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/SocietyBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChallengeStore_Lifecycle(t *testing.T) {
	s := NewChallengeStore()
	now := time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &domain.Challenge{Phone: "+7900", CodeHash: "h"}, time.Minute))

	n, err := s.IncrAttempts(ctx, "+7900")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	c, err := s.Get(ctx, "+7900")
	require.NoError(t, err)
	assert.Equal(t, 1, c.Attempts)
	assert.Equal(t, now.Add(time.Minute), c.ExpiresAt)

	// A new code replaces the old one and resets attempts.
	require.NoError(t, s.Save(ctx, &domain.Challenge{Phone: "+7900", CodeHash: "h2"}, time.Minute))
	c, err = s.Get(ctx, "+7900")
	require.NoError(t, err)
	assert.Zero(t, c.Attempts)
	assert.Equal(t, "h2", c.CodeHash)

	require.NoError(t, s.Delete(ctx, "+7900"))
	_, err = s.Get(ctx, "+7900")
	assert.ErrorIs(t, err, domain.ErrChallengeNotFound)
}

func TestChallengeStore_Expiry(t *testing.T) {
	s := NewChallengeStore()
	now := time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &domain.Challenge{Phone: "+7900", CodeHash: "h"}, time.Minute))

	now = now.Add(time.Minute)

	_, err := s.Get(ctx, "+7900")
	assert.ErrorIs(t, err, domain.ErrChallengeNotFound)
	_, err = s.IncrAttempts(ctx, "+7900")
	assert.ErrorIs(t, err, domain.ErrChallengeNotFound)
}
