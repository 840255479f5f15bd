package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stpnv0/SocietyBooker/internal/domain"
)

const challengePrefix = "auth:challenge:"

// incrAttempts bumps the counter only while the challenge is alive, so an
// expired key is never resurrected without a TTL.
var incrAttempts = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return -1
end
return redis.call('HINCRBY', KEYS[1], 'attempts', 1)
`)

// ChallengeStore keeps one-time login codes in Redis hashes that expire on
// their own.
type ChallengeStore struct {
	client *redis.Client
}

func NewChallengeStore(client *redis.Client) *ChallengeStore {
	return &ChallengeStore{client: client}
}

func (s *ChallengeStore) Save(ctx context.Context, c *domain.Challenge, ttl time.Duration) error {
	key := challengePrefix + c.Phone
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key,
			"code_hash", c.CodeHash,
			"attempts", c.Attempts,
			"expires_at", c.ExpiresAt.UTC().Format(time.RFC3339Nano),
		)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("save challenge: %w", err)
	}

	return nil
}

func (s *ChallengeStore) Get(ctx context.Context, phone string) (*domain.Challenge, error) {
	vals, err := s.client.HGetAll(ctx, challengePrefix+phone).Result()
	if err != nil {
		return nil, fmt.Errorf("get challenge: %w", err)
	}
	if len(vals) == 0 {
		return nil, domain.ErrChallengeNotFound
	}

	attempts, err := strconv.Atoi(vals["attempts"])
	if err != nil {
		return nil, fmt.Errorf("parse attempts: %w", err)
	}
	expiresAt, err := time.Parse(time.RFC3339Nano, vals["expires_at"])
	if err != nil {
		return nil, fmt.Errorf("parse expiry: %w", err)
	}

	return &domain.Challenge{
		Phone:     phone,
		CodeHash:  vals["code_hash"],
		Attempts:  attempts,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *ChallengeStore) IncrAttempts(ctx context.Context, phone string) (int, error) {
	n, err := incrAttempts.Run(ctx, s.client, []string{challengePrefix + phone}).Int()
	if err != nil {
		return 0, fmt.Errorf("increment attempts: %w", err)
	}
	if n < 0 {
		return 0, domain.ErrChallengeNotFound
	}

	return n, nil
}

func (s *ChallengeStore) Delete(ctx context.Context, phone string) error {
	if err := s.client.Del(ctx, challengePrefix+phone).Err(); err != nil {
		return fmt.Errorf("delete challenge: %w", err)
	}
	return nil
}
