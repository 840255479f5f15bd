package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stpnv0/SocietyBooker/internal/domain"
	"github.com/stpnv0/SocietyBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"
)

type AuthOptions struct {
	Secret      string
	TokenTTL    time.Duration
	CodeTTL     time.Duration
	CodeLength  int
	MaxAttempts int
	HashCost    int
}

// AuthService issues one-time codes and, once a code is verified, a signed
// session token carrying the member's building scope.
type AuthService struct {
	members    ports.MemberRepo
	challenges ports.ChallengeStore
	notifier   ports.BookingNotifier
	opts       AuthOptions
	logger     logger.Logger
	now        func() time.Time
}

type sessionClaims struct {
	domain.Identity
	jwt.RegisteredClaims
}

func NewAuthService(
	members ports.MemberRepo,
	challenges ports.ChallengeStore,
	notifier ports.BookingNotifier,
	opts AuthOptions,
	logger logger.Logger,
) *AuthService {
	if opts.HashCost == 0 {
		opts.HashCost = bcrypt.DefaultCost
	}
	return &AuthService{
		members:    members,
		challenges: challenges,
		notifier:   notifier,
		opts:       opts,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *AuthService) RequestChallenge(ctx context.Context, phone string) error {
	if phone == "" {
		return fmt.Errorf("%w: phone is required", domain.ErrValidation)
	}

	member, err := s.members.GetByPhone(ctx, phone)
	if err != nil {
		return fmt.Errorf("get member: %w", err)
	}

	code, err := randomCode(s.opts.CodeLength)
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), s.opts.HashCost)
	if err != nil {
		return fmt.Errorf("hash code: %w", err)
	}

	challenge := &domain.Challenge{
		Phone:     phone,
		CodeHash:  string(hash),
		ExpiresAt: s.now().Add(s.opts.CodeTTL),
	}
	if err = s.challenges.Save(ctx, challenge, s.opts.CodeTTL); err != nil {
		return fmt.Errorf("save challenge: %w", err)
	}

	if err = s.notifier.SendCode(ctx, member, code); err != nil {
		s.drop(ctx, phone)
		return fmt.Errorf("send code: %w", err)
	}

	s.logger.Info("challenge issued",
		logger.String("member_id", member.ID),
		logger.Duration("ttl", s.opts.CodeTTL),
	)

	return nil
}

func (s *AuthService) Verify(ctx context.Context, phone, code string) (*domain.Session, error) {
	challenge, err := s.challenges.Get(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("get challenge: %w", err)
	}

	if challenge.Attempts >= s.opts.MaxAttempts {
		s.drop(ctx, phone)
		return nil, domain.ErrTooManyAttempts
	}

	if bcrypt.CompareHashAndPassword([]byte(challenge.CodeHash), []byte(code)) != nil {
		attempts, err := s.challenges.IncrAttempts(ctx, phone)
		if err != nil {
			return nil, fmt.Errorf("count attempt: %w", err)
		}
		if attempts >= s.opts.MaxAttempts {
			s.drop(ctx, phone)
			return nil, domain.ErrTooManyAttempts
		}
		return nil, domain.ErrInvalidCode
	}

	s.drop(ctx, phone)

	member, err := s.members.GetByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("get member: %w", err)
	}

	session, err := s.issue(member.Identity())
	if err != nil {
		return nil, err
	}

	s.logger.Info("session issued",
		logger.String("member_id", member.ID),
		logger.String("building_id", member.BuildingID),
	)

	return session, nil
}

func (s *AuthService) ParseToken(token string) (domain.Identity, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return []byte(s.opts.Secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if claims.MemberID == "" || claims.BuildingID == "" {
		return domain.Identity{}, fmt.Errorf("%w: token has no building scope", domain.ErrUnauthorized)
	}

	return claims.Identity, nil
}

func (s *AuthService) issue(id domain.Identity) (*domain.Session, error) {
	now := s.now()
	expires := now.Add(s.opts.TokenTTL)

	claims := sessionClaims{
		Identity: id,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.MemberID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.opts.Secret))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &domain.Session{Token: signed, ExpiresAt: expires, Identity: id}, nil
}

func (s *AuthService) drop(ctx context.Context, phone string) {
	if err := s.challenges.Delete(ctx, phone); err != nil && !errors.Is(err, domain.ErrChallengeNotFound) {
		s.logger.Error("failed to delete challenge",
			logger.String("error", err.Error()),
		)
	}
}

func randomCode(length int) (string, error) {
	if length <= 0 {
		length = 6
	}
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
