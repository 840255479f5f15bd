package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/SocietyBooker/internal/domain"
	"github.com/stpnv0/SocietyBooker/internal/repository/memory"
	"github.com/stpnv0/SocietyBooker/internal/service/ports"
	"github.com/stpnv0/SocietyBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testPhone = "+79001234567"

var testAuthOptions = AuthOptions{
	Secret:      "test-secret-0123456789",
	TokenTTL:    time.Hour,
	CodeTTL:     5 * time.Minute,
	CodeLength:  6,
	MaxAttempts: 3,
	HashCost:    bcrypt.MinCost,
}

func testMember() *domain.Member {
	return &domain.Member{
		ID:         "m-1",
		BuildingID: testBuilding,
		BlockID:    "A",
		UnitID:     "101",
		Phone:      testPhone,
		Role:       domain.RoleAdmin,
	}
}

func newAuthService(t *testing.T, challenges ports.ChallengeStore) (*AuthService, *mocks.MockMemberRepo, *mocks.MockBookingNotifier) {
	t.Helper()
	members := mocks.NewMockMemberRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)

	svc := NewAuthService(members, challenges, notifier, testAuthOptions, newTestLogger(t))
	svc.now = func() time.Time { return baseTime }
	return svc, members, notifier
}

// issueCode runs RequestChallenge and returns the code handed to the notifier.
func issueCode(t *testing.T, svc *AuthService, members *mocks.MockMemberRepo, notifier *mocks.MockBookingNotifier) string {
	t.Helper()
	var code string
	members.EXPECT().GetByPhone(mock.Anything, testPhone).Return(testMember(), nil)
	notifier.EXPECT().SendCode(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ *domain.Member, c string) error {
			code = c
			return nil
		}).Once()

	require.NoError(t, svc.RequestChallenge(context.Background(), testPhone))
	require.Len(t, code, testAuthOptions.CodeLength)
	return code
}

func TestAuth_VerifyIssuesScopedToken(t *testing.T) {
	svc, members, notifier := newAuthService(t, memory.NewChallengeStore())
	code := issueCode(t, svc, members, notifier)

	session, err := svc.Verify(context.Background(), testPhone, code)
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, baseTime.Add(time.Hour), session.ExpiresAt)

	id, err := svc.ParseToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "m-1", id.MemberID)
	assert.Equal(t, testBuilding, id.BuildingID)
	assert.Equal(t, "101", id.UnitID)
	assert.True(t, id.IsAdmin())

	// The code is single use.
	_, err = svc.Verify(context.Background(), testPhone, code)
	assert.ErrorIs(t, err, domain.ErrChallengeNotFound)
}

func TestAuth_WrongCode_CountsAttempts(t *testing.T) {
	svc, members, notifier := newAuthService(t, memory.NewChallengeStore())
	code := issueCode(t, svc, members, notifier)

	wrong := "000000"
	if code == wrong {
		wrong = "111111"
	}

	_, err := svc.Verify(context.Background(), testPhone, wrong)
	assert.ErrorIs(t, err, domain.ErrInvalidCode)
	_, err = svc.Verify(context.Background(), testPhone, wrong)
	assert.ErrorIs(t, err, domain.ErrInvalidCode)
	_, err = svc.Verify(context.Background(), testPhone, wrong)
	assert.ErrorIs(t, err, domain.ErrTooManyAttempts)

	// The challenge is gone, even for the right code.
	_, err = svc.Verify(context.Background(), testPhone, code)
	assert.ErrorIs(t, err, domain.ErrChallengeNotFound)
}

func TestAuth_ExhaustedChallenge_Dropped(t *testing.T) {
	challenges := mocks.NewMockChallengeStore(t)
	svc, _, _ := newAuthService(t, challenges)

	challenges.EXPECT().Get(mock.Anything, testPhone).
		Return(&domain.Challenge{Phone: testPhone, Attempts: 3}, nil)
	challenges.EXPECT().Delete(mock.Anything, testPhone).Return(nil).Once()

	_, err := svc.Verify(context.Background(), testPhone, "123456")
	assert.ErrorIs(t, err, domain.ErrTooManyAttempts)
}

func TestAuth_RequestChallenge_UnknownPhone(t *testing.T) {
	challenges := mocks.NewMockChallengeStore(t)
	svc, members, _ := newAuthService(t, challenges)

	members.EXPECT().GetByPhone(mock.Anything, testPhone).Return(nil, domain.ErrMemberNotFound)

	err := svc.RequestChallenge(context.Background(), testPhone)
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}

func TestAuth_RequestChallenge_EmptyPhone(t *testing.T) {
	svc, _, _ := newAuthService(t, mocks.NewMockChallengeStore(t))

	err := svc.RequestChallenge(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuth_RequestChallenge_StoresHashOnly(t *testing.T) {
	challenges := mocks.NewMockChallengeStore(t)
	svc, members, notifier := newAuthService(t, challenges)

	var saved *domain.Challenge
	challenges.EXPECT().Save(mock.Anything, mock.Anything, testAuthOptions.CodeTTL).
		RunAndReturn(func(_ context.Context, c *domain.Challenge, _ time.Duration) error {
			saved = c
			return nil
		})

	code := issueCode(t, svc, members, notifier)

	require.NotNil(t, saved)
	assert.NotEqual(t, code, saved.CodeHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.CodeHash), []byte(code)))
	assert.Equal(t, baseTime.Add(testAuthOptions.CodeTTL), saved.ExpiresAt)
}

func TestAuth_RequestChallenge_SendFailure(t *testing.T) {
	challenges := mocks.NewMockChallengeStore(t)
	svc, members, notifier := newAuthService(t, challenges)

	members.EXPECT().GetByPhone(mock.Anything, testPhone).Return(testMember(), nil)
	challenges.EXPECT().Save(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().SendCode(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("telegram down"))
	challenges.EXPECT().Delete(mock.Anything, testPhone).Return(nil).Once()

	err := svc.RequestChallenge(context.Background(), testPhone)
	assert.ErrorContains(t, err, "send code")
	assert.Equal(t, "INTERNAL", domain.Code(err))
}

func TestAuth_RequestChallenge_NoDeliveryChannel(t *testing.T) {
	store := memory.NewChallengeStore()
	svc, members, notifier := newAuthService(t, store)

	members.EXPECT().GetByPhone(mock.Anything, testPhone).Return(testMember(), nil)
	notifier.EXPECT().SendCode(mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrNoDeliveryChannel)

	err := svc.RequestChallenge(context.Background(), testPhone)
	assert.ErrorIs(t, err, domain.ErrNoDeliveryChannel)
	assert.Equal(t, "VALIDATION", domain.Code(err))

	_, err = store.Get(context.Background(), testPhone)
	assert.ErrorIs(t, err, domain.ErrChallengeNotFound)
}

func TestAuth_ParseToken_Rejects(t *testing.T) {
	svc, _, _ := newAuthService(t, mocks.NewMockChallengeStore(t))

	session, err := svc.issue(testMember().Identity())
	require.NoError(t, err)

	other := NewAuthService(nil, nil, nil, AuthOptions{Secret: "another-secret-987654"}, newTestLogger(t))
	other.now = svc.now

	tests := []struct {
		name  string
		svc   *AuthService
		token string
		now   time.Time
	}{
		{"garbage", svc, "not-a-token", baseTime},
		{"tampered", svc, session.Token[:len(session.Token)-2] + "xx", baseTime},
		{"wrong secret", other, session.Token, baseTime},
		{"expired", svc, session.Token, baseTime.Add(2 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := tt.now
			tt.svc.now = func() time.Time { return now }
			t.Cleanup(func() { tt.svc.now = func() time.Time { return baseTime } })

			_, err := tt.svc.ParseToken(tt.token)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func TestAuth_ParseToken_RequiresBuildingScope(t *testing.T) {
	svc, _, _ := newAuthService(t, mocks.NewMockChallengeStore(t))

	session, err := svc.issue(domain.Identity{MemberID: "m-1"})
	require.NoError(t, err)

	_, err = svc.ParseToken(session.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRandomCode(t *testing.T) {
	code, err := randomCode(8)
	require.NoError(t, err)
	assert.Len(t, code, 8)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9')
	}

	code, err = randomCode(0)
	require.NoError(t, err)
	assert.Len(t, code, 6)
}
