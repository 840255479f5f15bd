package notification

import (
	"context"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/SocietyBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func TestEntryText(t *testing.T) {
	at := time.Date(2026, 5, 2, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		entry    *domain.Entry
		contains []string
		excludes []string
	}{
		{
			name: "confirmed amenity with date",
			entry: &domain.Entry{
				Status: domain.EntryConfirmed, Class: domain.ClassAmenitySlot,
				UnitID: "A-12", EffectiveAt: &at, PaymentStatus: domain.PaymentNotRequired,
			},
			contains: []string{"подтверждено", "удобство", "A-12", "02.05.2026 18:30"},
			excludes: []string{"К оплате"},
		},
		{
			name: "approved parking with fee",
			entry: &domain.Entry{
				Status: domain.EntryApproved, Class: domain.ClassParkingSpot, UnitID: "B-3",
				Amount: decimal.RequireFromString("25.5"), PaymentStatus: domain.PaymentUnpaid,
			},
			contains: []string{"одобрена", "парковочное место", "К оплате: 25.50"},
			excludes: []string{"Дата"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := EntryText(tt.entry)
			for _, s := range tt.contains {
				assert.Contains(t, text, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, text, s)
			}
		})
	}
}

func TestEntryText_UnknownStatus(t *testing.T) {
	assert.Empty(t, EntryText(&domain.Entry{Status: "archived"}))
}

func TestSendCode_NoChat(t *testing.T) {
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	n := &TelegramNotifier{bot: &tgbotapi.BotAPI{}, logger: log}

	err = n.SendCode(context.Background(), &domain.Member{ID: "m-1"}, "123456")
	assert.ErrorIs(t, err, domain.ErrNoDeliveryChannel)
	assert.Equal(t, "VALIDATION", domain.Code(err))
}

func TestSendCode_BotDisabled(t *testing.T) {
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	n, err := NewTelegramNotifier("", log)
	require.NoError(t, err)

	assert.NoError(t, n.SendCode(context.Background(), &domain.Member{ID: "m-1"}, "123456"))
}
