package broker

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/SocietyBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutingKey(t *testing.T) {
	assert.Equal(t, "booking.confirmed", RoutingKey(domain.EntryConfirmed))
	assert.Equal(t, "booking.released", RoutingKey(domain.EntryReleased))
}

func TestNewEntryEvent(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	e := &domain.Entry{
		ID:            "e1",
		BuildingID:    "b1",
		Class:         domain.ClassParkingSpot,
		ResourceID:    "r1",
		MemberID:      "m1",
		UnitID:        "A-101",
		Status:        domain.EntryApproved,
		Amount:        decimal.NewFromInt(15),
		PaymentStatus: domain.PaymentUnpaid,
		UpdatedAt:     at,
	}

	body, err := json.Marshal(NewEntryEvent(e))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "e1", got["entry_id"])
	assert.Equal(t, "approved", got["status"])
	assert.Equal(t, "15.00", got["amount"])
	assert.NotContains(t, got, "effective_at")
}

func TestNoop(t *testing.T) {
	var n Noop
	assert.NoError(t, n.PublishEntry(context.Background(), &domain.Entry{}))
	assert.NoError(t, n.Close())
}
