package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/SocietyBooker/internal/domain"
	"github.com/stpnv0/SocietyBooker/internal/handler/dto"
	hmocks "github.com/stpnv0/SocietyBooker/internal/handler/mocks"
	"github.com/stpnv0/SocietyBooker/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	memberToken = "member-token"
	adminToken  = "admin-token"
)

var (
	memberID = domain.Identity{MemberID: "m-1", BuildingID: "b1", BlockID: "A", UnitID: "101", Role: domain.RoleMember}
	adminID  = domain.Identity{MemberID: "m-9", BuildingID: "b1", UnitID: "001", Role: domain.RoleAdmin}
)

type fakeTokens map[string]domain.Identity

func (f fakeTokens) ParseToken(token string) (domain.Identity, error) {
	id, ok := f[token]
	if !ok {
		return domain.Identity{}, fmt.Errorf("%w: unknown token", domain.ErrUnauthorized)
	}
	return id, nil
}

type testDeps struct {
	allocation *hmocks.MockAllocationSvc
	inventory  *hmocks.MockInventorySvc
	reports    *hmocks.MockReportSvc
	auth       *hmocks.MockAuthSvc
	router     http.Handler
}

func setupRouter(t *testing.T) *testDeps {
	t.Helper()
	d := &testDeps{
		allocation: hmocks.NewMockAllocationSvc(t),
		inventory:  hmocks.NewMockInventorySvc(t),
		reports:    hmocks.NewMockReportSvc(t),
		auth:       hmocks.NewMockAuthSvc(t),
	}

	h := NewHandler(d.allocation, d.inventory, d.reports, d.auth)
	d.router = router.InitRouter("test", h, fakeTokens{memberToken: memberID, adminToken: adminID})
	return d
}

func (d *testDeps) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, dto.Response) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, req)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w, resp
}

func testEntry(status domain.EntryStatus) *domain.Entry {
	at := time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)
	return &domain.Entry{
		ID:            uuid.NewString(),
		BuildingID:    "b1",
		Class:         domain.ClassAmenitySlot,
		ResourceID:    uuid.NewString(),
		MemberID:      memberID.MemberID,
		UnitID:        memberID.UnitID,
		Status:        status,
		Policy:        domain.PolicyAutoConfirm,
		EffectiveAt:   &at,
		Amount:        decimal.NewFromInt(300),
		PaymentStatus: domain.PaymentUnpaid,
		CreatedAt:     at.Add(-24 * time.Hour),
	}
}

func dataAs[T any](t *testing.T, resp dto.Response) T {
	t.Helper()
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

// --- Auth ---

func TestHandler_MissingToken_Unauthorized(t *testing.T) {
	d := setupRouter(t)

	w, resp := d.do(t, http.MethodGet, "/api/bookings/mine", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "UNAUTHORIZED", resp.Code)

	w, _ = d.do(t, http.MethodGet, "/api/bookings/mine", "bogus", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_AdminRoutes_RequireAdmin(t *testing.T) {
	d := setupRouter(t)

	w, resp := d.do(t, http.MethodGet, "/api/admin/bookings", memberToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", resp.Code)
}

func TestHandler_RequestChallenge_UnknownPhoneLooksSent(t *testing.T) {
	d := setupRouter(t)
	d.auth.EXPECT().RequestChallenge(mock.Anything, "+7900").Return(domain.ErrMemberNotFound)

	w, resp := d.do(t, http.MethodPost, "/api/auth/challenge", "", dto.ChallengeRequest{Phone: "+7900"})
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.True(t, resp.Success)
}

func TestHandler_Verify(t *testing.T) {
	d := setupRouter(t)
	expires := time.Date(2025, 12, 2, 12, 0, 0, 0, time.UTC)
	d.auth.EXPECT().Verify(mock.Anything, "+7900", "123456").
		Return(&domain.Session{Token: "jwt", ExpiresAt: expires, Identity: memberID}, nil)

	w, resp := d.do(t, http.MethodPost, "/api/auth/verify", "", dto.VerifyRequest{Phone: "+7900", Code: "123456"})
	require.Equal(t, http.StatusOK, w.Code)

	session := dataAs[dto.SessionResponse](t, resp)
	assert.Equal(t, "jwt", session.Token)
	assert.Equal(t, "m-1", session.MemberID)
	assert.Equal(t, "2025-12-02T12:00:00Z", session.ExpiresAt)
}

func TestHandler_Verify_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"no challenge", domain.ErrChallengeNotFound, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"wrong code", domain.ErrInvalidCode, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"too many attempts", domain.ErrTooManyAttempts, http.StatusTooManyRequests, "TOO_MANY_ATTEMPTS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupRouter(t)
			d.auth.EXPECT().Verify(mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			w, resp := d.do(t, http.MethodPost, "/api/auth/verify", "", dto.VerifyRequest{Phone: "+7900", Code: "1"})
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, resp.Code)
		})
	}
}

// --- Member ---

func TestHandler_RequestBooking_Success(t *testing.T) {
	d := setupRouter(t)
	entry := testEntry(domain.EntryConfirmed)

	d.allocation.EXPECT().RequestBooking(mock.Anything, mock.MatchedBy(func(req domain.BookingRequest) bool {
		return req.BuildingID == "b1" &&
			req.MemberID == "m-1" &&
			req.UnitID == "101" &&
			req.Selector.Class == domain.ClassAmenitySlot &&
			req.Selector.PoolID == "pool-1" &&
			req.Selector.Date != nil && req.Selector.Date.Day() == 1
	})).Return(entry, nil)

	w, resp := d.do(t, http.MethodPost, "/api/bookings", memberToken, dto.BookingRequest{
		Class: "amenity_slot", PoolID: "pool-1", Date: "2025-12-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp.Success)

	booking := dataAs[dto.BookingResponse](t, resp)
	assert.Equal(t, entry.ID, booking.ID)
	assert.Equal(t, "confirmed", booking.Status)
	assert.Equal(t, "300.00", booking.Amount)
	assert.Equal(t, "unpaid", booking.PaymentStatus)
}

func TestHandler_RequestBooking_BadDate(t *testing.T) {
	d := setupRouter(t)

	w, resp := d.do(t, http.MethodPost, "/api/bookings", memberToken, dto.BookingRequest{
		Class: "amenity_slot", PoolID: "pool-1", Date: "01.12.2025",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION", resp.Code)
}

func TestHandler_RequestBooking_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"unavailable", fmt.Errorf("wrap: %w", domain.ErrAlreadyReserved), http.StatusConflict, "RESOURCE_UNAVAILABLE"},
		{"capacity", domain.ErrCapacityExceeded, http.StatusConflict, "CAPACITY_EXCEEDED"},
		{"duplicate", fmt.Errorf("create booking: %w", domain.ErrDuplicateActiveEntry), http.StatusBadRequest, "DUPLICATE_ACTIVE_ENTRY"},
		{"not found", fmt.Errorf("get event: %w", domain.ErrEventNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"internal", fmt.Errorf("boom"), http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupRouter(t)
			d.allocation.EXPECT().RequestBooking(mock.Anything, mock.Anything).Return(nil, tt.err)

			w, resp := d.do(t, http.MethodPost, "/api/bookings", memberToken, dto.BookingRequest{
				Class: "event", ResourceID: "ev-1",
			})
			assert.Equal(t, tt.status, w.Code)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.code, resp.Code)
		})
	}
}

func TestHandler_RequestBooking_InternalErrorHidden(t *testing.T) {
	d := setupRouter(t)
	d.allocation.EXPECT().RequestBooking(mock.Anything, mock.Anything).Return(nil, fmt.Errorf("pq: connection refused"))

	_, resp := d.do(t, http.MethodPost, "/api/bookings", memberToken, dto.BookingRequest{Class: "event", ResourceID: "ev-1"})
	assert.NotContains(t, resp.Message, "pq")
}

func TestHandler_CancelBooking(t *testing.T) {
	d := setupRouter(t)
	entry := testEntry(domain.EntryCancelled)

	d.allocation.EXPECT().Cancel(mock.Anything, "b1", entry.ID, "m-1").Return(entry, nil)

	w, resp := d.do(t, http.MethodPost, "/api/bookings/"+entry.ID+"/cancel", memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cancelled", dataAs[dto.BookingResponse](t, resp).Status)
}

func TestHandler_CancelBooking_PastAndInvalidID(t *testing.T) {
	d := setupRouter(t)
	id := uuid.NewString()

	d.allocation.EXPECT().Cancel(mock.Anything, "b1", id, "m-1").Return(nil, domain.ErrPastBooking)

	w, resp := d.do(t, http.MethodPost, "/api/bookings/"+id+"/cancel", memberToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "PAST_BOOKING", resp.Code)

	w, resp = d.do(t, http.MethodPost, "/api/bookings/not-a-uuid/cancel", memberToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION", resp.Code)
}

func TestHandler_ListMine_ParsesStatuses(t *testing.T) {
	d := setupRouter(t)

	d.allocation.EXPECT().ListMine(mock.Anything, "b1", "m-1",
		[]domain.EntryStatus{domain.EntryPending, domain.EntryConfirmed},
	).Return([]*domain.Entry{testEntry(domain.EntryPending)}, nil)

	w, resp := d.do(t, http.MethodGet, "/api/bookings/mine?status=pending,%20confirmed", memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, dataAs[[]dto.BookingResponse](t, resp), 1)
}

func TestHandler_StatusFilter_RejectsUnknown(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		token string
	}{
		{"mine, only unknown", "/api/bookings/mine?status=bogus", memberToken},
		{"mine, mixed", "/api/bookings/mine?status=pending,bogus", memberToken},
		{"admin queue", "/api/admin/bookings?status=paid", adminToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupRouter(t)

			w, resp := d.do(t, http.MethodGet, tt.path, tt.token, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "VALIDATION", resp.Code)
		})
	}
}

func TestHandler_RequestChallenge_NoDeliveryChannel(t *testing.T) {
	d := setupRouter(t)
	d.auth.EXPECT().RequestChallenge(mock.Anything, "+7900").
		Return(fmt.Errorf("send code: %w", domain.ErrNoDeliveryChannel))

	w, resp := d.do(t, http.MethodPost, "/api/auth/challenge", "", dto.ChallengeRequest{Phone: "+7900"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION", resp.Code)
}

func TestHandler_FindAvailable_UsesCallerBlock(t *testing.T) {
	d := setupRouter(t)
	start := time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)

	d.allocation.EXPECT().FindAvailable(mock.Anything, "b1", mock.MatchedBy(func(f domain.ResourceFilter) bool {
		return f.Class == domain.ClassParkingSpot && f.BlockID == "A" && f.Date == nil
	})).Return([]*domain.Resource{
		{ID: "r-1", Class: domain.ClassParkingSpot, Label: "P-1", Status: domain.ResourceAvailable, StartsAt: &start},
	}, nil)

	w, resp := d.do(t, http.MethodGet, "/api/resources/available?class=parking_spot", memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	list := dataAs[[]dto.ResourceResponse](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, "P-1", list[0].Label)
	assert.Equal(t, "0.00", list[0].Fee)
}

func TestHandler_OpenEvents(t *testing.T) {
	d := setupRouter(t)

	d.reports.EXPECT().OpenEvents(mock.Anything, "b1").Return([]domain.EventAvailability{
		{Event: &domain.Event{ID: "ev-1", Title: "Yoga", RegistrationLimit: 10, RegisteredCount: 4}, Remaining: 6},
	}, nil)

	w, resp := d.do(t, http.MethodGet, "/api/events/open", memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	events := dataAs[[]dto.EventResponse](t, resp)
	require.Len(t, events, 1)
	assert.Equal(t, 6, events[0].Remaining)
}

func TestHandler_Dashboard(t *testing.T) {
	d := setupRouter(t)

	d.reports.EXPECT().Dashboard(mock.Anything, "b1").Return(&domain.Dashboard{
		BuildingID: "b1",
		Resources: map[domain.ResourceClass]map[domain.ResourceStatus]int{
			domain.ClassAmenitySlot: {domain.ResourceAvailable: 4},
		},
		Entries: map[domain.EntryStatus]int{domain.EntryPending: 2},
	}, nil)

	w, resp := d.do(t, http.MethodGet, "/api/dashboard", memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	dash := dataAs[dto.DashboardResponse](t, resp)
	assert.Equal(t, 4, dash.Resources["amenity_slot"]["available"])
	assert.Equal(t, 2, dash.Bookings["pending"])
}

// --- Admin ---

func TestHandler_ApproveBooking_UsesApproverIdentity(t *testing.T) {
	d := setupRouter(t)
	entry := testEntry(domain.EntryApproved)

	d.allocation.EXPECT().Approve(mock.Anything, "b1", entry.ID, "m-9").Return(entry, nil)

	w, resp := d.do(t, http.MethodPost, "/api/admin/bookings/"+entry.ID+"/approve", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "approved", dataAs[dto.BookingResponse](t, resp).Status)
}

func TestHandler_ApproveBooking_AlreadyReserved(t *testing.T) {
	d := setupRouter(t)
	id := uuid.NewString()

	d.allocation.EXPECT().Approve(mock.Anything, "b1", id, "m-9").Return(nil, domain.ErrAlreadyReserved)

	w, resp := d.do(t, http.MethodPost, "/api/admin/bookings/"+id+"/approve", adminToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "RESOURCE_UNAVAILABLE", resp.Code)
}

func TestHandler_EntryActions(t *testing.T) {
	tests := []struct {
		action string
		status domain.EntryStatus
		expect func(d *testDeps, id string, e *domain.Entry)
	}{
		{"reject", domain.EntryRejected, func(d *testDeps, id string, e *domain.Entry) {
			d.allocation.EXPECT().Reject(mock.Anything, "b1", id, "m-9").Return(e, nil)
		}},
		{"release", domain.EntryReleased, func(d *testDeps, id string, e *domain.Entry) {
			d.allocation.EXPECT().Release(mock.Anything, "b1", id, "m-9").Return(e, nil)
		}},
		{"paid", domain.EntryConfirmed, func(d *testDeps, id string, e *domain.Entry) {
			d.allocation.EXPECT().MarkPaid(mock.Anything, "b1", id, "m-9").Return(e, nil)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			d := setupRouter(t)
			e := testEntry(tt.status)
			tt.expect(d, e.ID, e)

			w, resp := d.do(t, http.MethodPost, "/api/admin/bookings/"+e.ID+"/"+tt.action, adminToken, nil)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, string(tt.status), dataAs[dto.BookingResponse](t, resp).Status)
		})
	}
}

func TestHandler_ListBookings_Queue(t *testing.T) {
	d := setupRouter(t)

	d.allocation.EXPECT().ListQueue(mock.Anything, "b1", domain.ClassParkingSpot, []domain.EntryStatus(nil)).
		Return([]*domain.Entry{testEntry(domain.EntryPending), testEntry(domain.EntryPending)}, nil)

	w, resp := d.do(t, http.MethodGet, "/api/admin/bookings?class=parking_spot", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, dataAs[[]dto.BookingResponse](t, resp), 2)
}

func TestHandler_CreatePool(t *testing.T) {
	d := setupRouter(t)

	d.inventory.EXPECT().CreatePool(mock.Anything, mock.MatchedBy(func(in domain.CreatePoolInput) bool {
		return in.BuildingID == "b1" && in.Class == domain.ClassParkingSpot && in.Fee.Equal(decimal.RequireFromString("1500.5"))
	})).Return(&domain.Pool{ID: "p-1", Class: domain.ClassParkingSpot, Name: "Garage", Fee: decimal.RequireFromString("1500.5")}, nil)

	w, resp := d.do(t, http.MethodPost, "/api/admin/pools", adminToken, map[string]any{
		"class": "parking_spot", "name": "Garage", "requires_approval": true, "fee": "1500.5",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "1500.50", dataAs[dto.PoolResponse](t, resp).Fee)
}

func TestHandler_CreateResource_Validation(t *testing.T) {
	d := setupRouter(t)

	w, _ := d.do(t, http.MethodPost, "/api/admin/resources", adminToken, map[string]any{"pool_id": "nope"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	badStart := "tomorrow"
	w, _ = d.do(t, http.MethodPost, "/api/admin/resources", adminToken, dto.CreateResourceRequest{
		PoolID: uuid.NewString(), StartsAt: &badStart,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateResource_Slot(t *testing.T) {
	d := setupRouter(t)
	poolID := uuid.NewString()
	start, end := "2025-12-01T10:00:00Z", "2025-12-01T11:00:00Z"

	d.inventory.EXPECT().CreateResource(mock.Anything, mock.MatchedBy(func(in domain.CreateResourceInput) bool {
		return in.PoolID == poolID && in.StartsAt != nil && in.EndsAt != nil && in.EndsAt.Sub(*in.StartsAt) == time.Hour
	})).Return(&domain.Resource{ID: "r-1", PoolID: poolID, Class: domain.ClassAmenitySlot, Status: domain.ResourceAvailable}, nil)

	w, _ := d.do(t, http.MethodPost, "/api/admin/resources", adminToken, dto.CreateResourceRequest{
		PoolID: poolID, StartsAt: &start, EndsAt: &end,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_SetMaintenance(t *testing.T) {
	d := setupRouter(t)
	id := uuid.NewString()
	on := true

	d.inventory.EXPECT().SetMaintenance(mock.Anything, "b1", id, true).Return(nil, domain.ErrResourceInUse).Once()

	w, resp := d.do(t, http.MethodPost, "/api/admin/resources/"+id+"/maintenance", adminToken, dto.MaintenanceRequest{On: &on})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "RESOURCE_IN_USE", resp.Code)

	w, _ = d.do(t, http.MethodPost, "/api/admin/resources/"+id+"/maintenance", adminToken, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteResource(t *testing.T) {
	d := setupRouter(t)
	id := uuid.NewString()

	d.inventory.EXPECT().DeleteResource(mock.Anything, "b1", id).Return(nil)

	w, resp := d.do(t, http.MethodDelete, "/api/admin/resources/"+id, adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
}

func TestHandler_ResourceHolder(t *testing.T) {
	d := setupRouter(t)
	id := uuid.NewString()

	d.allocation.EXPECT().CurrentHolder(mock.Anything, "b1", id).Return(nil, fmt.Errorf("find holder: %w", domain.ErrEntryNotFound))

	w, resp := d.do(t, http.MethodGet, "/api/admin/resources/"+id+"/booking", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", resp.Code)
}

func TestHandler_CreateEvent(t *testing.T) {
	d := setupRouter(t)
	startsAt := time.Date(2025, 12, 10, 18, 0, 0, 0, time.UTC)

	d.inventory.EXPECT().CreateEvent(mock.Anything, mock.MatchedBy(func(in domain.CreateEventInput) bool {
		return in.Title == "Yoga" && in.RegistrationLimit == 20 && in.StartsAt.Equal(startsAt)
	})).Return(&domain.Event{ID: "ev-1", Title: "Yoga", StartsAt: startsAt, RegistrationLimit: 20}, nil)

	w, resp := d.do(t, http.MethodPost, "/api/admin/events", adminToken, dto.CreateEventRequest{
		Title: "Yoga", StartsAt: startsAt.Format(time.RFC3339), RegistrationLimit: 20,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 20, dataAs[dto.EventResponse](t, resp).Remaining)

	w, _ = d.do(t, http.MethodPost, "/api/admin/events", adminToken, dto.CreateEventRequest{
		Title: "Yoga", StartsAt: "next friday", RegistrationLimit: 20,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateMember_PhoneTaken(t *testing.T) {
	d := setupRouter(t)

	d.inventory.EXPECT().CreateMember(mock.Anything, mock.Anything).Return(nil, fmt.Errorf("create member: %w", domain.ErrPhoneTaken))

	w, resp := d.do(t, http.MethodPost, "/api/admin/members", adminToken, dto.CreateMemberRequest{
		UnitID: "102", Name: "Boris", Phone: "+7900",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION", resp.Code)
}
