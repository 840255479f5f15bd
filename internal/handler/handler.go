package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/SocietyBooker/internal/domain"
	"github.com/stpnv0/SocietyBooker/internal/handler/dto"
	"github.com/stpnv0/SocietyBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

const dateLayout = "2006-01-02"

type AllocationSvc interface {
	RequestBooking(ctx context.Context, req domain.BookingRequest) (*domain.Entry, error)
	Approve(ctx context.Context, buildingID, entryID, approverID string) (*domain.Entry, error)
	Reject(ctx context.Context, buildingID, entryID, approverID string) (*domain.Entry, error)
	Cancel(ctx context.Context, buildingID, entryID, requesterID string) (*domain.Entry, error)
	Release(ctx context.Context, buildingID, entryID, actorID string) (*domain.Entry, error)
	MarkPaid(ctx context.Context, buildingID, entryID, actorID string) (*domain.Entry, error)
	FindAvailable(ctx context.Context, buildingID string, f domain.ResourceFilter) ([]*domain.Resource, error)
	CurrentHolder(ctx context.Context, buildingID, resourceID string) (*domain.Entry, error)
	ListMine(ctx context.Context, buildingID, memberID string, statuses []domain.EntryStatus) ([]*domain.Entry, error)
	ListQueue(ctx context.Context, buildingID string, class domain.ResourceClass, statuses []domain.EntryStatus) ([]*domain.Entry, error)
}

type InventorySvc interface {
	CreatePool(ctx context.Context, input domain.CreatePoolInput) (*domain.Pool, error)
	ListPools(ctx context.Context, buildingID string, class domain.ResourceClass) ([]*domain.Pool, error)
	CreateResource(ctx context.Context, input domain.CreateResourceInput) (*domain.Resource, error)
	SetMaintenance(ctx context.Context, buildingID, id string, on bool) (*domain.Resource, error)
	DeleteResource(ctx context.Context, buildingID, id string) error
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	CreateMember(ctx context.Context, input domain.CreateMemberInput) (*domain.Member, error)
}

type ReportSvc interface {
	Dashboard(ctx context.Context, buildingID string) (*domain.Dashboard, error)
	OpenEvents(ctx context.Context, buildingID string) ([]domain.EventAvailability, error)
}

type AuthSvc interface {
	RequestChallenge(ctx context.Context, phone string) error
	Verify(ctx context.Context, phone, code string) (*domain.Session, error)
}

type Handler struct {
	allocation AllocationSvc
	inventory  InventorySvc
	reports    ReportSvc
	auth       AuthSvc
}

func NewHandler(allocation AllocationSvc, inventory InventorySvc, reports ReportSvc, auth AuthSvc) *Handler {
	return &Handler{
		allocation: allocation,
		inventory:  inventory,
		reports:    reports,
		auth:       auth,
	}
}

// Auth

func (h *Handler) RequestChallenge(c *ginext.Context) {
	var req dto.ChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	if err := h.auth.RequestChallenge(c.Request.Context(), req.Phone); err != nil {
		// an unknown phone looks the same as a known one
		if errors.Is(err, domain.ErrMemberNotFound) {
			c.JSON(http.StatusAccepted, dto.Response{Success: true, Message: "code sent"})
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.Response{Success: true, Message: "code sent"})
}

func (h *Handler) Verify(c *ginext.Context) {
	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	session, err := h.auth.Verify(c.Request.Context(), req.Phone, req.Code)
	if err != nil {
		if errors.Is(err, domain.ErrChallengeNotFound) {
			err = fmt.Errorf("%w: no active code for this phone", domain.ErrUnauthorized)
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToSessionResponse(session)))
}

// Member

func (h *Handler) FindAvailable(c *ginext.Context) {
	id := h.identity(c)

	f := domain.ResourceFilter{
		Class:   domain.ResourceClass(c.Query("class")),
		PoolID:  c.Query("pool_id"),
		BlockID: id.BlockID,
	}
	if raw := c.Query("date"); raw != "" {
		d, err := time.Parse(dateLayout, raw)
		if err != nil {
			h.badRequest(c, "invalid date format, expected YYYY-MM-DD")
			return
		}
		f.Date = &d
	}

	resources, err := h.allocation.FindAvailable(c.Request.Context(), id.BuildingID, f)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ResourceResponse, 0, len(resources))
	for _, r := range resources {
		resp = append(resp, dto.ToResourceResponse(r))
	}

	c.JSON(http.StatusOK, dto.OK(resp))
}

func (h *Handler) OpenEvents(c *ginext.Context) {
	id := h.identity(c)

	events, err := h.reports.OpenEvents(c.Request.Context(), id.BuildingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e.Event))
	}

	c.JSON(http.StatusOK, dto.OK(resp))
}

func (h *Handler) RequestBooking(c *ginext.Context) {
	id := h.identity(c)

	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	sel := domain.Selector{
		Class:      domain.ResourceClass(req.Class),
		ResourceID: req.ResourceID,
		PoolID:     req.PoolID,
	}
	if req.Date != "" {
		d, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			h.badRequest(c, "invalid date format, expected YYYY-MM-DD")
			return
		}
		sel.Date = &d
	}

	entry, err := h.allocation.RequestBooking(c.Request.Context(), domain.BookingRequest{
		BuildingID: id.BuildingID,
		MemberID:   id.MemberID,
		UnitID:     id.UnitID,
		Selector:   sel,
		Note:       req.Note,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.ToBookingResponse(entry)))
}

func (h *Handler) ListMine(c *ginext.Context) {
	id := h.identity(c)

	statuses, err := parseStatuses(c.Query("status"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	entries, err := h.allocation.ListMine(c.Request.Context(), id.BuildingID, id.MemberID, statuses)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToBookingResponses(entries)))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	h.entryAction(c, h.allocation.Cancel)
}

func (h *Handler) Dashboard(c *ginext.Context) {
	id := h.identity(c)

	d, err := h.reports.Dashboard(c.Request.Context(), id.BuildingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToDashboardResponse(d)))
}

// Admin

func (h *Handler) CreatePool(c *ginext.Context) {
	id := h.identity(c)

	var req dto.CreatePoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	pool, err := h.inventory.CreatePool(c.Request.Context(), domain.CreatePoolInput{
		BuildingID:       id.BuildingID,
		Class:            domain.ResourceClass(req.Class),
		Name:             req.Name,
		RequiresApproval: req.RequiresApproval,
		Fee:              req.Fee,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.ToPoolResponse(pool)))
}

func (h *Handler) ListPools(c *ginext.Context) {
	id := h.identity(c)

	pools, err := h.inventory.ListPools(c.Request.Context(), id.BuildingID, domain.ResourceClass(c.Query("class")))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PoolResponse, 0, len(pools))
	for _, p := range pools {
		resp = append(resp, dto.ToPoolResponse(p))
	}

	c.JSON(http.StatusOK, dto.OK(resp))
}

func (h *Handler) CreateResource(c *ginext.Context) {
	id := h.identity(c)

	var req dto.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	startsAt, err := parseTimePtr(req.StartsAt)
	if err != nil {
		h.badRequest(c, "invalid starts_at format, expected RFC3339")
		return
	}
	endsAt, err := parseTimePtr(req.EndsAt)
	if err != nil {
		h.badRequest(c, "invalid ends_at format, expected RFC3339")
		return
	}

	res, err := h.inventory.CreateResource(c.Request.Context(), domain.CreateResourceInput{
		BuildingID: id.BuildingID,
		PoolID:     req.PoolID,
		Label:      req.Label,
		BlockID:    req.BlockID,
		StartsAt:   startsAt,
		EndsAt:     endsAt,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.ToResourceResponse(res)))
}

func (h *Handler) SetMaintenance(c *ginext.Context) {
	id := h.identity(c)

	resourceID, ok := h.pathID(c, "invalid resource id")
	if !ok {
		return
	}

	var req dto.MaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	res, err := h.inventory.SetMaintenance(c.Request.Context(), id.BuildingID, resourceID, *req.On)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToResourceResponse(res)))
}

func (h *Handler) DeleteResource(c *ginext.Context) {
	id := h.identity(c)

	resourceID, ok := h.pathID(c, "invalid resource id")
	if !ok {
		return
	}

	if err := h.inventory.DeleteResource(c.Request.Context(), id.BuildingID, resourceID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Response{Success: true, Message: "resource deleted"})
}

func (h *Handler) ResourceHolder(c *ginext.Context) {
	id := h.identity(c)

	resourceID, ok := h.pathID(c, "invalid resource id")
	if !ok {
		return
	}

	entry, err := h.allocation.CurrentHolder(c.Request.Context(), id.BuildingID, resourceID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToBookingResponse(entry)))
}

func (h *Handler) CreateEvent(c *ginext.Context) {
	id := h.identity(c)

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		h.badRequest(c, "invalid starts_at format, expected RFC3339")
		return
	}

	event, err := h.inventory.CreateEvent(c.Request.Context(), domain.CreateEventInput{
		BuildingID:        id.BuildingID,
		Title:             req.Title,
		Description:       req.Description,
		StartsAt:          startsAt,
		RegistrationLimit: req.RegistrationLimit,
		RequiresApproval:  req.RequiresApproval,
		Fee:               req.Fee,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.ToEventResponse(event)))
}

func (h *Handler) CreateMember(c *ginext.Context) {
	id := h.identity(c)

	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	member, err := h.inventory.CreateMember(c.Request.Context(), domain.CreateMemberInput{
		BuildingID:     id.BuildingID,
		BlockID:        req.BlockID,
		UnitID:         req.UnitID,
		Name:           req.Name,
		Phone:          req.Phone,
		Role:           domain.Role(req.Role),
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.ToMemberResponse(member)))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	id := h.identity(c)

	statuses, err := parseStatuses(c.Query("status"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	entries, err := h.allocation.ListQueue(
		c.Request.Context(),
		id.BuildingID,
		domain.ResourceClass(c.Query("class")),
		statuses,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToBookingResponses(entries)))
}

func (h *Handler) ApproveBooking(c *ginext.Context) {
	h.entryAction(c, h.allocation.Approve)
}

func (h *Handler) RejectBooking(c *ginext.Context) {
	h.entryAction(c, h.allocation.Reject)
}

func (h *Handler) ReleaseBooking(c *ginext.Context) {
	h.entryAction(c, h.allocation.Release)
}

func (h *Handler) MarkPaid(c *ginext.Context) {
	h.entryAction(c, h.allocation.MarkPaid)
}

type entryFunc func(ctx context.Context, buildingID, entryID, actorID string) (*domain.Entry, error)

func (h *Handler) entryAction(c *ginext.Context, fn entryFunc) {
	id := h.identity(c)

	entryID, ok := h.pathID(c, "invalid booking id")
	if !ok {
		return
	}

	entry, err := fn(c.Request.Context(), id.BuildingID, entryID, id.MemberID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToBookingResponse(entry)))
}

func (h *Handler) identity(c *ginext.Context) domain.Identity {
	id, _ := middleware.IdentityFrom(c)
	return id
}

func (h *Handler) pathID(c *ginext.Context, msg string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		h.badRequest(c, msg)
		return "", false
	}
	return id, true
}

func (h *Handler) badRequest(c *ginext.Context, msg string) {
	c.Set(middleware.ErrorKey, msg)
	c.JSON(http.StatusBadRequest, dto.Fail(domain.Code(domain.ErrValidation), msg))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set(middleware.ErrorKey, err.Error())

	code := domain.Code(err)
	switch {
	case errors.Is(err, domain.ErrPoolNotFound),
		errors.Is(err, domain.ErrResourceNotFound),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrEntryNotFound),
		errors.Is(err, domain.ErrMemberNotFound):
		c.JSON(http.StatusNotFound, dto.Fail(code, err.Error()))

	case errors.Is(err, domain.ErrResourceUnavailable),
		errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrPastBooking),
		errors.Is(err, domain.ErrResourceInUse),
		errors.Is(err, domain.ErrNotReserved):
		c.JSON(http.StatusConflict, dto.Fail(code, err.Error()))

	case errors.Is(err, domain.ErrDuplicateActiveEntry),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrPhoneTaken):
		c.JSON(http.StatusBadRequest, dto.Fail(code, err.Error()))

	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidCode):
		c.JSON(http.StatusUnauthorized, dto.Fail(code, err.Error()))

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.Fail(code, err.Error()))

	case errors.Is(err, domain.ErrTooManyAttempts):
		c.JSON(http.StatusTooManyRequests, dto.Fail(code, err.Error()))

	default:
		c.JSON(http.StatusInternalServerError, dto.Fail(code, "internal server error"))
	}
}

// parseStatuses reads a comma-separated status filter. An empty filter
// means every status; an unknown value is refused.
func parseStatuses(raw string) ([]domain.EntryStatus, error) {
	if raw == "" {
		return nil, nil
	}
	var res []domain.EntryStatus
	for _, s := range strings.Split(raw, ",") {
		st := domain.EntryStatus(strings.TrimSpace(s))
		if !st.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, st)
		}
		res = append(res, st)
	}
	return res, nil
}

func parseTimePtr(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
