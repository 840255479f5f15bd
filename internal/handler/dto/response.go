package dto

import (
	"time"

	"github.com/stpnv0/SocietyBooker/internal/domain"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func OK(data any) Response {
	return Response{Success: true, Data: data}
}

func Fail(code, message string) Response {
	return Response{Success: false, Code: code, Message: message}
}

type BookingResponse struct {
	ID            string  `json:"id"`
	Class         string  `json:"class"`
	ResourceID    string  `json:"resource_id"`
	MemberID      string  `json:"member_id"`
	UnitID        string  `json:"unit_id"`
	Status        string  `json:"status"`
	Policy        string  `json:"policy"`
	EffectiveAt   *string `json:"effective_at,omitempty"`
	Amount        string  `json:"amount"`
	PaymentStatus string  `json:"payment_status"`
	Note          string  `json:"note,omitempty"`
	CreatedAt     string  `json:"created_at"`
	DecidedBy     *string `json:"decided_by,omitempty"`
	DecidedAt     *string `json:"decided_at,omitempty"`
	ClosedBy      *string `json:"closed_by,omitempty"`
	ClosedAt      *string `json:"closed_at,omitempty"`
}

type ResourceResponse struct {
	ID               string  `json:"id"`
	PoolID           string  `json:"pool_id"`
	Class            string  `json:"class"`
	Label            string  `json:"label"`
	BlockID          *string `json:"block_id,omitempty"`
	StartsAt         *string `json:"starts_at,omitempty"`
	EndsAt           *string `json:"ends_at,omitempty"`
	Status           string  `json:"status"`
	RequiresApproval bool    `json:"requires_approval"`
	Fee              string  `json:"fee"`
}

type PoolResponse struct {
	ID               string `json:"id"`
	Class            string `json:"class"`
	Name             string `json:"name"`
	RequiresApproval bool   `json:"requires_approval"`
	Fee              string `json:"fee"`
	CreatedAt        string `json:"created_at"`
}

type EventResponse struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	StartsAt          string `json:"starts_at"`
	RegistrationLimit int    `json:"registration_limit"`
	Remaining         int    `json:"remaining"`
	RequiresApproval  bool   `json:"requires_approval"`
	Fee               string `json:"fee"`
}

type MemberResponse struct {
	ID             string `json:"id"`
	BlockID        string `json:"block_id,omitempty"`
	UnitID         string `json:"unit_id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Role           string `json:"role"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type SessionResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
	MemberID  string `json:"member_id"`
	Role      string `json:"role"`
}

type DashboardResponse struct {
	Resources  map[string]map[string]int `json:"resources"`
	Bookings   map[string]int            `json:"bookings"`
	OpenEvents []EventResponse           `json:"open_events"`
}

func ToBookingResponse(e *domain.Entry) BookingResponse {
	return BookingResponse{
		ID:            e.ID,
		Class:         string(e.Class),
		ResourceID:    e.ResourceID,
		MemberID:      e.MemberID,
		UnitID:        e.UnitID,
		Status:        string(e.Status),
		Policy:        string(e.Policy),
		EffectiveAt:   formatPtr(e.EffectiveAt),
		Amount:        e.Amount.StringFixed(2),
		PaymentStatus: string(e.PaymentStatus),
		Note:          e.Note,
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
		DecidedBy:     e.DecidedBy,
		DecidedAt:     formatPtr(e.DecidedAt),
		ClosedBy:      e.ClosedBy,
		ClosedAt:      formatPtr(e.ClosedAt),
	}
}

func ToBookingResponses(entries []*domain.Entry) []BookingResponse {
	resp := make([]BookingResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, ToBookingResponse(e))
	}
	return resp
}

func ToResourceResponse(r *domain.Resource) ResourceResponse {
	return ResourceResponse{
		ID:               r.ID,
		PoolID:           r.PoolID,
		Class:            string(r.Class),
		Label:            r.Label,
		BlockID:          r.BlockID,
		StartsAt:         formatPtr(r.StartsAt),
		EndsAt:           formatPtr(r.EndsAt),
		Status:           string(r.Status),
		RequiresApproval: r.RequiresApproval,
		Fee:              r.Fee.StringFixed(2),
	}
}

func ToPoolResponse(p *domain.Pool) PoolResponse {
	return PoolResponse{
		ID:               p.ID,
		Class:            string(p.Class),
		Name:             p.Name,
		RequiresApproval: p.RequiresApproval,
		Fee:              p.Fee.StringFixed(2),
		CreatedAt:        p.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:                e.ID,
		Title:             e.Title,
		Description:       e.Description,
		StartsAt:          e.StartsAt.Format(time.RFC3339),
		RegistrationLimit: e.RegistrationLimit,
		Remaining:         e.Remaining(),
		RequiresApproval:  e.RequiresApproval,
		Fee:               e.Fee.StringFixed(2),
	}
}

func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		ID:             m.ID,
		BlockID:        m.BlockID,
		UnitID:         m.UnitID,
		Name:           m.Name,
		Phone:          m.Phone,
		Role:           string(m.Role),
		TelegramChatID: m.TelegramChatID,
		CreatedAt:      m.CreatedAt.Format(time.RFC3339),
	}
}

func ToSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt.Format(time.RFC3339),
		MemberID:  s.Identity.MemberID,
		Role:      string(s.Identity.Role),
	}
}

func ToDashboardResponse(d *domain.Dashboard) DashboardResponse {
	resources := make(map[string]map[string]int, len(d.Resources))
	for class, byStatus := range d.Resources {
		counts := make(map[string]int, len(byStatus))
		for status, n := range byStatus {
			counts[string(status)] = n
		}
		resources[string(class)] = counts
	}

	bookings := make(map[string]int, len(d.Entries))
	for status, n := range d.Entries {
		bookings[string(status)] = n
	}

	events := make([]EventResponse, 0, len(d.OpenEvents))
	for _, ev := range d.OpenEvents {
		events = append(events, ToEventResponse(ev.Event))
	}

	return DashboardResponse{Resources: resources, Bookings: bookings, OpenEvents: events}
}

func formatPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
