package dto

import "github.com/shopspring/decimal"

type ChallengeRequest struct {
	Phone string `json:"phone" binding:"required"`
}

type VerifyRequest struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

// BookingRequest names either a concrete resource (or event) or a pool plus
// a day for amenity slots. Date is YYYY-MM-DD in UTC.
type BookingRequest struct {
	Class      string `json:"class" binding:"required"`
	ResourceID string `json:"resource_id"`
	PoolID     string `json:"pool_id"`
	Date       string `json:"date"`
	Note       string `json:"note"`
}

type CreatePoolRequest struct {
	Class            string          `json:"class" binding:"required"`
	Name             string          `json:"name" binding:"required"`
	RequiresApproval bool            `json:"requires_approval"`
	Fee              decimal.Decimal `json:"fee"`
}

type CreateResourceRequest struct {
	PoolID   string  `json:"pool_id" binding:"required,uuid"`
	Label    string  `json:"label"`
	BlockID  *string `json:"block_id"`
	StartsAt *string `json:"starts_at"`
	EndsAt   *string `json:"ends_at"`
}

type MaintenanceRequest struct {
	On *bool `json:"on" binding:"required"`
}

type CreateEventRequest struct {
	Title             string          `json:"title" binding:"required"`
	Description       string          `json:"description"`
	StartsAt          string          `json:"starts_at" binding:"required"`
	RegistrationLimit int             `json:"registration_limit" binding:"required,gt=0"`
	RequiresApproval  bool            `json:"requires_approval"`
	Fee               decimal.Decimal `json:"fee"`
}

type CreateMemberRequest struct {
	BlockID        string `json:"block_id"`
	UnitID         string `json:"unit_id" binding:"required"`
	Name           string `json:"name" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	Role           string `json:"role"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
