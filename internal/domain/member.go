package domain

import "time"

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleMember || r == RoleAdmin
}

type Member struct {
	ID             string     `json:"id"`
	BuildingID     string     `json:"building_id"`
	BlockID        string     `json:"block_id"`
	UnitID         string     `json:"unit_id"`
	Name           string     `json:"name"`
	Phone          string     `json:"phone"`
	Role           Role       `json:"role"`
	TelegramChatID *int64     `json:"telegram_chat_id"`
	CreatedAt      time.Time  `json:"created_at"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty"`
}

type CreateMemberInput struct {
	BuildingID     string
	BlockID        string
	UnitID         string
	Name           string
	Phone          string
	Role           Role
	TelegramChatID *int64
}

// Identity is the caller as established by a verified session token.
type Identity struct {
	MemberID   string `json:"member_id"`
	BuildingID string `json:"building_id"`
	BlockID    string `json:"block_id"`
	UnitID     string `json:"unit_id"`
	Role       Role   `json:"role"`
}

func (m *Member) Identity() Identity {
	return Identity{
		MemberID:   m.ID,
		BuildingID: m.BuildingID,
		BlockID:    m.BlockID,
		UnitID:     m.UnitID,
		Role:       m.Role,
	}
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
