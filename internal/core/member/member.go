package member

import (
	"time"

	"github.com/mehmetakif-git/forfit-api/internal/platform/sec"
)

// Member represents a registered studio member.
type Member struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	DisplayName  string     `json:"display_name"`
	Phone        *string    `json:"phone,omitempty"`
	Role         sec.Role   `json:"role"`
	PlanID       *string    `json:"plan_id,omitempty"`
	IsActive     bool       `json:"is_active"`
	LastSeenAt   *time.Time `json:"last_seen_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Filter narrows member listings.
type Filter struct {
	Query    string
	PlanID   string
	Inactive bool
}

const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldDisplayName = "display_name"
	FieldPhone       = "phone"
	FieldRole        = "role"
	FieldPlanID      = "plan_id"
	FieldMemberID    = "member_id"
)
