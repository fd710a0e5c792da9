package trainer

import "time"

// Trainer represents a coach on the studio roster.
type Trainer struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Specialty   string    `json:"specialty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

const (
	FieldEmail       = "email"
	FieldDisplayName = "display_name"
	FieldSpecialty   = "specialty"
)
