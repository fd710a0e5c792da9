package attendance

import "time"

// Visit represents one gym visit: a check-in and, once the member leaves,
// a check-out. A visit with a nil CheckedOutAt is open.
type Visit struct {
	ID           string     `json:"id"`
	MemberID     string     `json:"member_id"`
	CheckedInAt  time.Time  `json:"checked_in_at"`
	CheckedOutAt *time.Time `json:"checked_out_at,omitempty"`
	CreatedAt    time.Time  `json:"-"`
}

// Open reports whether the visit has not been checked out yet.
func (v *Visit) Open() bool {
	return v.CheckedOutAt == nil
}

const (
	FieldMemberID = "member_id"
)
