package payment

import "time"

// Payment represents one logged payment against a member account.
//
// Records are append-only: corrections are made by logging a compensating
// entry, never by editing history.
type Payment struct {
	ID         string    `json:"id"`
	MemberID   string    `json:"member_id"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency"`
	Method     string    `json:"method"`
	Note       *string   `json:"note,omitempty"`
	RecordedBy string    `json:"recorded_by"`
	PaidAt     time.Time `json:"paid_at"`
	CreatedAt  time.Time `json:"-"`
}

// Accepted payment methods.
var Methods = []string{"cash", "card", "transfer"}

const (
	FieldMemberID = "member_id"
	FieldAmount   = "amount"
	FieldCurrency = "currency"
	FieldMethod   = "method"
	FieldNote     = "note"
)
