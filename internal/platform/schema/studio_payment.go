package schema

// StudioPaymentTable represents the 'studio.payment' table
type StudioPaymentTable struct {
	Table      string
	ID         string
	MemberID   string
	Amount     string
	Currency   string
	Method     string
	Note       string
	RecordedBy string
	PaidAt     string
	CreatedAt  string
}

// StudioPayment is the schema definition for studio.payment
var StudioPayment = StudioPaymentTable{
	Table:      "studio.payment",
	ID:         "id",
	MemberID:   "memberid",
	Amount:     "amount",
	Currency:   "currency",
	Method:     "method",
	Note:       "note",
	RecordedBy: "recordedby",
	PaidAt:     "paidat",
	CreatedAt:  "createdat",
}
