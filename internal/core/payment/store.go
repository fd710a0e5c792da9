package payment

import "context"

// Filter narrows payment listings.
type Filter struct {
	MemberID string
}

// Repository defines the data access contract.
type Repository interface {
	ListPayments(ctx context.Context, filter Filter, limit, offset int) ([]*Payment, int, error)
	CreatePayment(ctx context.Context, payment *Payment) error
}
