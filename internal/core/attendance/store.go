package attendance

import "context"

// Filter narrows visit listings.
type Filter struct {
	MemberID string
	OpenOnly bool
}

// Repository defines the data access contract.
type Repository interface {
	ListVisits(ctx context.Context, filter Filter, limit, offset int) ([]*Visit, int, error)
	FindOpenVisit(ctx context.Context, memberID string) (*Visit, error)
	CreateVisit(ctx context.Context, visit *Visit) error
	CloseVisit(ctx context.Context, visitID string) (*Visit, error)
}
