package member

import "context"

// Repository defines the data access contract.
type Repository interface {
	ListMembers(ctx context.Context, filter Filter, limit, offset int) ([]*Member, int, error)
	GetMember(ctx context.Context, id string) (*Member, error)
	CreateMember(ctx context.Context, member *Member) error
	UpdateMember(ctx context.Context, member *Member) error
	DeleteMember(ctx context.Context, id string) error
}
