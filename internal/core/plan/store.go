package plan

import "context"

// Repository defines the data access contract.
type Repository interface {
	ListPlans(ctx context.Context) ([]*Plan, error)
	GetPlan(ctx context.Context, id string) (*Plan, error)
	CreatePlan(ctx context.Context, plan *Plan) error
	SetPlanActive(ctx context.Context, id string, active bool) error
}
