package trainer

import "context"

// Repository defines the data access contract.
type Repository interface {
	ListTrainers(ctx context.Context, includeInactive bool) ([]*Trainer, error)
	GetTrainer(ctx context.Context, id string) (*Trainer, error)
	CreateTrainer(ctx context.Context, trainer *Trainer) error
	UpdateTrainer(ctx context.Context, trainer *Trainer) error
	DeactivateTrainer(ctx context.Context, id string) error
}
