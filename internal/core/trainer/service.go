package trainer

import (
	"context"
	"log/slog"

	"github.com/mehmetakif-git/forfit-api/internal/platform/validate"
	"github.com/mehmetakif-git/forfit-api/pkg/uuid"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListTrainers(ctx context.Context, includeInactive bool) ([]*Trainer, error) {
	return service.repo.ListTrainers(ctx, includeInactive)
}

func (service *Service) GetTrainer(ctx context.Context, id string) (*Trainer, error) {
	return service.repo.GetTrainer(ctx, id)
}

func (service *Service) CreateTrainer(ctx context.Context, trainer *Trainer) error {
	validator := &validate.Validator{}

	validator.Required(FieldEmail, trainer.Email).Email(FieldEmail, trainer.Email).
		Required(FieldDisplayName, trainer.DisplayName).MaxLen(FieldDisplayName, trainer.DisplayName, 200).
		MaxLen(FieldSpecialty, trainer.Specialty, 200)

	if err := validator.Err(); err != nil {
		return err
	}

	trainer.ID = uuid.New()
	trainer.IsActive = true

	if err := service.repo.CreateTrainer(ctx, trainer); err != nil {
		return err
	}

	service.logger.Info("trainer_created", slog.String("trainer_id", trainer.ID))
	return nil
}

func (service *Service) UpdateTrainer(ctx context.Context, id string, trainer *Trainer) error {
	trainer.ID = id
	validator := &validate.Validator{}

	validator.Required(FieldDisplayName, trainer.DisplayName).MaxLen(FieldDisplayName, trainer.DisplayName, 200).
		MaxLen(FieldSpecialty, trainer.Specialty, 200)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.UpdateTrainer(ctx, trainer); err != nil {
		return err
	}

	service.logger.Info("trainer_updated", slog.String("trainer_id", trainer.ID))
	return nil
}

func (service *Service) DeactivateTrainer(ctx context.Context, id string) error {
	if err := service.repo.DeactivateTrainer(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("trainer_deactivated", slog.String("trainer_id", id))
	return nil
}
