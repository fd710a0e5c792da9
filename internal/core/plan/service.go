package plan

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

func (service *Service) ListPlans(ctx context.Context) ([]*Plan, error) {
	return service.repo.ListPlans(ctx)
}

func (service *Service) GetPlan(ctx context.Context, id string) (*Plan, error) {
	return service.repo.GetPlan(ctx, id)
}

func (service *Service) CreatePlan(ctx context.Context, plan *Plan) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, plan.Name).MaxLen(FieldName, plan.Name, 200).
		Positive(FieldPriceMonthly, plan.PriceMonthly).
		Range(FieldDurationDays, plan.DurationDays, 1, 3650)

	if err := validator.Err(); err != nil {
		return err
	}

	plan.ID = uuid.New()
	plan.IsActive = true

	if err := service.repo.CreatePlan(ctx, plan); err != nil {
		return err
	}

	service.logger.Info("plan_created", slog.String("plan_id", plan.ID), slog.String("name", plan.Name))
	return nil
}

func (service *Service) SetPlanActive(ctx context.Context, id string, active bool) error {
	return service.repo.SetPlanActive(ctx, id, active)
}
