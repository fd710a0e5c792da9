package member

import (
	"context"
	"log/slog"

	"github.com/mehmetakif-git/forfit-api/internal/platform/sec"
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

func (service *Service) ListMembers(ctx context.Context, filter Filter, limit, offset int) ([]*Member, int, error) {
	return service.repo.ListMembers(ctx, filter, limit, offset)
}

func (service *Service) GetMember(ctx context.Context, id string) (*Member, error) {
	return service.repo.GetMember(ctx, id)
}

// CreateInput carries the registration form for a new member.
type CreateInput struct {
	Email       string
	Password    string
	DisplayName string
	Phone       *string
	Role        string
	PlanID      *string
}

func (service *Service) CreateMember(ctx context.Context, input CreateInput) (*Member, error) {
	validator := &validate.Validator{}

	validator.Required(FieldEmail, input.Email).Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password).MinLen(FieldPassword, input.Password, 8).
		Required(FieldDisplayName, input.DisplayName).MaxLen(FieldDisplayName, input.DisplayName, 200)
	if input.Role != "" {
		validator.OneOf(FieldRole, input.Role, sec.RoleNames()...)
	}
	if input.PlanID != nil {
		validator.UUID(FieldPlanID, *input.PlanID)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	hash, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	role := sec.RoleMember
	if input.Role != "" {
		role = sec.ParseRole(input.Role)
	}

	member := &Member{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: hash,
		DisplayName:  input.DisplayName,
		Phone:        input.Phone,
		Role:         role,
		PlanID:       input.PlanID,
		IsActive:     true,
	}

	if err := service.repo.CreateMember(ctx, member); err != nil {
		return nil, err
	}

	service.logger.Info("member_created",
		slog.String("member_id", member.ID),
		slog.String("email", member.Email),
	)
	return member, nil
}

// UpdateInput defines the mutable subset of member fields.
type UpdateInput struct {
	DisplayName *string
	Phone       *string
	Role        *string
	PlanID      *string
	IsActive    *bool
}

func (service *Service) UpdateMember(ctx context.Context, id string, input UpdateInput) (*Member, error) {
	member, err := service.repo.GetMember(ctx, id)
	if err != nil {
		return nil, err
	}

	validator := &validate.Validator{}
	if input.DisplayName != nil {
		validator.Required(FieldDisplayName, *input.DisplayName).MaxLen(FieldDisplayName, *input.DisplayName, 200)
		member.DisplayName = *input.DisplayName
	}
	if input.Phone != nil {
		validator.MaxLen(FieldPhone, *input.Phone, 30)
		member.Phone = input.Phone
	}
	if input.Role != nil {
		validator.OneOf(FieldRole, *input.Role, sec.RoleNames()...)
		member.Role = sec.ParseRole(*input.Role)
	}
	if input.PlanID != nil {
		validator.UUID(FieldPlanID, *input.PlanID)
		member.PlanID = input.PlanID
	}
	if input.IsActive != nil {
		member.IsActive = *input.IsActive
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateMember(ctx, member); err != nil {
		return nil, err
	}

	service.logger.Info("member_updated", slog.String("member_id", member.ID))
	return member, nil
}

func (service *Service) DeleteMember(ctx context.Context, id string) error {
	if err := service.repo.DeleteMember(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("member_deleted", slog.String("member_id", id))
	return nil
}
