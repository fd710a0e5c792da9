package attendance

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mehmetakif-git/forfit-api/internal/platform/apperr"
	"github.com/mehmetakif-git/forfit-api/internal/platform/dberr"
	"github.com/mehmetakif-git/forfit-api/internal/platform/validate"
	"github.com/mehmetakif-git/forfit-api/pkg/uuid"
)

// ErrAlreadyCheckedIn rejects a second check-in while a visit is open.
var ErrAlreadyCheckedIn = apperr.Conflict("Member already has an open visit")

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

func (service *Service) ListVisits(ctx context.Context, filter Filter, limit, offset int) ([]*Visit, int, error) {
	return service.repo.ListVisits(ctx, filter, limit, offset)
}

// CheckIn opens a visit for the member. A member can hold at most one
// open visit at a time.
func (service *Service) CheckIn(ctx context.Context, memberID string) (*Visit, error) {
	validator := &validate.Validator{}
	validator.Required(FieldMemberID, memberID).UUID(FieldMemberID, memberID)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	_, err := service.repo.FindOpenVisit(ctx, memberID)
	if err == nil {
		return nil, ErrAlreadyCheckedIn
	}
	if !errors.Is(err, dberr.ErrNotFound) {
		return nil, err
	}

	visit := &Visit{
		ID:          uuid.New(),
		MemberID:    memberID,
		CheckedInAt: time.Now().UTC(),
	}

	if err := service.repo.CreateVisit(ctx, visit); err != nil {
		return nil, err
	}

	service.logger.Info("member_checked_in",
		slog.String("visit_id", visit.ID),
		slog.String("member_id", memberID),
	)
	return visit, nil
}

// CheckOut closes the member's open visit.
func (service *Service) CheckOut(ctx context.Context, memberID string) (*Visit, error) {
	open, err := service.repo.FindOpenVisit(ctx, memberID)
	if err != nil {
		return nil, err
	}

	visit, err := service.repo.CloseVisit(ctx, open.ID)
	if err != nil {
		return nil, err
	}

	service.logger.Info("member_checked_out",
		slog.String("visit_id", visit.ID),
		slog.String("member_id", memberID),
	)
	return visit, nil
}
