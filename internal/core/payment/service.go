package payment

import (
	"context"
	"log/slog"
	"time"

	"github.com/mehmetakif-git/forfit-api/internal/platform/validate"
	"github.com/mehmetakif-git/forfit-api/pkg/pointer"
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

func (service *Service) ListPayments(ctx context.Context, filter Filter, limit, offset int) ([]*Payment, int, error) {
	return service.repo.ListPayments(ctx, filter, limit, offset)
}

// RecordInput carries the payment log form.
type RecordInput struct {
	MemberID string
	Amount   float64
	Currency string
	Method   string
	Note     *string
	PaidAt   *time.Time
}

// RecordPayment logs a payment. recordedBy is the principal ID of the
// staff account submitting the entry.
func (service *Service) RecordPayment(ctx context.Context, input RecordInput, recordedBy string) (*Payment, error) {
	validator := &validate.Validator{}

	validator.Required(FieldMemberID, input.MemberID).UUID(FieldMemberID, input.MemberID).
		Positive(FieldAmount, input.Amount).
		Required(FieldCurrency, input.Currency).MaxLen(FieldCurrency, input.Currency, 3).
		OneOf(FieldMethod, input.Method, Methods...).
		MaxLen(FieldNote, pointer.Val(input.Note), 500)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	paidAt := pointer.Fallback(input.PaidAt, time.Now()).UTC()

	payment := &Payment{
		ID:         uuid.New(),
		MemberID:   input.MemberID,
		Amount:     input.Amount,
		Currency:   input.Currency,
		Method:     input.Method,
		Note:       input.Note,
		RecordedBy: recordedBy,
		PaidAt:     paidAt,
	}

	if err := service.repo.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	service.logger.Info("payment_recorded",
		slog.String("payment_id", payment.ID),
		slog.String("member_id", payment.MemberID),
		slog.Float64("amount", payment.Amount),
	)
	return payment, nil
}
