package payment

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/mehmetakif-git/forfit-api/internal/platform/request"
	"github.com/mehmetakif-git/forfit-api/internal/platform/respond"
	"github.com/mehmetakif-git/forfit-api/internal/platform/validate"
	"github.com/mehmetakif-git/forfit-api/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listPayments)
	router.Post("/", handler.recordPayment)
}

func (handler *Handler) listPayments(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		MemberID: request.URL.Query().Get("member_id"),
	}

	payments, total, err := handler.service.ListPayments(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, payments, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

type recordPaymentRequest struct {
	MemberID string     `json:"member_id"`
	Amount   float64    `json:"amount"`
	Currency string     `json:"currency"`
	Method   string     `json:"method"`
	Note     *string    `json:"note"`
	PaidAt   *time.Time `json:"paid_at"`
}

func (handler *Handler) recordPayment(writer http.ResponseWriter, request *http.Request) {
	var input recordPaymentRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	recordedBy, err := requestutil.RequiredPrincipalID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	payment, err := handler.service.RecordPayment(request.Context(), RecordInput{
		MemberID: input.MemberID,
		Amount:   input.Amount,
		Currency: input.Currency,
		Method:   input.Method,
		Note:     input.Note,
		PaidAt:   input.PaidAt,
	}, recordedBy)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, payment)
}
