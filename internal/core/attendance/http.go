package attendance

import (
	"net/http"

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
	router.Get("/", handler.listVisits)
	router.Post("/check-in", handler.checkIn)
	router.Post("/check-out", handler.checkOut)
}

func (handler *Handler) listVisits(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		MemberID: request.URL.Query().Get("member_id"),
		OpenOnly: request.URL.Query().Get("open") == "true",
	}

	visits, total, err := handler.service.ListVisits(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, visits, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

type visitRequest struct {
	MemberID string `json:"member_id"`
}

func (handler *Handler) checkIn(writer http.ResponseWriter, request *http.Request) {
	var input visitRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	visit, err := handler.service.CheckIn(request.Context(), input.MemberID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, visit)
}

func (handler *Handler) checkOut(writer http.ResponseWriter, request *http.Request) {
	var input visitRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	visit, err := handler.service.CheckOut(request.Context(), input.MemberID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, visit)
}
