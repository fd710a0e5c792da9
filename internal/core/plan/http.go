package plan

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/mehmetakif-git/forfit-api/internal/platform/request"
	"github.com/mehmetakif-git/forfit-api/internal/platform/respond"
	"github.com/mehmetakif-git/forfit-api/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listPlans)
	router.Get("/{id}", handler.getPlan)
	router.Post("/", handler.createPlan)
	router.Patch("/{id}/active", handler.setPlanActive)
}

func (handler *Handler) listPlans(writer http.ResponseWriter, request *http.Request) {
	plans, err := handler.service.ListPlans(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, plans)
}

func (handler *Handler) getPlan(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	plan, err := handler.service.GetPlan(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, plan)
}

func (handler *Handler) createPlan(writer http.ResponseWriter, request *http.Request) {
	var input Plan
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := handler.service.CreatePlan(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

type setActiveRequest struct {
	IsActive bool `json:"is_active"`
}

func (handler *Handler) setPlanActive(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	var input setActiveRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := handler.service.SetPlanActive(request.Context(), id, input.IsActive); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
