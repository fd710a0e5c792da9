package trainer

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
	router.Get("/", handler.listTrainers)
	router.Get("/{id}", handler.getTrainer)
	router.Post("/", handler.createTrainer)
	router.Patch("/{id}", handler.updateTrainer)
	router.Delete("/{id}", handler.deactivateTrainer)
}

func (handler *Handler) listTrainers(writer http.ResponseWriter, request *http.Request) {
	includeInactive := request.URL.Query().Get("inactive") == "true"

	trainers, err := handler.service.ListTrainers(request.Context(), includeInactive)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, trainers)
}

func (handler *Handler) getTrainer(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	trainer, err := handler.service.GetTrainer(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, trainer)
}

func (handler *Handler) createTrainer(writer http.ResponseWriter, request *http.Request) {
	var input Trainer
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := handler.service.CreateTrainer(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateTrainer(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	var input Trainer
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := handler.service.UpdateTrainer(request.Context(), id, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deactivateTrainer(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	if err := handler.service.DeactivateTrainer(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
