package member

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
	router.Get("/", handler.listMembers)
	router.Get("/{id}", handler.getMember)
	router.Post("/", handler.createMember)
	router.Patch("/{id}", handler.updateMember)
	router.Delete("/{id}", handler.deleteMember)
}

func (handler *Handler) listMembers(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query:    request.URL.Query().Get("q"),
		PlanID:   request.URL.Query().Get("plan_id"),
		Inactive: request.URL.Query().Get("inactive") == "true",
	}

	members, total, err := handler.service.ListMembers(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, members, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getMember(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	member, err := handler.service.GetMember(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, member)
}

type createMemberRequest struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	DisplayName string  `json:"display_name"`
	Phone       *string `json:"phone"`
	Role        string  `json:"role"`
	PlanID      *string `json:"plan_id"`
}

func (handler *Handler) createMember(writer http.ResponseWriter, request *http.Request) {
	var input createMemberRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	member, err := handler.service.CreateMember(request.Context(), CreateInput{
		Email:       input.Email,
		Password:    input.Password,
		DisplayName: input.DisplayName,
		Phone:       input.Phone,
		Role:        input.Role,
		PlanID:      input.PlanID,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, member)
}

type updateMemberRequest struct {
	DisplayName *string `json:"display_name"`
	Phone       *string `json:"phone"`
	Role        *string `json:"role"`
	PlanID      *string `json:"plan_id"`
	IsActive    *bool   `json:"is_active"`
}

func (handler *Handler) updateMember(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	var input updateMemberRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	member, err := handler.service.UpdateMember(request.Context(), id, UpdateInput{
		DisplayName: input.DisplayName,
		Phone:       input.Phone,
		Role:        input.Role,
		PlanID:      input.PlanID,
		IsActive:    input.IsActive,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, member)
}

func (handler *Handler) deleteMember(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	if err := handler.service.DeleteMember(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
