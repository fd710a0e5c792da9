// Copyright (c) 2026 ForFit. All rights reserved.
// Author: mehmetakif.git@gmail.com

package features

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mehmetakif-git/forfit-api/internal/platform/apperr"
	requestutil "github.com/mehmetakif-git/forfit-api/internal/platform/request"
	"github.com/mehmetakif-git/forfit-api/internal/platform/respond"
	"github.com/mehmetakif-git/forfit-api/internal/platform/sec"
	"github.com/mehmetakif-git/forfit-api/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements the feature-toggle HTTP endpoints.
//
// # Scope
//
// The administrative CRUD surface for toggles ([Handler.Routes]) plus the
// per-feature check endpoint the dashboard consults when mounting a gated
// subtree ([Handler.Check]). The check endpoint serves every authenticated
// role; the admin routes are restricted by the server when mounting. This
// handler assumes both.
type Handler struct {
	service *Service
	guard   *Guard
}

// NewHandler constructs a new [Handler] with its service dependencies.
func NewHandler(service *Service, guard *Guard) *Handler {
	return &Handler{service: service, guard: guard}
}

// Routes returns a [chi.Router] configured with the administrative
// feature-toggle routes. [Handler.Check] is deliberately not here: probing
// a gate must never require the settings route or the admin role.
//
// # Endpoints
//   - GET    /      : All toggles (administration screen).
//   - POST   /      : Backfill a missing toggle record.
//   - GET    /{name}  : One toggle record.
//   - PATCH  /{name}  : Single immediately-committed update.
//   - POST   /bulk  : One update per entry, partial-success report.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Post("/bulk", handler.bulkApply)
	router.Get("/{name}", handler.get)
	router.Patch("/{name}", handler.update)

	return router
}

// # Request Payloads

type createToggleRequest struct {
	Name         string   `json:"feature_name"`
	Enabled      bool     `json:"enabled"`
	AllowedRoles []string `json:"allowed_roles"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
}

type updateToggleRequest struct {
	Enabled      bool      `json:"enabled"`
	AllowedRoles *[]string `json:"allowed_roles"`
}

// validRoles checks every entry of an allowed-role list.
func validRoles(validator *validate.Validator, names []string) {
	for _, name := range names {
		if !sec.Role(name).IsValid() {
			validator.Custom(FieldAllowedRoles, true, "Unknown role: "+name)
			return
		}
	}
}

// # Handlers

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	toggles, err := handler.service.ListToggles(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, toggles)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	name := requestutil.Param(request, "name")

	toggle, err := handler.service.GetToggle(request.Context(), name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, toggle)
}

/*
create backfills a missing toggle record.

POST /api/v1/features

Response:
  - 201: {"success": true}
  - 200: {"success": false} — store rejected the insert (e.g. duplicate);
    mirrored as a flag, not an error, to match the bulk-operation contract.
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createToggleRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldFeatureName, input.Name).
		FeatureName(FieldFeatureName, input.Name).
		MaxLen(FieldDescription, input.Description, 500).
		MaxLen(FieldCategory, input.Category, 100)
	validRoles(validator, input.AllowedRoles)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	ok := handler.service.CreateToggle(request.Context(), CreateToggleInput{
		Name:         input.Name,
		Enabled:      input.Enabled,
		AllowedRoles: rolesFromStrings(input.AllowedRoles),
		Description:  input.Description,
		Category:     input.Category,
	})
	if !ok {
		respond.OK(writer, map[string]bool{"success": false})
		return
	}
	respond.Created(writer, map[string]bool{"success": true})
}

/*
update applies one immediately-committed toggle change.

PATCH /api/v1/features/{name}

Request:
  - Body: updateToggleRequest (Enabled, optional AllowedRoles)

Response:
  - 200: {"success": bool}
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	name := requestutil.Param(request, "name")

	var input updateToggleRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldFeatureName, name).
		FeatureName(FieldFeatureName, name)
	if input.AllowedRoles != nil {
		validRoles(validator, *input.AllowedRoles)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var roles []sec.Role
	if input.AllowedRoles != nil {
		roles = rolesFromStrings(*input.AllowedRoles)
	}

	ok := handler.service.UpdateToggle(request.Context(), name, input.Enabled, roles)
	respond.OK(writer, map[string]bool{"success": ok})
}

/*
bulkApply runs one independent update per entry.

POST /api/v1/features/bulk

Response:
  - 200: BulkReport with updated and failed toggle names. Partial success
    is a normal outcome, never an error status.
*/
func (handler *Handler) bulkApply(writer http.ResponseWriter, request *http.Request) {
	var changes []ToggleChange
	if err := requestutil.DecodeJSON(request, &changes); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}
	if len(changes) == 0 {
		respond.Error(writer, request, apperr.Unprocessable("Empty change list"))
		return
	}

	respond.OK(writer, handler.service.BulkApply(request.Context(), changes))
}

/*
Check returns the resolver verdict for the calling principal.

GET /api/v1/features/{name}/check

Description: The dashboard calls this when mounting a gated subtree, so it
is open to every authenticated role. The response carries the boolean
verdict plus the render outcome so the client branch stays trivial.

Query parameters:
  - fallback=true       : The caller supplies its own disabled-state content.
  - show_fallback=false : Hide the subtree entirely while disabled.
*/
func (handler *Handler) Check(writer http.ResponseWriter, request *http.Request) {
	name := requestutil.Param(request, "name")

	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	role := sec.ParseRole(claims.Role)

	query := request.URL.Query()
	outcome := handler.guard.Render(request.Context(), name, role, RenderOptions{
		HasFallback:  query.Get("fallback") == "true",
		ShowFallback: query.Get("show_fallback") != "false",
	})

	respond.OK(writer, map[string]any{
		FieldFeatureName: name,
		FieldEnabled:     outcome == RenderChildren,
		"render":         outcome.String(),
	})
}

// # Feature-Gate Middleware

/*
Gate blocks a route subtree when the named feature is disabled for the
calling principal's role.

Description: The server-side counterpart of wrapping a UI subtree in the
feature guard. Inherits the resolver's fail-open behavior, so a missing
toggle record or an unreachable store never blocks the route.

Must be mounted AFTER [middleware.Authenticate].
*/
func (handler *Handler) Gate(featureName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := requestutil.Claims(request)
			role := sec.RoleMember
			if claims != nil {
				role = sec.ParseRole(claims.Role)
			}

			if !handler.service.IsFeatureEnabled(request.Context(), featureName, role) {
				respond.JSON(writer, http.StatusForbidden, map[string]any{
					"error":          "Feature is currently disabled",
					"code":           "FEATURE_DISABLED",
					FieldFeatureName: featureName,
				})
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
