// Copyright (c) 2026 ForFit. All rights reserved.
// Author: mehmetakif.git@gmail.com

/*
HTTP delivery layer for the access domain.

The handler is a thin mediation layer between the dashboard SPA and the
access services. It owns the authentication endpoints and the route-guard
middleware that the rest of the API mounts in front of protected route
groups.

This layer is strictly responsible for transport concerns (status codes,
headers, JSON).
*/
package access

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mehmetakif-git/forfit-api/internal/platform/apperr"
	"github.com/mehmetakif-git/forfit-api/internal/platform/constants"
	"github.com/mehmetakif-git/forfit-api/internal/platform/middleware"
	requestutil "github.com/mehmetakif-git/forfit-api/internal/platform/request"
	"github.com/mehmetakif-git/forfit-api/internal/platform/respond"
	"github.com/mehmetakif-git/forfit-api/internal/platform/sec"
	"github.com/mehmetakif-git/forfit-api/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements the access-control HTTP endpoints.
type Handler struct {
	verifier *Verifier
	sessions *Store
	guard    *RouteGuard
	policy   *RoutePolicy
}

// NewHandler constructs a new [Handler] with its service dependencies.
func NewHandler(verifier *Verifier, sessions *Store, guard *RouteGuard, policy *RoutePolicy) *Handler {
	return &Handler{
		verifier: verifier,
		sessions: sessions,
		guard:    guard,
		policy:   policy,
	}
}

// Routes returns a [chi.Router] configured with access-domain routes.
//
// # Endpoints
//   - POST /login            : Authenticates and returns a JWT.
//   - POST /logout           : Clears the session (idempotent).
//   - POST /return-to-login  : Manual denial short-circuit.
//   - GET  /session          : Current session (reload restore).
//   - GET  /routes           : Route policy table for nav rendering.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Post("/login", handler.login)
	router.Post("/logout", handler.logout)
	router.Post("/return-to-login", handler.returnToLogin)
	router.Get("/session", handler.session)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/routes", handler.routes)
	})

	return router
}

// # Request Payloads

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

/*
login authenticates a principal and establishes the session.

POST /api/v1/auth/login

Request:
  - Body: loginRequest (Email, Password)

Response:
  - 200: Access token, expiry, principal
  - 400: Validation failure
  - 401: Invalid credentials (single generic message)
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.verifier.Login(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		FieldAccessToken: result.AccessToken,
		FieldTokenType:   "Bearer",
		FieldExpiresIn:   int(result.ExpiresIn.Seconds()),
		FieldPrincipal:   result.Principal,
	})
}

/*
logout clears the session.

POST /api/v1/auth/logout

Response:
  - 200: Redirect target. Idempotent — succeeds for anonymous sessions too.
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	redirect := handler.verifier.Logout(request.Context())
	respond.OK(writer, map[string]string{FieldRedirect: redirect})
}

/*
returnToLogin performs the manual denial short-circuit.

POST /api/v1/auth/return-to-login

Description: The "Return to Login" action shown on the denial view. Expires
any pending denial countdown immediately (clear + redirect, exactly once).
*/
func (handler *Handler) returnToLogin(writer http.ResponseWriter, request *http.Request) {
	redirect := handler.guard.ReturnToLogin(request.Context())
	respond.OK(writer, map[string]string{FieldRedirect: redirect})
}

/*
session returns the current session for reload restore.

GET /api/v1/auth/session

Response:
  - 200: The session value; anonymous sessions return {principal: null}.
    Never an error — restore fails soft by design.
*/
func (handler *Handler) session(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.sessions.Get(request.Context()))
}

/*
routes lists the route policy entries visible to the caller's role.

GET /api/v1/auth/routes

Description: Lets the SPA render only the navigation items the signed-in
principal may actually open.
*/
func (handler *Handler) routes(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	role := sec.ParseRole(claims.Role)
	visible := make([]string, 0)
	for _, routeKey := range handler.policy.RouteKeys() {
		if handler.policy.Allowed(routeKey, role) {
			visible = append(visible, routeKey)
		}
	}

	respond.OK(writer, map[string]any{"routes": visible})
}

// # Route-Guard Middleware

/*
GuardRoute gates an entire route group behind the static route policy.

Description: The HTTP expression of the route guard's per-render evaluation.
Each request re-evaluates the decision from scratch — nothing is cached:

  - RenderNothing  -> 401 (no session; client shows the login view)
  - RenderDenial   -> 403 with the countdown metadata; the server-side
    denial countdown is armed so the session is cleared after the timeout
    even if the client goes quiet
  - RenderChildren -> the request proceeds

Must be mounted AFTER [middleware.Authenticate].
*/
func (handler *Handler) GuardRoute(routeKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			session := sessionFromRequest(request)

			switch handler.guard.Evaluate(session, routeKey) {

			case RenderChildren:
				next.ServeHTTP(writer, request)

			case RenderNothing:
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))

			case RenderDenial:
				countdown := handler.guard.StartDenial(request.Context())
				respond.JSON(writer, http.StatusForbidden, map[string]any{
					"error":             "Access denied for your role",
					"code":              "DENIED_BY_POLICY",
					"route":             routeKey,
					"denial_timeout_ms": countdown.Remaining().Milliseconds(),
					FieldRedirect:       constants.LoginRedirectPath,
				})
			}
		})
	}
}

// sessionFromRequest reconstructs the per-request session view from the
// verified JWT claims injected by the authentication middleware.
func sessionFromRequest(request *http.Request) Session {
	claims := requestutil.Claims(request)
	if claims == nil {
		return AnonymousSession()
	}
	return NewSession(&Principal{
		ID:          claims.PrincipalID,
		Email:       claims.Email,
		DisplayName: claims.DisplayName,
		Role:        sec.ParseRole(claims.Role),
	})
}
