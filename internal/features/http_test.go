// Copyright (c) 2026 ForFit. All rights reserved.
// Author: mehmetakif.git@gmail.com

package features_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehmetakif-git/forfit-api/internal/features"
	"github.com/mehmetakif-git/forfit-api/internal/platform/ctxutil"
	"github.com/mehmetakif-git/forfit-api/internal/platform/sec"
)

// checkRouter mounts the probe endpoint the way the server does, outside
// the admin route group.
func checkRouter(handler *features.Handler) chi.Router {
	router := chi.NewRouter()
	router.Get("/{name}/check", handler.Check)
	return router
}

func probeRequest(target string, role sec.Role) *http.Request {
	request := httptest.NewRequest(http.MethodGet, target, nil)
	claims := &sec.AuthClaims{
		PrincipalID: "principal-" + string(role),
		Role:        string(role),
	}
	return request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
}

type checkResponse struct {
	Data struct {
		FeatureName string `json:"feature_name"`
		Enabled     bool   `json:"enabled"`
		Render      string `json:"render"`
	} `json:"data"`
}

/*
TestHandler_Check verifies the gate probe resolves against the CALLING
principal's role, not an administrative one, and reports the render
outcome the dashboard should apply.
*/
func TestHandler_Check(t *testing.T) {
	repo := newFakeRepository(&features.Toggle{
		Name:         "payment_logging",
		Enabled:      true,
		AllowedRoles: []sec.Role{sec.RoleAdmin, sec.RoleStaff},
	})
	service := newTestService(repo)
	handler := features.NewHandler(service, features.NewGuard(service))
	router := checkRouter(handler)

	tests := []struct {
		name        string
		target      string
		role        sec.Role
		wantEnabled bool
		wantRender  string
	}{
		{"staff_probe_allowed", "/payment_logging/check", sec.RoleStaff, true, "children"},
		{"trainer_probe_excluded", "/payment_logging/check", sec.RoleTrainer, false, "disabled_panel"},
		{"excluded_with_fallback", "/payment_logging/check?fallback=true", sec.RoleMember, false, "fallback"},
		{"excluded_hidden", "/payment_logging/check?show_fallback=false", sec.RoleMember, false, "nothing"},
		{"missing_record_fails_open", "/security_cameras/check", sec.RoleMember, true, "children"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, probeRequest(tt.target, tt.role))

			require.Equal(t, http.StatusOK, recorder.Code)

			var body checkResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.wantEnabled, body.Data.Enabled)
			assert.Equal(t, tt.wantRender, body.Data.Render)
		})
	}
}

/*
TestHandler_Check_RequiresAuth verifies an unauthenticated probe is
rejected rather than resolved against a default role.
*/
func TestHandler_Check_RequiresAuth(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)
	handler := features.NewHandler(service, features.NewGuard(service))
	router := checkRouter(handler)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/reports/check", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

/*
TestHandler_Routes_ExcludesProbe pins the probe endpoint outside the
administrative router, so mounting Routes behind admin-only middleware
can never make a routine gate check trip a denial.
*/
func TestHandler_Routes_ExcludesProbe(t *testing.T) {
	repo := newFakeRepository(&features.Toggle{Name: "reports", Enabled: true})
	service := newTestService(repo)
	handler := features.NewHandler(service, features.NewGuard(service))

	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, probeRequest("/reports/check", sec.RoleAdmin))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
