// Copyright (c) 2026 ForFit. All rights reserved.
// Author: mehmetakif.git@gmail.com

// In-package tests: the countdown tests shorten denialTimeout so expiry can
// be observed without waiting out the production value.
package access

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehmetakif-git/forfit-api/internal/platform/constants"
	"github.com/mehmetakif-git/forfit-api/internal/platform/sec"
)

func newTestGuard(redirect Redirector) (*RouteGuard, *Store) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sessions := NewStore(nil, logger)
	guard := NewRouteGuard(DefaultRoutePolicy(), sessions, redirect, logger)
	guard.denialTimeout = 25 * time.Millisecond
	return guard, sessions
}

func signedInSession(role sec.Role) Session {
	return NewSession(&Principal{
		ID:          "p-1",
		Email:       "p@forfit.qa",
		DisplayName: "P",
		Role:        role,
	})
}

/*
TestRouteGuard_EvaluateTotality verifies every (session, routeKey) pair maps
to exactly one of the three decisions, including corrupted sessions and
unknown keys.
*/
func TestRouteGuard_EvaluateTotality(t *testing.T) {
	guard, _ := newTestGuard(nil)

	sessions := []Session{
		AnonymousSession(),
		{Principal: nil, IsAuthenticated: true}, // corrupted
		signedInSession(sec.RoleAdmin),
		signedInSession(sec.RoleStaff),
		signedInSession(sec.RoleTrainer),
		signedInSession(sec.RoleMember),
	}
	routeKeys := append(DefaultRoutePolicy().RouteKeys(), "no_such_route", "")

	for _, session := range sessions {
		for _, routeKey := range routeKeys {
			decision := guard.Evaluate(session, routeKey)
			assert.Contains(t,
				[]Decision{RenderNothing, RenderDenial, RenderChildren},
				decision,
			)
		}
	}
}

/*
TestRouteGuard_EvaluateDecisions verifies the three decision branches.
*/
func TestRouteGuard_EvaluateDecisions(t *testing.T) {
	guard, _ := newTestGuard(nil)

	tests := []struct {
		name     string
		session  Session
		routeKey string
		want     Decision
	}{
		{"anonymous_renders_nothing", AnonymousSession(), RouteDashboard, RenderNothing},
		{"corrupted_session_renders_nothing", Session{IsAuthenticated: true}, RouteDashboard, RenderNothing},
		{"allowed_role_renders_children", signedInSession(sec.RoleStaff), RouteMembers, RenderChildren},
		{"denied_role_renders_denial", signedInSession(sec.RoleMember), RouteMembers, RenderDenial},
		{"unknown_route_renders_denial", signedInSession(sec.RoleAdmin), "no_such_route", RenderDenial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, guard.Evaluate(tt.session, tt.routeKey))
		})
	}
}

/*
TestRouteGuard_DenialExpiry verifies that after the timeout the session is
cleared and the redirect fires, both exactly once.
*/
func TestRouteGuard_DenialExpiry(t *testing.T) {
	var redirects atomic.Int32
	done := make(chan struct{}, 4)
	guard, sessions := newTestGuard(func(path string) {
		assert.Equal(t, constants.LoginRedirectPath, path)
		redirects.Add(1)
		done <- struct{}{}
	})

	sessions.Set(context.Background(), signedInSession(sec.RoleMember))
	countdown := guard.StartDenial(context.Background())
	require.Greater(t, countdown.Remaining(), time.Duration(0))

	// Arming the countdown must not clear the session early. The session
	// stays authenticated for the full configured duration.
	assert.True(t, sessions.Get(context.Background()).IsAuthenticated)
	assert.Zero(t, redirects.Load())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("denial countdown never fired")
	}

	assert.False(t, sessions.Get(context.Background()).IsAuthenticated)

	// No second firing
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), redirects.Load())
}

/*
TestRouteGuard_DenialCancel verifies teardown stops the countdown before it
can clear the session.
*/
func TestRouteGuard_DenialCancel(t *testing.T) {
	var redirects atomic.Int32
	guard, sessions := newTestGuard(func(string) { redirects.Add(1) })

	sessions.Set(context.Background(), signedInSession(sec.RoleMember))
	countdown := guard.StartDenial(context.Background())
	countdown.Cancel()

	time.Sleep(80 * time.Millisecond)

	assert.True(t, sessions.Get(context.Background()).IsAuthenticated)
	assert.Zero(t, redirects.Load())
	assert.Zero(t, countdown.Remaining())
}

/*
TestRouteGuard_ManualExpireWinsOverTimer verifies Expire plus the timer still
runs the clear+redirect pair exactly once.
*/
func TestRouteGuard_ManualExpireWinsOverTimer(t *testing.T) {
	var redirects atomic.Int32
	guard, sessions := newTestGuard(func(string) { redirects.Add(1) })

	sessions.Set(context.Background(), signedInSession(sec.RoleTrainer))
	countdown := guard.StartDenial(context.Background())
	countdown.Expire()

	assert.False(t, sessions.Get(context.Background()).IsAuthenticated)

	// Wait past the timer deadline; the fire must not repeat
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(1), redirects.Load())

	// Repeated manual expiry is also a no-op
	countdown.Expire()
	assert.Equal(t, int32(1), redirects.Load())
}

/*
TestRouteGuard_RestartReplacesCountdown verifies at most one countdown is
pending: re-arming cancels the previous one.
*/
func TestRouteGuard_RestartReplacesCountdown(t *testing.T) {
	var redirects atomic.Int32
	done := make(chan struct{}, 4)
	guard, sessions := newTestGuard(func(string) {
		redirects.Add(1)
		done <- struct{}{}
	})

	sessions.Set(context.Background(), signedInSession(sec.RoleMember))
	first := guard.StartDenial(context.Background())
	second := guard.StartDenial(context.Background())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("denial countdown never fired")
	}
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, int32(1), redirects.Load())
	assert.Zero(t, first.Remaining())
	assert.Zero(t, second.Remaining())
}

/*
TestRouteGuard_ReturnToLogin verifies the manual short-circuit clears the
session immediately, with or without a pending countdown.
*/
func TestRouteGuard_ReturnToLogin(t *testing.T) {
	tests := []struct {
		name         string
		armCountdown bool
	}{
		{"with_pending_countdown", true},
		{"without_pending_countdown", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard, sessions := newTestGuard(nil)
			sessions.Set(context.Background(), signedInSession(sec.RoleMember))

			if tt.armCountdown {
				guard.StartDenial(context.Background())
			}

			path := guard.ReturnToLogin(context.Background())

			assert.Equal(t, constants.LoginRedirectPath, path)
			assert.False(t, sessions.Get(context.Background()).IsAuthenticated)
		})
	}
}

/*
TestRouteGuard_DenialTimeoutDefault verifies the production countdown value.
*/
func TestRouteGuard_DenialTimeoutDefault(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	guard := NewRouteGuard(DefaultRoutePolicy(), NewStore(nil, logger), nil, logger)
	assert.Equal(t, 3*time.Second, guard.DenialTimeout())
}
