// Copyright (c) 2026 ForFit. All rights reserved.
// Author: mehmetakif.git@gmail.com

package access

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mehmetakif-git/forfit-api/internal/platform/constants"
)

// # Guard Decisions

// Decision is the outcome of evaluating a protected route for a session.
// Exactly one decision is produced per evaluation — the guard is total.
type Decision int

const (
	// RenderNothing: the session is anonymous. The guard renders nothing;
	// showing the login view is the top-level caller's responsibility.
	RenderNothing Decision = iota

	// RenderDenial: the principal is authenticated but their role is not in
	// the route's allowed set. The denial view is shown and a countdown may
	// be started to forcibly clear the session.
	RenderDenial

	// RenderChildren: the principal's role is permitted; render the route.
	RenderChildren
)

// String returns a log-friendly name for the decision.
func (d Decision) String() string {
	switch d {
	case RenderNothing:
		return "nothing"
	case RenderDenial:
		return "denial"
	case RenderChildren:
		return "children"
	default:
		return "unknown"
	}
}

// Redirector is the opaque navigation side effect invoked on logout and on
// denial timeout. The guard only guarantees it is called with the fixed
// login target; the routing mechanism behind it is not its concern.
type Redirector func(path string)

// # Route Guard

// RouteGuard gates top-level dashboard routes against the static
// [RoutePolicy].
//
// # Evaluation Model
//
// Evaluate is a per-request (per-render) pure decision: the guard never
// caches an Allowed result past a single check, so a role or policy change
// is honored on the very next evaluation.
type RouteGuard struct {
	policy   *RoutePolicy
	sessions *Store
	redirect Redirector
	logger   *slog.Logger

	// denialTimeout is how long the denial view is shown before the
	// session is forcibly cleared. Reference value 3000ms.
	denialTimeout time.Duration

	mu     sync.Mutex
	active *DenialCountdown
}

// NewRouteGuard constructs a route guard over the given policy and session store.
func NewRouteGuard(policy *RoutePolicy, sessions *Store, redirect Redirector, logger *slog.Logger) *RouteGuard {
	return &RouteGuard{
		policy:        policy,
		sessions:      sessions,
		redirect:      redirect,
		logger:        logger,
		denialTimeout: constants.DenialTimeout,
	}
}

/*
Evaluate decides how a protected route renders for a session.

Description: Pure and total — for every (session, routeKey) pair exactly one
of the three decisions is returned, and the function never panics. No side
effects: starting the denial countdown is a separate, explicit step.

Parameters:
  - session: Session
  - routeKey: string

Returns:
  - Decision: RenderNothing | RenderDenial | RenderChildren
*/
func (guard *RouteGuard) Evaluate(session Session, routeKey string) Decision {

	// Anonymous sessions render nothing; the login view lives upstream.
	if !session.IsAuthenticated || session.Principal == nil {
		return RenderNothing
	}

	if guard.policy.Allowed(routeKey, session.Principal.Role) {
		return RenderChildren
	}

	return RenderDenial
}

/*
StartDenial begins the forced-logout countdown for a denied principal.

Description: After the configured timeout elapses the session is cleared and
the redirect side effect fires — both exactly once. Starting a new countdown
cancels any previous one, so at most one countdown is ever pending.

Parameters:
  - ctx: context.Context (used for the eventual session clear)

Returns:
  - *DenialCountdown: Handle for cancellation or manual short-circuit
*/
func (guard *RouteGuard) StartDenial(ctx context.Context) *DenialCountdown {
	// The countdown outlives the request that armed it, so detach from
	// the request's cancellation before capturing.
	expelCtx := context.WithoutCancel(ctx)
	countdown := newDenialCountdown(guard.denialTimeout, func() {
		guard.expel(expelCtx)
	})

	guard.mu.Lock()
	previous := guard.active
	guard.active = countdown
	guard.mu.Unlock()

	if previous != nil {
		previous.Cancel()
	}

	return countdown
}

/*
ReturnToLogin performs the manual denial short-circuit.

Description: The "Return to Login" action available while the denial view is
showing. It expires the pending countdown immediately; if none is pending it
clears the session directly. Either way the clear+redirect pair runs at most
once per countdown.

Parameters:
  - context: context.Context

Returns:
  - string: The fixed redirect path
*/
func (guard *RouteGuard) ReturnToLogin(context context.Context) string {
	guard.mu.Lock()
	pending := guard.active
	guard.mu.Unlock()

	if pending != nil {
		pending.Expire()
	} else {
		guard.expel(context)
	}

	return constants.LoginRedirectPath
}

// DenialTimeout exposes the configured countdown duration (for API payloads).
func (guard *RouteGuard) DenialTimeout() time.Duration {
	return guard.denialTimeout
}

// expel clears the session and fires the redirect side effect.
func (guard *RouteGuard) expel(context context.Context) {
	guard.sessions.Clear(context)
	guard.logger.Info("denied_session_cleared",
		slog.String("redirect", constants.LoginRedirectPath),
	)
	if guard.redirect != nil {
		guard.redirect(constants.LoginRedirectPath)
	}
}

// # Denial Countdown

// DenialCountdown is a cancellable scheduled task owned by the guard.
//
// # Lifecycle
//
// Exactly one of three things happens to a countdown: it expires on its own
// after the timeout, it is expired manually via [DenialCountdown.Expire], or
// it is cancelled via [DenialCountdown.Cancel] when the view that started it
// is torn down. The expiry action runs at most once in every interleaving.
type DenialCountdown struct {
	mu       sync.Mutex
	timer    *time.Timer
	deadline time.Time
	fired    bool
	canceled bool
	onExpire func()
}

// newDenialCountdown arms a countdown that invokes onExpire after timeout.
func newDenialCountdown(timeout time.Duration, onExpire func()) *DenialCountdown {
	countdown := &DenialCountdown{
		deadline: time.Now().Add(timeout),
		onExpire: onExpire,
	}
	countdown.timer = time.AfterFunc(timeout, countdown.fire)
	return countdown
}

// Expire short-circuits the countdown, running the expiry action now.
// A no-op if the countdown already fired or was cancelled.
func (countdown *DenialCountdown) Expire() {
	countdown.fire()
}

// Cancel disarms the countdown without running the expiry action.
//
// This is the teardown obligation: a discarded denial view must never clear
// a session it no longer represents. Cancelling an already-fired countdown
// is a harmless no-op.
func (countdown *DenialCountdown) Cancel() {
	countdown.mu.Lock()
	countdown.canceled = true
	timer := countdown.timer
	countdown.mu.Unlock()

	if timer != nil {
		timer.Stop()
	}
}

// Remaining reports how much of the countdown is left. Never negative.
func (countdown *DenialCountdown) Remaining() time.Duration {
	remaining := time.Until(countdown.deadline)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// fire runs the expiry action, guaranteeing at-most-once semantics against
// both the timer callback and a concurrent manual Expire.
func (countdown *DenialCountdown) fire() {
	countdown.mu.Lock()
	if countdown.fired || countdown.canceled {
		countdown.mu.Unlock()
		return
	}
	countdown.fired = true
	action := countdown.onExpire
	countdown.mu.Unlock()

	if action != nil {
		action()
	}
}
