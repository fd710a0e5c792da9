// Copyright (c) 2026 ForFit. All rights reserved.
// Author: mehmetakif.git@gmail.com

package access

import (
	"context"
	"log/slog"
	"time"

	"github.com/mehmetakif-git/forfit-api/internal/platform/apperr"
	"github.com/mehmetakif-git/forfit-api/internal/platform/constants"
	"github.com/mehmetakif-git/forfit-api/internal/platform/sec"
)

// # Contracts & Types

// TokenProvider defines the contract for generating signed access tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the resolved principal.
	GenerateAccessToken(principalID, email, displayName string, role sec.Role, timeToLive time.Duration) (string, error)
}

// ErrAuthentication is the single failure value for a rejected login.
//
// It deliberately never distinguishes "wrong password" from "unknown email"
// so the API cannot be used to enumerate accounts.
var ErrAuthentication = apperr.Unauthorized("Invalid login credentials")

// Verifier resolves (email, password) credentials into a [Principal].
//
// # Review Process
//
// This type is critical for security. Any change to the credential matching
// order or the failure taxonomy must be reviewed before merge.
type Verifier struct {
	directory    DirectoryStore
	sessions     *Store
	tokens       TokenProvider
	logger       *slog.Logger
	demoAccounts bool
}

// NewVerifier constructs a [Verifier] with its dependencies.
//
// demoEnabled controls the compiled-in demo principal table; production
// deployments switch it off via configuration.
func NewVerifier(directory DirectoryStore, sessions *Store, tokens TokenProvider, logger *slog.Logger, demoEnabled bool) *Verifier {
	return &Verifier{
		directory:    directory,
		sessions:     sessions,
		tokens:       tokens,
		logger:       logger,
		demoAccounts: demoEnabled,
	}
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult represents a successfully established identity.
type LoginResult struct {
	AccessToken string
	ExpiresIn   time.Duration
	Principal   *Principal
}

/*
Login validates credentials and establishes the session.

Description: Checks the compiled-in demo table first, then the member
directory. The demo table wins deterministically: a directory record sharing
a demo email can neither shadow nor override the demo account. Exactly one
outcome is possible — a single resolved Principal, or ErrAuthentication.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginResult: Signed access token plus the resolved principal
  - error: ErrAuthentication or token-signing failures
*/
func (verifier *Verifier) Login(context context.Context, input LoginInput) (*LoginResult, error) {

	// Resolve the principal. resolve already collapses every failure mode
	// into ErrAuthentication.
	principal, err := verifier.resolve(context, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	// Replace the session as a whole value. Concurrent logins race benignly:
	// last write wins, which is acceptable for a single-operator dashboard.
	verifier.sessions.Set(context, NewSession(principal))

	// Sign a short-lived access token carrying the role claim. The role is
	// immutable for the token's lifetime: re-resolution requires a new login.
	token, err := verifier.tokens.GenerateAccessToken(
		principal.ID,
		principal.Email,
		principal.DisplayName,
		principal.Role,
		constants.AccessTokenTTL,
	)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	verifier.logger.Info("login_succeeded",
		slog.String("principal_id", principal.ID),
		slog.String("role", string(principal.Role)),
	)

	return &LoginResult{
		AccessToken: token,
		ExpiresIn:   constants.AccessTokenTTL,
		Principal:   principal,
	}, nil
}

// resolve performs the two-step credential match: demo table, then directory.
func (verifier *Verifier) resolve(context context.Context, email, password string) (*Principal, error) {

	// ── 1. Demo table (first match wins) ──────────────────────────────────
	if verifier.demoAccounts {
		if account := findDemoAccount(email); account != nil {
			// The email is claimed by a demo account: the demo password is
			// the only password that can ever sign it in. No fall-through
			// to the directory, so the precedence stays deterministic.
			if sec.ConstantTimeEquals(password, account.password) {
				principal := account.principal
				return &principal, nil
			}
			return nil, ErrAuthentication
		}
	}

	// ── 2. Member directory ───────────────────────────────────────────────
	record, err := verifier.directory.FindByEmail(context, email)
	if err != nil {
		// Unreachable store and unknown email fail identically (closed).
		// Connectivity problems are still worth a log line.
		if apperr.As(err) == nil {
			verifier.logger.Warn("directory_lookup_failed",
				slog.Any("error", err),
			)
		}
		return nil, ErrAuthentication
	}

	if !sec.CheckPasswordHash(password, record.PasswordHash) {
		return nil, ErrAuthentication
	}

	// Best-effort side effect: stamp last-seen. A failure never fails login.
	if err := verifier.directory.TouchLastSeen(context, record.ID); err != nil {
		verifier.logger.Warn("directory_touch_last_seen_failed",
			slog.String("principal_id", record.ID),
			slog.Any("error", err),
		)
	}

	return &Principal{
		ID:          record.ID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
		// Missing or malformed role columns degrade to member.
		Role: sec.ParseRole(record.Role),
	}, nil
}

// # Session Teardown

/*
Logout clears the session and reports the navigation target.

Description: Idempotent — logging out an anonymous session leaves it
anonymous and never fails.

Parameters:
  - context: context.Context

Returns:
  - string: The fixed redirect path (application root / login view)
*/
func (verifier *Verifier) Logout(context context.Context) string {
	verifier.sessions.Clear(context)
	return constants.LoginRedirectPath
}
