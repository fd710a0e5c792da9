// Copyright (c) 2026 ForFit. All rights reserved.
// Author: mehmetakif.git@gmail.com

/*
Package access implements the identity, session, and authorization core of
the ForFit dashboard API.

It owns the entities and rules that decide who is signed in and what they may
see: the Session store, the credential Verifier, the static route policy, and
the route guard with its denial countdown.

# Architecture

This layer is the "Truth" of the system for identity. The CRUD domains under
internal/core never touch the session directly; they only consume the
decisions this package produces.
*/
package access

import (
	"time"

	"github.com/mehmetakif-git/forfit-api/internal/platform/sec"
)

// # Domain Entities

// Principal is a resolved, authenticated identity with a role.
type Principal struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	DisplayName string   `json:"display_name"`
	Role        sec.Role `json:"role"`
}

// Session is the single unit of signed-in state.
//
// # Invariant
//
// IsAuthenticated must always equal (Principal != nil). Construct sessions
// only through [NewSession] and [AnonymousSession] so the invariant cannot
// drift; the store re-normalizes on every write as a backstop.
type Session struct {
	Principal       *Principal `json:"principal"`
	IsAuthenticated bool       `json:"is_authenticated"`

	// EstablishedAt records when the principal logged in. Zero for anonymous.
	EstablishedAt time.Time `json:"established_at,omitempty"`
}

// NewSession creates an authenticated session for the given principal.
func NewSession(principal *Principal) Session {
	if principal == nil {
		return AnonymousSession()
	}
	return Session{
		Principal:       principal,
		IsAuthenticated: true,
		EstablishedAt:   time.Now(),
	}
}

// AnonymousSession returns the canonical signed-out session.
func AnonymousSession() Session {
	return Session{Principal: nil, IsAuthenticated: false}
}

// normalize re-establishes the Session invariant on a value of unknown
// provenance (e.g. deserialized from the durable slot).
func (s Session) normalize() Session {
	s.IsAuthenticated = s.Principal != nil
	if s.Principal != nil && !s.Principal.Role.IsValid() {
		// A persisted role outside the enum never grants elevated access.
		s.Principal.Role = sec.RoleMember
	}
	return s
}

// Role returns the session's role, or the empty role when anonymous.
func (s Session) Role() sec.Role {
	if s.Principal == nil {
		return ""
	}
	return s.Principal.Role
}

// # Field Identifiers

// Global field names for validation and identity mapping in the access domain.
const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldAccessToken = "access_token"
	FieldTokenType   = "token_type"
	FieldExpiresIn   = "expires_in"
	FieldPrincipal   = "principal"
	FieldRedirect    = "redirect"
	FieldMessage     = "message"
)
