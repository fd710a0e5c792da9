// Copyright (c) 2026 ForFit. All rights reserved.
// Author: mehmetakif.git@gmail.com

package access

import (
	"context"
	"errors"
	"time"
)

// ErrSlotEmpty is returned by [SessionSlot.Load] when no session has been
// persisted. It is an expected cold-start condition, not a failure.
var ErrSlotEmpty = errors.New("access: session slot is empty")

// # Session Persistence

// SessionSlot is the durable key-value slot that mirrors the in-memory
// session across process restarts and dashboard reloads.
//
// Implementations must treat all three operations as best-effort from the
// caller's perspective: the [Store] logs failures and keeps the in-memory
// value authoritative.
type SessionSlot interface {

	/*
		Load reads the persisted session.

		Parameters:
		  - context: context.Context

		Returns:
		  - Session: The persisted value
		  - error: ErrSlotEmpty when nothing is stored; decode or
		    connectivity failures otherwise
	*/
	Load(context context.Context) (Session, error)

	/*
		Save overwrites the persisted session.

		Parameters:
		  - context: context.Context
		  - session: Session
		  - ttl: time.Duration

		Returns:
		  - error: Persistence failures
	*/
	Save(context context.Context, session Session, ttl time.Duration) error

	/*
		Delete removes the persisted session.

		Parameters:
		  - context: context.Context

		Returns:
		  - error: Persistence failures
	*/
	Delete(context context.Context) error
}

// # Member Directory

// DirectoryRecord is the minimal read model the verifier needs from the
// member directory. It deliberately excludes profile fields the login flow
// has no business reading.
type DirectoryRecord struct {
	ID           string
	Email        string
	PasswordHash string
	DisplayName  string
	Role         string
}

// DirectoryStore is the external record store consulted when credentials do
// not match the compiled-in demo table.
type DirectoryStore interface {

	/*
		FindByEmail returns the directory record with the given email.

		Parameters:
		  - context: context.Context
		  - email: string (exact, case-sensitive match)

		Returns:
		  - *DirectoryRecord: Hydrated record
		  - error: apperr.NotFound or connectivity failures
	*/
	FindByEmail(context context.Context, email string) (*DirectoryRecord, error)

	/*
		TouchLastSeen stamps the record's last-seen timestamp.

		Best-effort side effect of a successful directory login; a failure
		must never fail the login itself.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: Persistence failures
	*/
	TouchLastSeen(context context.Context, id string) error
}
