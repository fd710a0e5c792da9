// Copyright (c) 2026 ForFit. All rights reserved.
// Author: mehmetakif.git@gmail.com

package access

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/mehmetakif-git/forfit-api/internal/platform/constants"
)

// # Session Store

// Store holds and persists exactly one [Session].
//
// # Ownership
//
// The in-memory value is the source of truth for the running process;
// the durable slot is a best-effort mirror allowing the identity to survive
// restarts. A slot failure is logged and never surfaces to the caller —
// there is no operation on this type that can fail.
//
// # Single-Writer Discipline
//
// Only three call sites mutate the session: login ([Verifier.Login]),
// logout, and the denial countdown expiry. All three are whole-value
// replacements through [Store.Set] or [Store.Clear]; no field-level
// mutation exists, so no read-modify-write race is possible.
type Store struct {
	mu      sync.Mutex
	current Session
	loaded  bool

	slot   SessionSlot
	logger *slog.Logger
}

// NewStore constructs a session store backed by the given durable slot.
// Pass a nil slot to run memory-only (used by tests and local tooling).
func NewStore(slot SessionSlot, logger *slog.Logger) *Store {
	return &Store{
		current: AnonymousSession(),
		slot:    slot,
		logger:  logger,
	}
}

/*
Get returns the current session.

Description: On first call after process start it attempts to restore the
session from the durable slot. Absence, decode failure, or connectivity
failure all degrade to the anonymous session — Get never fails.

Parameters:
  - context: context.Context

Returns:
  - Session: Current session (normalized, invariant holds)
*/
func (store *Store) Get(context context.Context) Session {
	store.mu.Lock()
	defer store.mu.Unlock()

	// Cold start: hydrate from the durable slot exactly once
	if !store.loaded {
		store.loaded = true
		store.current = store.restore(context)
	}

	return store.current
}

/*
Set replaces the current session.

Description: The in-memory value is replaced first and is authoritative;
the durable write is best-effort and a failure is only logged
(persistence-write-failure policy: never roll back, never surface).

Parameters:
  - context: context.Context
  - session: Session (whole-value replacement)
*/
func (store *Store) Set(context context.Context, session Session) {
	session = session.normalize()

	store.mu.Lock()
	store.current = session
	store.loaded = true
	store.mu.Unlock()

	if store.slot == nil {
		return
	}

	if err := store.slot.Save(context, session, constants.SessionTTL); err != nil {
		store.logger.Warn("session_durable_write_failed",
			slog.Any("error", err),
		)
	}
}

/*
Clear resets the session to anonymous and removes the durable key.

Description: Equivalent to Set(AnonymousSession()) plus deletion of the
durable slot. Idempotent: clearing an already-anonymous session is a no-op
that never fails.

Parameters:
  - context: context.Context
*/
func (store *Store) Clear(context context.Context) {
	store.mu.Lock()
	store.current = AnonymousSession()
	store.loaded = true
	store.mu.Unlock()

	if store.slot == nil {
		return
	}

	if err := store.slot.Delete(context); err != nil {
		store.logger.Warn("session_durable_delete_failed",
			slog.Any("error", err),
		)
	}
}

// restore loads the persisted session, failing soft to anonymous.
// Caller must hold store.mu.
func (store *Store) restore(context context.Context) Session {
	if store.slot == nil {
		return AnonymousSession()
	}

	session, err := store.slot.Load(context)
	if err != nil {
		// Empty slot is the normal cold-start path; anything else is a
		// degraded restore worth logging.
		if !errors.Is(err, ErrSlotEmpty) {
			store.logger.Warn("session_restore_failed",
				slog.Any("error", err),
			)
		}
		return AnonymousSession()
	}

	return session.normalize()
}
