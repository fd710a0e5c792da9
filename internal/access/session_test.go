// Copyright (c) 2026 ForFit. All rights reserved.
// Author: mehmetakif.git@gmail.com

package access_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehmetakif-git/forfit-api/internal/access"
	"github.com/mehmetakif-git/forfit-api/internal/platform/sec"
)

// fakeSlot is an in-memory SessionSlot with injectable failures.
type fakeSlot struct {
	session   access.Session
	stored    bool
	loadErr   error
	saveErr   error
	deleteErr error

	saveCalls   int
	deleteCalls int
}

func (slot *fakeSlot) Load(ctx context.Context) (access.Session, error) {
	if slot.loadErr != nil {
		return access.AnonymousSession(), slot.loadErr
	}
	if !slot.stored {
		return access.AnonymousSession(), access.ErrSlotEmpty
	}
	return slot.session, nil
}

func (slot *fakeSlot) Save(ctx context.Context, session access.Session, ttl time.Duration) error {
	slot.saveCalls++
	if slot.saveErr != nil {
		return slot.saveErr
	}
	slot.session = session
	slot.stored = true
	return nil
}

func (slot *fakeSlot) Delete(ctx context.Context) error {
	slot.deleteCalls++
	if slot.deleteErr != nil {
		return slot.deleteErr
	}
	slot.stored = false
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testPrincipal(role sec.Role) *access.Principal {
	return &access.Principal{
		ID:          "0192f5d8-0000-7000-8000-000000000001",
		Email:       "someone@forfit.qa",
		DisplayName: "Someone",
		Role:        role,
	}
}

/*
TestStore_GetRestoresOnce verifies cold-start hydration from the durable slot.
*/
func TestStore_GetRestoresOnce(t *testing.T) {
	slot := &fakeSlot{
		session: access.NewSession(testPrincipal(sec.RoleStaff)),
		stored:  true,
	}
	store := access.NewStore(slot, discardLogger())

	session := store.Get(context.Background())
	require.True(t, session.IsAuthenticated)
	require.NotNil(t, session.Principal)
	assert.Equal(t, sec.RoleStaff, session.Principal.Role)

	// Slot contents become irrelevant after the first restore
	slot.stored = false
	session = store.Get(context.Background())
	assert.True(t, session.IsAuthenticated)
}

/*
TestStore_GetFailsSoft verifies every restore failure degrades to anonymous.
*/
func TestStore_GetFailsSoft(t *testing.T) {
	tests := []struct {
		name string
		slot *fakeSlot
	}{
		{"empty_slot", &fakeSlot{}},
		{"connectivity_failure", &fakeSlot{loadErr: errors.New("connection refused")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := access.NewStore(tt.slot, discardLogger())

			session := store.Get(context.Background())
			assert.False(t, session.IsAuthenticated)
			assert.Nil(t, session.Principal)
		})
	}
}

/*
TestStore_SessionInvariant verifies IsAuthenticated always tracks Principal,
even when the stored value was corrupted.
*/
func TestStore_SessionInvariant(t *testing.T) {
	corrupted := access.Session{Principal: nil, IsAuthenticated: true}
	slot := &fakeSlot{session: corrupted, stored: true}
	store := access.NewStore(slot, discardLogger())

	session := store.Get(context.Background())
	assert.False(t, session.IsAuthenticated)
	assert.Nil(t, session.Principal)

	// The same normalization applies on writes
	store.Set(context.Background(), access.Session{Principal: testPrincipal(sec.RoleMember)})
	session = store.Get(context.Background())
	assert.True(t, session.IsAuthenticated)
}

/*
TestStore_SetSurvivesSlotFailure verifies the in-memory value stays
authoritative when the durable write fails.
*/
func TestStore_SetSurvivesSlotFailure(t *testing.T) {
	slot := &fakeSlot{saveErr: errors.New("write timeout")}
	store := access.NewStore(slot, discardLogger())

	store.Set(context.Background(), access.NewSession(testPrincipal(sec.RoleAdmin)))

	session := store.Get(context.Background())
	require.True(t, session.IsAuthenticated)
	assert.Equal(t, sec.RoleAdmin, session.Principal.Role)
	assert.Equal(t, 1, slot.saveCalls)
}

/*
TestStore_ClearIdempotent verifies clearing an already-anonymous session is a
harmless no-op, including when the durable delete fails.
*/
func TestStore_ClearIdempotent(t *testing.T) {
	slot := &fakeSlot{}
	store := access.NewStore(slot, discardLogger())

	store.Set(context.Background(), access.NewSession(testPrincipal(sec.RoleMember)))
	store.Clear(context.Background())
	store.Clear(context.Background())

	session := store.Get(context.Background())
	assert.False(t, session.IsAuthenticated)
	assert.Equal(t, 2, slot.deleteCalls)

	// Delete failure is swallowed
	slot.deleteErr = errors.New("connection reset")
	store.Clear(context.Background())
	assert.False(t, store.Get(context.Background()).IsAuthenticated)
}

/*
TestStore_MemoryOnly verifies the nil-slot configuration used by tooling.
*/
func TestStore_MemoryOnly(t *testing.T) {
	store := access.NewStore(nil, discardLogger())

	assert.False(t, store.Get(context.Background()).IsAuthenticated)

	store.Set(context.Background(), access.NewSession(testPrincipal(sec.RoleTrainer)))
	assert.True(t, store.Get(context.Background()).IsAuthenticated)

	store.Clear(context.Background())
	assert.False(t, store.Get(context.Background()).IsAuthenticated)
}
