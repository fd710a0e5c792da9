// Copyright (c) 2026 ForFit. All rights reserved.
// Author: mehmetakif.git@gmail.com

package access_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehmetakif-git/forfit-api/internal/access"
	"github.com/mehmetakif-git/forfit-api/internal/platform/sec"
)

// fakeDirectory is an in-memory DirectoryStore keyed by email.
type fakeDirectory struct {
	records map[string]*access.DirectoryRecord
	err     error

	lookups     int
	touchCalls  int
	touchFailed error
}

func (directory *fakeDirectory) FindByEmail(ctx context.Context, email string) (*access.DirectoryRecord, error) {
	directory.lookups++
	if directory.err != nil {
		return nil, directory.err
	}
	record, ok := directory.records[email]
	if !ok {
		return nil, errors.New("no rows")
	}
	return record, nil
}

func (directory *fakeDirectory) TouchLastSeen(ctx context.Context, id string) error {
	directory.touchCalls++
	return directory.touchFailed
}

// fakeTokens returns a fixed token string.
type fakeTokens struct {
	err error
}

func (tokens *fakeTokens) GenerateAccessToken(principalID, email, displayName string, role sec.Role, ttl time.Duration) (string, error) {
	if tokens.err != nil {
		return "", tokens.err
	}
	return "signed-token-for-" + principalID, nil
}

func newTestVerifier(t *testing.T, directory *fakeDirectory, demoEnabled bool) (*access.Verifier, *access.Store) {
	t.Helper()
	sessions := access.NewStore(nil, discardLogger())
	verifier := access.NewVerifier(directory, sessions, &fakeTokens{}, discardLogger(), demoEnabled)
	return verifier, sessions
}

/*
TestVerifier_DemoLogin verifies each built-in demo account resolves to its
fixed role.
*/
func TestVerifier_DemoLogin(t *testing.T) {
	tests := []struct {
		email    string
		password string
		role     sec.Role
	}{
		{"admin@forfit.qa", "admin123", sec.RoleAdmin},
		{"staff@forfit.qa", "staff123", sec.RoleStaff},
		{"trainer@forfit.qa", "trainer123", sec.RoleTrainer},
		{"member@forfit.qa", "member123", sec.RoleMember},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			directory := &fakeDirectory{}
			verifier, sessions := newTestVerifier(t, directory, true)

			result, err := verifier.Login(context.Background(), access.LoginInput{
				Email:    tt.email,
				Password: tt.password,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.role, result.Principal.Role)
			assert.NotEmpty(t, result.AccessToken)

			// Demo logins never consult the directory
			assert.Zero(t, directory.lookups)

			// The session is established as a side effect
			session := sessions.Get(context.Background())
			require.True(t, session.IsAuthenticated)
			assert.Equal(t, tt.email, session.Principal.Email)
		})
	}
}

/*
TestVerifier_DemoEmailOwnsOutcome verifies a wrong password on a demo email
fails outright instead of falling through to the directory.
*/
func TestVerifier_DemoEmailOwnsOutcome(t *testing.T) {
	hash, err := sec.HashPassword("super-secret")
	require.NoError(t, err)

	// A directory record squatting on the demo email must never win.
	directory := &fakeDirectory{records: map[string]*access.DirectoryRecord{
		"admin@forfit.qa": {
			ID:           "directory-1",
			Email:        "admin@forfit.qa",
			PasswordHash: hash,
			Role:         "admin",
		},
	}}
	verifier, sessions := newTestVerifier(t, directory, true)

	_, err = verifier.Login(context.Background(), access.LoginInput{
		Email:    "admin@forfit.qa",
		Password: "super-secret",
	})
	assert.ErrorIs(t, err, access.ErrAuthentication)
	assert.Zero(t, directory.lookups)
	assert.False(t, sessions.Get(context.Background()).IsAuthenticated)
}

/*
TestVerifier_DirectoryLogin verifies the bcrypt-backed directory path,
including the role degradation rule and the best-effort last-seen stamp.
*/
func TestVerifier_DirectoryLogin(t *testing.T) {
	hash, err := sec.HashPassword("correct horse")
	require.NoError(t, err)

	tests := []struct {
		name       string
		storedRole string
		wantRole   sec.Role
	}{
		{"staff_role", "staff", sec.RoleStaff},
		{"unknown_role_degrades", "superuser", sec.RoleMember},
		{"empty_role_degrades", "", sec.RoleMember},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			directory := &fakeDirectory{records: map[string]*access.DirectoryRecord{
				"jo@forfit.qa": {
					ID:           "m-1",
					Email:        "jo@forfit.qa",
					PasswordHash: hash,
					DisplayName:  "Jo",
					Role:         tt.storedRole,
				},
			}}
			verifier, _ := newTestVerifier(t, directory, true)

			result, err := verifier.Login(context.Background(), access.LoginInput{
				Email:    "jo@forfit.qa",
				Password: "correct horse",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, result.Principal.Role)
			assert.Equal(t, 1, directory.touchCalls)
		})
	}
}

/*
TestVerifier_FailsClosed verifies every failure mode collapses into the one
generic authentication error.
*/
func TestVerifier_FailsClosed(t *testing.T) {
	hash, err := sec.HashPassword("right")
	require.NoError(t, err)

	tests := []struct {
		name      string
		directory *fakeDirectory
		email     string
		password  string
	}{
		{
			"unknown_email",
			&fakeDirectory{records: map[string]*access.DirectoryRecord{}},
			"ghost@forfit.qa", "whatever",
		},
		{
			"wrong_password",
			&fakeDirectory{records: map[string]*access.DirectoryRecord{
				"jo@forfit.qa": {ID: "m-1", Email: "jo@forfit.qa", PasswordHash: hash, Role: "member"},
			}},
			"jo@forfit.qa", "wrong",
		},
		{
			"directory_unreachable",
			&fakeDirectory{err: errors.New("dial tcp: connection refused")},
			"jo@forfit.qa", "right",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier, sessions := newTestVerifier(t, tt.directory, true)

			_, err := verifier.Login(context.Background(), access.LoginInput{
				Email:    tt.email,
				Password: tt.password,
			})
			assert.ErrorIs(t, err, access.ErrAuthentication)
			assert.False(t, sessions.Get(context.Background()).IsAuthenticated)
		})
	}
}

/*
TestVerifier_DemoDisabled verifies the demo table is skipped entirely when
switched off by configuration.
*/
func TestVerifier_DemoDisabled(t *testing.T) {
	directory := &fakeDirectory{records: map[string]*access.DirectoryRecord{}}
	verifier, _ := newTestVerifier(t, directory, false)

	_, err := verifier.Login(context.Background(), access.LoginInput{
		Email:    "admin@forfit.qa",
		Password: "admin123",
	})
	assert.ErrorIs(t, err, access.ErrAuthentication)
	assert.Equal(t, 1, directory.lookups)
}

/*
TestVerifier_TouchFailureNeverFailsLogin verifies the last-seen stamp is a
best-effort side effect.
*/
func TestVerifier_TouchFailureNeverFailsLogin(t *testing.T) {
	hash, err := sec.HashPassword("pw-eight-chars")
	require.NoError(t, err)

	directory := &fakeDirectory{
		records: map[string]*access.DirectoryRecord{
			"jo@forfit.qa": {ID: "m-1", Email: "jo@forfit.qa", PasswordHash: hash, Role: "staff"},
		},
		touchFailed: errors.New("update timeout"),
	}
	verifier, _ := newTestVerifier(t, directory, true)

	result, err := verifier.Login(context.Background(), access.LoginInput{
		Email:    "jo@forfit.qa",
		Password: "pw-eight-chars",
	})
	require.NoError(t, err)
	assert.Equal(t, sec.RoleStaff, result.Principal.Role)
}

/*
TestVerifier_LogoutIdempotent verifies repeated logouts succeed and always
return the same redirect target.
*/
func TestVerifier_LogoutIdempotent(t *testing.T) {
	verifier, sessions := newTestVerifier(t, &fakeDirectory{}, true)

	_, err := verifier.Login(context.Background(), access.LoginInput{
		Email:    "member@forfit.qa",
		Password: "member123",
	})
	require.NoError(t, err)

	first := verifier.Logout(context.Background())
	second := verifier.Logout(context.Background())

	assert.Equal(t, first, second)
	assert.False(t, sessions.Get(context.Background()).IsAuthenticated)
}
