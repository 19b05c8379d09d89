package usecase

import (
	"path/filepath"
	"testing"

	"github.com/costdash/cost-dashboard-go/internal/adapter/driven/userstore"
	"github.com/costdash/cost-dashboard-go/internal/domain/entity"
	"github.com/costdash/cost-dashboard-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthUseCase(t *testing.T) *AuthUseCase {
	t.Helper()
	repo := userstore.NewJSONRepository(filepath.Join(t.TempDir(), "users.json"))
	uc := NewAuthUseCase(repo)
	require.NoError(t, uc.SeedDefaultUsers())
	return uc
}

func TestHashPassword(t *testing.T) {
	// SHA-256 of "admin123", matching any store written by an older build.
	assert.Equal(t,
		"240be518fabd2724ddb6f04eeb1da5967448d7e831c08c8fa822809f74c720a9",
		HashPassword("admin123"))
}

func TestLoginAndAuthenticate(t *testing.T) {
	uc := newAuthUseCase(t)

	token, err := uc.Login("admin", "admin123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, ok := uc.Authenticate(token)
	assert.True(t, ok)
	assert.Equal(t, "admin", username)

	// Two logins issue distinct tokens.
	second, err := uc.Login("admin", "admin123")
	require.NoError(t, err)
	assert.NotEqual(t, token, second)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	uc := newAuthUseCase(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "wrong"},
		{"unknown user", "nobody", "admin123"},
		{"empty username", "", "admin123"},
		{"empty password", "admin", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Login(tt.username, tt.password)
			assert.ErrorIs(t, err, types.ErrInvalidCredentials)
		})
	}
}

func TestLogoutInvalidatesToken(t *testing.T) {
	uc := newAuthUseCase(t)

	token, err := uc.Login("user", "user123")
	require.NoError(t, err)

	uc.Logout(token)
	_, ok := uc.Authenticate(token)
	assert.False(t, ok)

	// Unknown token is a no-op.
	uc.Logout("no-such-token")
}

func TestSeedDefaultUsersIsIdempotent(t *testing.T) {
	repo := userstore.NewJSONRepository(filepath.Join(t.TempDir(), "users.json"))
	uc := NewAuthUseCase(repo)
	require.NoError(t, uc.SeedDefaultUsers())

	require.NoError(t, uc.UpdateProfile("admin", entity.Profile{Department: "Platform"}))

	// A second seed must not reset the edited store.
	require.NoError(t, uc.SeedDefaultUsers())
	profile, err := uc.Profile("admin")
	require.NoError(t, err)
	assert.Equal(t, "Platform", profile.Department)
}

func TestUpdateProfileKeepsEmptyFields(t *testing.T) {
	uc := newAuthUseCase(t)

	before, err := uc.Profile("user")
	require.NoError(t, err)

	require.NoError(t, uc.UpdateProfile("user", entity.Profile{Email: "jd@example.com"}))

	after, err := uc.Profile("user")
	require.NoError(t, err)
	assert.Equal(t, "jd@example.com", after.Email)
	assert.Equal(t, before.FullName, after.FullName)
	assert.Equal(t, before.Department, after.Department)

	err = uc.UpdateProfile("nobody", entity.Profile{Email: "x@example.com"})
	assert.ErrorIs(t, err, types.ErrUserNotFound)
}
