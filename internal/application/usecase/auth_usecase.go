package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/costdash/cost-dashboard-go/internal/domain/entity"
	"github.com/costdash/cost-dashboard-go/internal/domain/repository"
	"github.com/costdash/cost-dashboard-go/internal/shared/types"
)

// AuthUseCase wraps the demo login flow: password-digest checks against the
// user store and opaque in-memory session tokens. This is a demonstration
// surface, not a security boundary.
type AuthUseCase struct {
	userRepo repository.UserRepository

	mu       sync.RWMutex
	sessions map[string]string // token -> username
}

// NewAuthUseCase creates a new auth use case.
func NewAuthUseCase(userRepo repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		sessions: make(map[string]string),
	}
}

// HashPassword returns the hex-encoded SHA-256 digest of the password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// SeedDefaultUsers creates the demo accounts when the store is empty.
func (uc *AuthUseCase) SeedDefaultUsers() error {
	existing, err := uc.userRepo.All()
	if err != nil {
		return fmt.Errorf("error reading user store: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	defaults := []entity.User{
		{
			Username:     "admin",
			PasswordHash: HashPassword("admin123"),
			Email:        "admin@example.com",
			FullName:     "Administrator",
			Department:   "IT",
			Role:         "Admin",
			CreatedAt:    time.Now(),
		},
		{
			Username:     "user",
			PasswordHash: HashPassword("user123"),
			Email:        "user@example.com",
			FullName:     "John Doe",
			Department:   "Finance",
			Role:         "Analyst",
			CreatedAt:    time.Now(),
		},
	}
	for _, u := range defaults {
		if err := uc.userRepo.Put(u); err != nil {
			return fmt.Errorf("error seeding user %s: %w", u.Username, err)
		}
	}
	return nil
}

// Login checks the credentials and returns a fresh session token.
func (uc *AuthUseCase) Login(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", types.ErrInvalidCredentials
	}

	user, err := uc.userRepo.Get(username)
	if err != nil {
		if errors.Is(err, types.ErrUserNotFound) {
			return "", types.ErrInvalidCredentials
		}
		return "", err
	}
	if user.PasswordHash != HashPassword(password) {
		return "", types.ErrInvalidCredentials
	}

	token := uuid.NewString()
	uc.mu.Lock()
	uc.sessions[token] = username
	uc.mu.Unlock()

	return token, nil
}

// Logout invalidates the session token. Unknown tokens are a no-op.
func (uc *AuthUseCase) Logout(token string) {
	uc.mu.Lock()
	delete(uc.sessions, token)
	uc.mu.Unlock()
}

// Authenticate resolves a session token to a username.
func (uc *AuthUseCase) Authenticate(token string) (string, bool) {
	uc.mu.RLock()
	username, ok := uc.sessions[token]
	uc.mu.RUnlock()
	return username, ok
}

// Profile returns the editable account fields for a user.
func (uc *AuthUseCase) Profile(username string) (entity.Profile, error) {
	user, err := uc.userRepo.Get(username)
	if err != nil {
		return entity.Profile{}, err
	}
	return entity.Profile{
		FullName:   user.FullName,
		Email:      user.Email,
		Department: user.Department,
		Role:       user.Role,
	}, nil
}

// UpdateProfile overwrites the non-empty profile fields and persists the
// user. Empty fields keep their stored values, matching the original form
// behavior.
func (uc *AuthUseCase) UpdateProfile(username string, profile entity.Profile) error {
	user, err := uc.userRepo.Get(username)
	if err != nil {
		return err
	}

	if profile.FullName != "" {
		user.FullName = profile.FullName
	}
	if profile.Email != "" {
		user.Email = profile.Email
	}
	if profile.Department != "" {
		user.Department = profile.Department
	}
	if profile.Role != "" {
		user.Role = profile.Role
	}

	return uc.userRepo.Put(user)
}
