package userstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/costdash/cost-dashboard-go/internal/domain/entity"
	"github.com/costdash/cost-dashboard-go/internal/domain/repository"
	"github.com/costdash/cost-dashboard-go/internal/shared/types"
)

// JSONRepositoryImpl implements the UserRepository over a single JSON file
// keyed by username, the same layout the original demo used.
type JSONRepositoryImpl struct {
	path string
	mu   sync.Mutex
}

// NewJSONRepository creates a UserRepository backed by the given file.
func NewJSONRepository(path string) repository.UserRepository {
	return &JSONRepositoryImpl{path: path}
}

// Get returns the stored user or ErrUserNotFound.
func (r *JSONRepositoryImpl) Get(username string) (entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return entity.User{}, err
	}
	user, ok := users[username]
	if !ok {
		return entity.User{}, types.ErrUserNotFound
	}
	user.Username = username
	return user, nil
}

// Put inserts or overwrites a user record.
func (r *JSONRepositoryImpl) Put(user entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return err
	}
	users[user.Username] = user
	return r.save(users)
}

// All returns every stored user sorted by username.
func (r *JSONRepositoryImpl) All() ([]entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(users))
	for name := range users {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]entity.User, 0, len(users))
	for _, name := range names {
		user := users[name]
		user.Username = name
		result = append(result, user)
	}
	return result, nil
}

func (r *JSONRepositoryImpl) load() (map[string]entity.User, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return map[string]entity.User{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading user store: %w", err)
	}

	users := map[string]entity.User{}
	if len(data) == 0 {
		return users, nil
	}
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("error parsing user store: %w", err)
	}
	return users, nil
}

func (r *JSONRepositoryImpl) save(users map[string]entity.User) error {
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating user store directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding user store: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("error writing user store: %w", err)
	}
	return nil
}
