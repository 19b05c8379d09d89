package repository

import (
	"github.com/costdash/cost-dashboard-go/internal/domain/entity"
)

// UserRepository defines the interface for the demo user store.
type UserRepository interface {
	Get(username string) (entity.User, error)
	Put(user entity.User) error
	All() ([]entity.User, error)
}
