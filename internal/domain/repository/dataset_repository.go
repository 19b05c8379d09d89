package repository

import (
	"github.com/costdash/cost-dashboard-go/internal/domain/entity"
)

// DatasetRepository defines the interface for loading the cost-record table.
// The dataset is loaded once at startup and treated as immutable afterwards.
type DatasetRepository interface {
	Load(path string) (*entity.Dataset, error)
	Generate(organization string) *entity.Dataset
}
