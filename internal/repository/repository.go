package repository

import (
	"context"

	"github.com/UnknownOlympus/staffbook/internal/metrics"
	"github.com/UnknownOlympus/staffbook/internal/models"
	"github.com/spf13/afero"
)

type Repository struct {
	fs      afero.Fs
	path    string
	metrics *metrics.Metrics
}

// EmployeeRepoIface represents the interface for reading and writing the whole employee collection.
type EmployeeRepoIface interface {
	LoadEmployees(ctx context.Context) ([]models.Employee, error)
	SaveEmployees(ctx context.Context, employees []models.Employee) error
}

// NewEmployeeRepository returns a repository keeping the collection as a JSON array in path on fs.
func NewEmployeeRepository(fs afero.Fs, path string, metrics *metrics.Metrics) EmployeeRepoIface {
	return &Repository{fs: fs, path: path, metrics: metrics}
}
