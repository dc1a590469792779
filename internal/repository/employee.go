package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/UnknownOlympus/staffbook/internal/models"
	"github.com/spf13/afero"
)

const (
	emptyCollection = "[]\n"
	filePerm        = 0o644
)

// ErrMalformedStore is returned when the employee file is not a JSON array of employees.
var ErrMalformedStore = errors.New("malformed employee file")

// LoadEmployees reads the whole collection. A missing file is created holding an empty array,
// byte for byte what SaveEmployees writes for an empty collection.
func (r *Repository) LoadEmployees(ctx context.Context) ([]models.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}

	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.StoreIODuration.WithLabelValues("load").Observe(duration)
	}()

	exists, err := afero.Exists(r.fs, r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat employee file: %w", err)
	}

	if !exists {
		if err = afero.WriteFile(r.fs, r.path, []byte(emptyCollection), filePerm); err != nil {
			return nil, fmt.Errorf("failed to create employee file: %w", err)
		}
		r.metrics.Records.Set(0)

		return []models.Employee{}, nil
	}

	data, err := afero.ReadFile(r.fs, r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read employee file: %w", err)
	}

	var employees []models.Employee
	if err = json.Unmarshal(data, &employees); err != nil {
		return nil, fmt.Errorf("%w '%s': %w", ErrMalformedStore, r.path, err)
	}

	if employees == nil {
		employees = []models.Employee{}
	}
	r.metrics.Records.Set(float64(len(employees)))

	return employees, nil
}

// SaveEmployees overwrites the file with the indented collection.
func (r *Repository) SaveEmployees(ctx context.Context, employees []models.Employee) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to save employees: %w", err)
	}

	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.StoreIODuration.WithLabelValues("save").Observe(duration)
	}()

	if employees == nil {
		employees = []models.Employee{}
	}

	data, err := json.MarshalIndent(employees, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode employees: %w", err)
	}
	data = append(data, '\n')

	if err = afero.WriteFile(r.fs, r.path, data, filePerm); err != nil {
		return fmt.Errorf("failed to save employees: %w", err)
	}
	r.metrics.Records.Set(float64(len(employees)))

	return nil
}
