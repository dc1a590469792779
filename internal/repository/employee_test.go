package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Flaque/filet"
	"github.com/UnknownOlympus/staffbook/internal/metrics"
	"github.com/UnknownOlympus/staffbook/internal/models"
	"github.com/UnknownOlympus/staffbook/internal/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storePath = "employees.json"

const seededStore = `[
  {
    "Id": 1,
    "FirstName": "Alice",
    "LastName": "Smith",
    "SalaryPerHour": 50
  },
  {
    "Id": 2,
    "FirstName": "Bob",
    "LastName": "Johnson",
    "SalaryPerHour": 60
  }
]
`

func seededEmployees() []models.Employee {
	return []models.Employee{
		{ID: 1, FirstName: "Alice", LastName: "Smith", SalaryPerHour: decimal.RequireFromString("50")},
		{ID: 2, FirstName: "Bob", LastName: "Johnson", SalaryPerHour: decimal.RequireFromString("60")},
	}
}

func newTestMetrics() *metrics.Metrics {
	return metrics.NewMetrics(prometheus.NewRegistry())
}

func TestLoadEmployees_CreatesMissingFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	repo := repository.NewEmployeeRepository(fs, storePath, newTestMetrics())

	employees, err := repo.LoadEmployees(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, employees)
	assert.Empty(t, employees)

	content, err := afero.ReadFile(fs, storePath)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(content))
}

func TestLoadEmployees_CreatedStoreMatchesSavedEmpty(t *testing.T) {
	t.Parallel()

	created := afero.NewMemMapFs()
	_, err := repository.NewEmployeeRepository(created, storePath, newTestMetrics()).LoadEmployees(context.Background())
	require.NoError(t, err)

	saved := afero.NewMemMapFs()
	err = repository.NewEmployeeRepository(saved, storePath, newTestMetrics()).SaveEmployees(
		context.Background(), []models.Employee{})
	require.NoError(t, err)

	createdContent, err := afero.ReadFile(created, storePath)
	require.NoError(t, err)
	savedContent, err := afero.ReadFile(saved, storePath)
	require.NoError(t, err)
	assert.Equal(t, savedContent, createdContent)
}

func TestLoadEmployees_Success(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, storePath, []byte(seededStore), 0o644))
	testMetrics := newTestMetrics()
	repo := repository.NewEmployeeRepository(fs, storePath, testMetrics)

	employees, err := repo.LoadEmployees(context.Background())

	require.NoError(t, err)
	assert.Equal(t, seededEmployees(), employees)
	assert.InDelta(t, 2, testutil.ToFloat64(testMetrics.Records), 0)
}

func TestLoadEmployees_NullIsEmpty(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, storePath, []byte("null"), 0o644))
	repo := repository.NewEmployeeRepository(fs, storePath, newTestMetrics())

	employees, err := repo.LoadEmployees(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, employees)
	assert.Empty(t, employees)
}

func TestLoadEmployees_Malformed(t *testing.T) {
	t.Parallel()

	for name, content := range map[string]string{
		"empty file":   "",
		"not an array": `{"Id": 1}`,
		"broken json":  `[{"Id": 1,`,
		"wrong type":   `[{"Id": "one"}]`,
		"bad salary":   `[{"Id": 1, "SalaryPerHour": "lots"}]`,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, storePath, []byte(content), 0o644))
			repo := repository.NewEmployeeRepository(fs, storePath, newTestMetrics())

			employees, err := repo.LoadEmployees(context.Background())

			require.ErrorIs(t, err, repository.ErrMalformedStore)
			assert.Nil(t, employees)
		})
	}
}

func TestLoadEmployees_CancelledContext(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	repo := repository.NewEmployeeRepository(fs, storePath, newTestMetrics())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.LoadEmployees(ctx)

	require.ErrorIs(t, err, context.Canceled)
	exists, statErr := afero.Exists(fs, storePath)
	require.NoError(t, statErr)
	assert.False(t, exists, "file must not be created for a cancelled load")
}

func TestSaveEmployees_WritesIndentedArray(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	repo := repository.NewEmployeeRepository(fs, storePath, newTestMetrics())

	err := repo.SaveEmployees(context.Background(), seededEmployees())

	require.NoError(t, err)
	content, err := afero.ReadFile(fs, storePath)
	require.NoError(t, err)
	assert.Equal(t, seededStore, string(content))
}

func TestSaveEmployees_NilIsEmptyArray(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	repo := repository.NewEmployeeRepository(fs, storePath, newTestMetrics())

	require.NoError(t, repo.SaveEmployees(context.Background(), nil))

	content, err := afero.ReadFile(fs, storePath)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(content))
}

func TestSaveEmployees_WriteError(t *testing.T) {
	t.Parallel()

	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	repo := repository.NewEmployeeRepository(fs, storePath, newTestMetrics())

	err := repo.SaveEmployees(context.Background(), seededEmployees())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save employees")
}

func TestSaveThenLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	expected := []models.Employee{
		{ID: 4, FirstName: "Zoe", LastName: "Quinn", SalaryPerHour: decimal.RequireFromString("12.75")},
		{ID: 2, FirstName: "Bob", LastName: "Johnson", SalaryPerHour: decimal.RequireFromString("60")},
		{ID: 9, FirstName: "", LastName: "", SalaryPerHour: decimal.RequireFromString("-3.5")},
	}

	fs := afero.NewMemMapFs()
	repo := repository.NewEmployeeRepository(fs, storePath, newTestMetrics())

	require.NoError(t, repo.SaveEmployees(context.Background(), expected))
	actual, err := repo.LoadEmployees(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, actual)
}

func TestSaveThenLoad_ExactSalary(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	repo := repository.NewEmployeeRepository(fs, storePath, newTestMetrics())

	err := repo.SaveEmployees(context.Background(), []models.Employee{
		{ID: 1, FirstName: "Rich", SalaryPerHour: decimal.RequireFromString("12345678901234567.89")},
		{ID: 2, FirstName: "Even", SalaryPerHour: decimal.RequireFromString("100.50")},
	})
	require.NoError(t, err)

	content, err := afero.ReadFile(fs, storePath)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"SalaryPerHour": 12345678901234567.89`)
	assert.Contains(t, string(content), `"SalaryPerHour": 100.50`)

	employees, err := repo.LoadEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "12345678901234567.89", models.FormatSalary(employees[0].SalaryPerHour))
	assert.Equal(t, "100.50", models.FormatSalary(employees[1].SalaryPerHour))
}

func TestRepository_OnDisk(t *testing.T) {
	defer filet.CleanUp(t)

	dir := filet.TmpDir(t, "")
	path := filepath.Join(dir, storePath)
	filet.File(t, path, seededStore)

	repo := repository.NewEmployeeRepository(afero.NewOsFs(), path, newTestMetrics())

	employees, err := repo.LoadEmployees(context.Background())
	require.NoError(t, err)
	assert.Equal(t, seededEmployees(), employees)

	require.NoError(t, repo.SaveEmployees(context.Background(), employees[1:]))
	assert.True(t, filet.Exists(t, path))

	reloaded, err := repo.LoadEmployees(context.Background())
	require.NoError(t, err)
	assert.Equal(t, seededEmployees()[1:], reloaded)
}
