package employees

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/UnknownOlympus/staffbook/internal/lib/logger/sl"
	"github.com/UnknownOlympus/staffbook/internal/models"
	"github.com/UnknownOlympus/staffbook/internal/repository"
)

// Staff applies one command to an in-memory collection and persists the result.
// Every handler takes the collection by value and returns the collection as it
// is after the command; on error the input is returned untouched.
type Staff struct {
	log  *slog.Logger
	repo repository.EmployeeRepoIface
	out  io.Writer
}

func NewStaff(log *slog.Logger, repo repository.EmployeeRepoIface, out io.Writer) *Staff {
	return &Staff{log: log, repo: repo, out: out}
}

func (s *Staff) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "employee"),
	)
}

// Add appends a new employee built from Key:Value tokens and gives it the next free id.
func (s *Staff) Add(ctx context.Context, employees []models.Employee, args []string) ([]models.Employee, error) {
	const opn = "Employee.Add"
	log := s.initLogger(opn)

	assignments, err := ParseFields(args)
	if err != nil {
		log.DebugContext(ctx, "Rejected employee fields", sl.Err(err))
		return employees, err
	}

	employee := models.Employee{ID: NextID(employees)}
	Apply(&employee, assignments)

	updated := append(slices.Clone(employees), employee)
	if err = s.repo.SaveEmployees(ctx, updated); err != nil {
		return employees, fmt.Errorf("failed to save new employee %d: %w", employee.ID, err)
	}

	log.InfoContext(ctx, "Employee added", "id", employee.ID)
	fmt.Fprintln(s.out, "Employee added successfully")

	return updated, nil
}

// Update changes the named fields of the employee selected by the Id token.
// Id tokens are never treated as fields, so the id itself cannot change.
func (s *Staff) Update(ctx context.Context, employees []models.Employee, args []string) ([]models.Employee, error) {
	const opn = "Employee.Update"
	log := s.initLogger(opn)

	index, err := s.lookup(employees, args)
	if err != nil {
		log.DebugContext(ctx, "Employee lookup failed", sl.Err(err))
		return employees, err
	}

	assignments, err := ParseFields(withoutIDTokens(args))
	if err != nil {
		log.DebugContext(ctx, "Rejected employee fields", sl.Err(err))
		return employees, err
	}

	updated := slices.Clone(employees)
	Apply(&updated[index], assignments)

	if err = s.repo.SaveEmployees(ctx, updated); err != nil {
		return employees, fmt.Errorf("failed to update employee %d: %w", updated[index].ID, err)
	}

	log.InfoContext(ctx, "Employee updated", "id", updated[index].ID, "fields", len(assignments))
	fmt.Fprintln(s.out, "Employee updated successfully")

	return updated, nil
}

// Get prints the employee selected by the Id token.
func (s *Staff) Get(ctx context.Context, employees []models.Employee, args []string) ([]models.Employee, error) {
	const opn = "Employee.Get"
	log := s.initLogger(opn)

	index, err := s.lookup(employees, args)
	if err != nil {
		log.DebugContext(ctx, "Employee lookup failed", sl.Err(err))
		return employees, err
	}

	fmt.Fprintln(s.out, employees[index].String())

	return employees, nil
}

// Delete removes the employee selected by the Id token, keeping the order of the rest.
func (s *Staff) Delete(ctx context.Context, employees []models.Employee, args []string) ([]models.Employee, error) {
	const opn = "Employee.Delete"
	log := s.initLogger(opn)

	index, err := s.lookup(employees, args)
	if err != nil {
		log.DebugContext(ctx, "Employee lookup failed", sl.Err(err))
		return employees, err
	}

	removed := employees[index]
	updated := slices.Delete(slices.Clone(employees), index, index+1)

	if err = s.repo.SaveEmployees(ctx, updated); err != nil {
		return employees, fmt.Errorf("failed to delete employee %d: %w", removed.ID, err)
	}

	log.InfoContext(ctx, "Employee deleted", "id", removed.ID)
	fmt.Fprintln(s.out, "Employee deleted successfully")

	return updated, nil
}

// GetAll prints every employee in collection order. Arguments are ignored.
func (s *Staff) GetAll(ctx context.Context, employees []models.Employee, _ []string) ([]models.Employee, error) {
	const opn = "Employee.GetAll"
	log := s.initLogger(opn)

	for _, employee := range employees {
		fmt.Fprintln(s.out, employee.String())
	}
	log.DebugContext(ctx, "Listed employees", "count", len(employees))

	return employees, nil
}

func (s *Staff) lookup(employees []models.Employee, args []string) (int, error) {
	identifier, err := ParseID(args)
	if err != nil {
		return -1, err
	}

	index := FindEmployee(employees, identifier)
	if index < 0 {
		return -1, &NotFoundError{ID: identifier}
	}

	return index, nil
}

// FindEmployee returns the position of the employee with the given id, or -1.
func FindEmployee(employees []models.Employee, identifier int) int {
	return slices.IndexFunc(employees, func(e models.Employee) bool {
		return e.ID == identifier
	})
}

// NextID returns the largest id in the collection plus one, or 1 for an empty collection.
func NextID(employees []models.Employee) int {
	if len(employees) == 0 {
		return 1
	}

	return slices.MaxFunc(employees, func(a, b models.Employee) int {
		return cmp.Compare(a.ID, b.ID)
	}).ID + 1
}
