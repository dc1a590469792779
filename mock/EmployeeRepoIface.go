package mocks

import (
	"context"

	"github.com/UnknownOlympus/staffbook/internal/models"
	"github.com/stretchr/testify/mock"
)

// EmployeeRepoIface is a testify mock of repository.EmployeeRepoIface.
type EmployeeRepoIface struct {
	mock.Mock
}

// LoadEmployees provides a mock function with given fields: ctx.
func (_m *EmployeeRepoIface) LoadEmployees(ctx context.Context) ([]models.Employee, error) {
	ret := _m.Called(ctx)

	var employees []models.Employee
	if rf, ok := ret.Get(0).(func(context.Context) []models.Employee); ok {
		employees = rf(ctx)
	} else if ret.Get(0) != nil {
		employees = ret.Get(0).([]models.Employee)
	}

	return employees, ret.Error(1)
}

// SaveEmployees provides a mock function with given fields: ctx, employees.
func (_m *EmployeeRepoIface) SaveEmployees(ctx context.Context, employees []models.Employee) error {
	ret := _m.Called(ctx, employees)

	if rf, ok := ret.Get(0).(func(context.Context, []models.Employee) error); ok {
		return rf(ctx, employees)
	}

	return ret.Error(0)
}

// NewEmployeeRepoIface creates a new instance of EmployeeRepoIface and registers
// an expectations check on test cleanup.
func NewEmployeeRepoIface(t interface {
	mock.TestingT
	Cleanup(func())
}) *EmployeeRepoIface {
	m := &EmployeeRepoIface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
