package models

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Employee represents an employee entity.
type Employee struct {
	ID            int             `json:"Id"`
	FirstName     string          `json:"FirstName"`
	LastName      string          `json:"LastName"`
	SalaryPerHour decimal.Decimal `json:"SalaryPerHour"`
}

// employeeJSON is the on-disk shape. The salary is a bare JSON number carrying the scale it was typed with.
type employeeJSON struct {
	ID            int         `json:"Id"`
	FirstName     string      `json:"FirstName"`
	LastName      string      `json:"LastName"`
	SalaryPerHour json.Number `json:"SalaryPerHour"`
}

// MarshalJSON writes the salary as a number, not as the quoted string decimal uses by default.
func (e Employee) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(employeeJSON{
		ID:            e.ID,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		SalaryPerHour: json.Number(FormatSalary(e.SalaryPerHour)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode employee %d: %w", e.ID, err)
	}

	return data, nil
}

// String renders the employee the way the CLI prints it.
func (e Employee) String() string {
	return fmt.Sprintf("Id = %d, FirstName = %s, LastName = %s, SalaryPerHour = %s",
		e.ID, e.FirstName, e.LastName, FormatSalary(e.SalaryPerHour))
}

// FormatSalary keeps trailing fractional zeros, so 100.50 stays 100.50.
func FormatSalary(salary decimal.Decimal) string {
	if exp := salary.Exponent(); exp < 0 {
		return salary.StringFixed(-exp)
	}

	return salary.String()
}
