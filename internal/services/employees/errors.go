package employees

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument format")
	ErrInvalidSalary   = errors.New("invalid salary format")
	ErrInvalidID       = errors.New("invalid or missing id")
	ErrNotFound        = errors.New("employee not found")
)

// UserError is implemented by errors that reject a command because of what was typed.
// UserMessage is printed to the terminal as is.
type UserError interface {
	error
	UserMessage() string
}

// ArgumentError reports a token that is not a recognised Key:Value pair.
type ArgumentError struct {
	Arg string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidArgument, e.Arg)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func (e *ArgumentError) UserMessage() string {
	return "Invalid argument format: " + e.Arg
}

// SalaryError reports a salary value that is not a plain decimal number.
type SalaryError struct {
	Value string
}

func (e *SalaryError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidSalary, e.Value)
}

func (e *SalaryError) Unwrap() error {
	return ErrInvalidSalary
}

func (e *SalaryError) UserMessage() string {
	return "Invalid salary format: " + e.Value
}

// IDError reports a missing Id token or one that does not hold an integer.
type IDError struct {
	Token string
}

func (e *IDError) Error() string {
	if e.Token == "" {
		return ErrInvalidID.Error()
	}

	return fmt.Sprintf("%s: %q", ErrInvalidID, e.Token)
}

func (e *IDError) Unwrap() error {
	return ErrInvalidID
}

func (e *IDError) UserMessage() string {
	return "Invalid or missing Id"
}

// NotFoundError reports an id that no employee in the collection carries.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: id %d", ErrNotFound, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func (e *NotFoundError) UserMessage() string {
	return fmt.Sprintf("Employee with Id %d not found", e.ID)
}
