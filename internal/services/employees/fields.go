package employees

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/staffbook/internal/models"
	"github.com/shopspring/decimal"
)

// Field is one of the employee attributes that can be set from the command line.
type Field int

const (
	FieldFirstName Field = iota + 1
	FieldLastName
	FieldSalary
)

func (f Field) String() string {
	switch f {
	case FieldFirstName:
		return "firstname"
	case FieldLastName:
		return "lastname"
	case FieldSalary:
		return "salary"
	default:
		return "unknown"
	}
}

// Assignment is a validated Key:Value token. Salary is only meaningful for FieldSalary.
type Assignment struct {
	Field  Field
	Text   string
	Salary decimal.Decimal
}

const (
	tokenSeparator = ":"
	tokenParts     = 2
)

// digits with optional ',' grouping and an optional '.' fraction, no exponent.
var salaryPattern = regexp.MustCompile(`^[+-]?(?:\d[\d,]*(?:\.\d*)?|\.\d+)$`)

// ParseFields validates every token before returning, so callers can apply
// the result knowing nothing will be rejected halfway.
func ParseFields(tokens []string) ([]Assignment, error) {
	assignments := make([]Assignment, 0, len(tokens))

	for _, token := range tokens {
		parts := strings.Split(token, tokenSeparator)
		if len(parts) != tokenParts {
			return nil, &ArgumentError{Arg: token}
		}

		field, ok := lookupField(parts[0])
		if !ok {
			return nil, &ArgumentError{Arg: token}
		}

		assignment := Assignment{Field: field}
		switch field {
		case FieldFirstName, FieldLastName:
			assignment.Text = parts[1]
		case FieldSalary:
			salary, err := ParseSalary(parts[1])
			if err != nil {
				return nil, err
			}
			assignment.Salary = salary
		}

		assignments = append(assignments, assignment)
	}

	return assignments, nil
}

// Apply sets the assigned fields on employee in order; a later assignment of the same field wins.
func Apply(employee *models.Employee, assignments []Assignment) {
	for _, assignment := range assignments {
		switch assignment.Field {
		case FieldFirstName:
			employee.FirstName = assignment.Text
		case FieldLastName:
			employee.LastName = assignment.Text
		case FieldSalary:
			employee.SalaryPerHour = assignment.Salary
		}
	}
}

// ParseSalary parses a decimal independent of locale: '.' is the decimal point and ','
// groups thousands. Surrounding whitespace and a leading sign are accepted. The result is
// exact and keeps the scale of the input.
func ParseSalary(value string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(value)
	if !salaryPattern.MatchString(trimmed) {
		return decimal.Zero, &SalaryError{Value: value}
	}

	salary, err := decimal.NewFromString(strings.ReplaceAll(trimmed, ",", ""))
	if err != nil {
		return decimal.Zero, &SalaryError{Value: value}
	}

	return salary, nil
}

func lookupField(key string) (Field, bool) {
	switch strings.ToLower(key) {
	case "firstname":
		return FieldFirstName, true
	case "lastname":
		return FieldLastName, true
	case "salary":
		return FieldSalary, true
	default:
		return 0, false
	}
}

// ParseID returns the id carried by the first Id:<int> token.
func ParseID(tokens []string) (int, error) {
	for _, token := range tokens {
		if !isIDToken(token) {
			continue
		}

		value := strings.Split(token, tokenSeparator)[1]
		identifier, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0, &IDError{Token: token}
		}

		return identifier, nil
	}

	return 0, &IDError{}
}

func isIDToken(token string) bool {
	key, _, found := strings.Cut(token, tokenSeparator)
	return found && strings.EqualFold(key, "id")
}

func withoutIDTokens(tokens []string) []string {
	fields := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !isIDToken(token) {
			fields = append(fields, token)
		}
	}

	return fields
}
