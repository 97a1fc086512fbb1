// Package validation holds the rules the project form enforces before a
// project reaches the store. The store itself never validates.
package validation

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Field names as shown to the user
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPeople      = "people"
)

// Limits on form input
const (
	DescriptionMinLength = 10
	DescriptionMaxLength = 200
	PeopleMin            = 1
	PeopleMax            = 10
)

// ProjectInput is form input that passed every rule, already trimmed
type ProjectInput struct {
	Title       string
	Description string
	People      int
}

// Rule checks a single field value
type Rule func(field, value string) error

// Required rejects blank values
func Required() Rule {
	return func(field, value string) error {
		if strings.TrimSpace(value) == "" {
			return &FieldError{Field: field, Err: ErrRequired}
		}
		return nil
	}
}

// MinLength rejects trimmed values shorter than n characters
func MinLength(n int) Rule {
	return func(field, value string) error {
		if utf8.RuneCountInString(strings.TrimSpace(value)) < n {
			return &FieldError{Field: field, Err: ErrTooShort, Limit: n}
		}
		return nil
	}
}

// MaxLength rejects trimmed values longer than n characters
func MaxLength(n int) Rule {
	return func(field, value string) error {
		if utf8.RuneCountInString(strings.TrimSpace(value)) > n {
			return &FieldError{Field: field, Err: ErrTooLong, Limit: n}
		}
		return nil
	}
}

// Min rejects numbers below n. Non-numeric input is rejected too.
func Min(n int) Rule {
	return func(field, value string) error {
		v, err := parseInt(field, value)
		if err != nil {
			return err
		}
		if v < n {
			return &FieldError{Field: field, Err: ErrBelowMin, Limit: n}
		}
		return nil
	}
}

// Max rejects numbers above n. Non-numeric input is rejected too.
func Max(n int) Rule {
	return func(field, value string) error {
		v, err := parseInt(field, value)
		if err != nil {
			return err
		}
		if v > n {
			return &FieldError{Field: field, Err: ErrAboveMax, Limit: n}
		}
		return nil
	}
}

// Check runs rules in order and stops at the first failure
func Check(field, value string, rules ...Rule) error {
	for _, rule := range rules {
		if err := rule(field, value); err != nil {
			return err
		}
	}
	return nil
}

// Title validates the project title
func Title(s string) error {
	return Check(FieldTitle, s, Required())
}

// Description validates the project description
func Description(s string) error {
	return Check(FieldDescription, s, Required(), MinLength(DescriptionMinLength), MaxLength(DescriptionMaxLength))
}

// People validates the number of people assigned
func People(s string) error {
	return Check(FieldPeople, s, Required(), Min(PeopleMin), Max(PeopleMax))
}

// ValidateProjectInput checks all three form fields and returns the
// trimmed, parsed input. Every failing field is reported, joined.
func ValidateProjectInput(title, description, people string) (ProjectInput, error) {
	if err := errors.Join(Title(title), Description(description), People(people)); err != nil {
		return ProjectInput{}, err
	}

	n, _ := strconv.Atoi(strings.TrimSpace(people))
	return ProjectInput{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		People:      n,
	}, nil
}

func parseInt(field, value string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, &FieldError{Field: field, Err: ErrNotNumber}
	}
	return v, nil
}
