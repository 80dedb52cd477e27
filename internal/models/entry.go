// Package models defines the timesheet entry and the rules its fields obey.
package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/worklog/internal/common"
)

var (
	ErrEmptyEmployeeName = fmt.Errorf("%w: an employee name must be entered", common.ErrValidation)
	ErrEmptyTaskName     = fmt.Errorf("%w: a task name must be entered", common.ErrValidation)
	ErrFieldTooLong      = fmt.Errorf("%w: must be %d characters or less", common.ErrValidation, common.MaxFieldLength)
	ErrTimeSpent         = fmt.Errorf("%w: time spent must be greater than zero", common.ErrValidation)
	ErrMissingDate       = fmt.Errorf("%w: a date must be entered", common.ErrValidation)
)

// Entry is one timesheet record. There is no identity key: two entries are
// the same entry when all five fields are equal.
type Entry struct {
	EmployeeName  string
	Date          time.Time
	TaskName      string
	TimeSpent     int
	OptionalNotes string
}

// Equal reports whether e and o hold the same value-tuple. Dates are compared
// by calendar day.
func (e Entry) Equal(o Entry) bool {
	return e.EmployeeName == o.EmployeeName &&
		FormatDate(e.Date) == FormatDate(o.Date) &&
		e.TaskName == o.TaskName &&
		e.TimeSpent == o.TimeSpent &&
		e.OptionalNotes == o.OptionalNotes
}

// Validate checks every field and returns all violations joined together.
func (e Entry) Validate() error {
	var errs []error
	if err := ValidateEmployeeName(e.EmployeeName); err != nil {
		errs = append(errs, err)
	}
	if e.Date.IsZero() {
		errs = append(errs, ErrMissingDate)
	}
	if err := ValidateTaskName(e.TaskName); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateTimeSpent(e.TimeSpent); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %s %q %dm", FormatDate(e.Date), e.EmployeeName, e.TaskName, e.TimeSpent)
}

// ValidateEmployeeName requires 1..MaxFieldLength characters.
func ValidateEmployeeName(s string) error {
	return validateName(s, ErrEmptyEmployeeName)
}

// ValidateTaskName requires 1..MaxFieldLength characters.
func ValidateTaskName(s string) error {
	return validateName(s, ErrEmptyTaskName)
}

func validateName(s string, errEmpty error) error {
	if strings.TrimSpace(s) == "" {
		return errEmpty
	}
	if utf8.RuneCountInString(s) > common.MaxFieldLength {
		return ErrFieldTooLong
	}
	return nil
}

// ValidateTimeSpent requires a positive number of minutes.
func ValidateTimeSpent(n int) error {
	if n <= 0 {
		return ErrTimeSpent
	}
	return nil
}

// Field selects one entry column for grouping.
type Field int

const (
	FieldDate Field = iota
	FieldEmployeeName
)

func (f Field) String() string {
	switch f {
	case FieldDate:
		return "date"
	case FieldEmployeeName:
		return "employee_name"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// Value returns the comparable text form of field f. Dates use the storage
// layout so that sorting the values sorts them chronologically.
func (e Entry) Value(f Field) string {
	switch f {
	case FieldDate:
		return FormatDate(e.Date)
	case FieldEmployeeName:
		return e.EmployeeName
	default:
		return ""
	}
}
