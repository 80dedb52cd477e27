package models

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/worklog/internal/common"
)

// ParseInputDate parses a user-typed YYYY/MM/DD date.
func ParseInputDate(s string) (time.Time, error) {
	t, err := time.Parse(common.InputDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s doesn't seem to be a valid date", common.ErrValidation, s)
	}
	return t, nil
}

// ParseDate parses a date in storage layout.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(common.StorageDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse stored date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders t in storage layout.
func FormatDate(t time.Time) string {
	return t.Format(common.StorageDateLayout)
}

// NewDate is shorthand for a UTC calendar date.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
