// Package common contains shared constants and sentinel errors used across
// worklog components.
package common

// MaxFieldLength is the upper bound, in characters, for employee and task names.
const MaxFieldLength = 50

const (
	// InputDateLayout is the layout users type dates in. Month and day may
	// omit the leading zero; the year must have four digits.
	InputDateLayout = "2006/1/2"

	// StorageDateLayout is how dates are persisted and displayed. Lexical order
	// of this layout equals calendar order.
	StorageDateLayout = "2006-01-02"
)
