package navigator

import (
	"slices"

	"github.com/dmitrijs2005/worklog/internal/models"
)

// DistinctValues returns the distinct values of field across entries, sorted
// ascending.
func DistinctValues(field models.Field, entries []models.Entry) []string {
	seen := make(map[string]struct{}, len(entries))
	values := make([]string, 0, len(entries))
	for _, e := range entries {
		v := e.Value(field)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	slices.Sort(values)
	return values
}

// FilterBy keeps the entries whose field equals value, preserving order.
func FilterBy(field models.Field, value string, entries []models.Entry) []models.Entry {
	matches := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Value(field) == value {
			matches = append(matches, e)
		}
	}
	return matches
}
