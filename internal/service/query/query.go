package query

import (
	"strings"

	"freightdesk/internal/entities"
)

// Record is anything a list view can search and filter.
type Record interface {
	// SearchableFields returns the values matched by the free-text search.
	SearchableFields() []string
	// FilterValue returns the attribute behind a filter key; ok is false for unknown keys.
	FilterValue(key string) (value string, ok bool)
}

// Apply returns the records matching every constraint of q, in input order.
// The input slice is never modified and the result is never nil.
func Apply[T Record](collection []T, q entities.Query) []T {
	result := make([]T, 0, len(collection))

	needle := strings.ToLower(q.SearchText)
	for _, record := range collection {
		if matches(record, needle, q.Filters) {
			result = append(result, record)
		}
	}
	return result
}

// Count is Apply without building the result.
func Count[T Record](collection []T, q entities.Query) int {
	needle := strings.ToLower(q.SearchText)

	count := 0
	for _, record := range collection {
		if matches(record, needle, q.Filters) {
			count++
		}
	}
	return count
}

func matches(record Record, needle string, filters []entities.Filter) bool {
	return searchMatches(record, needle) && filtersMatch(record, filters)
}

func searchMatches(record Record, needle string) bool {
	if needle == "" {
		return true
	}

	for _, field := range record.SearchableFields() {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func filtersMatch(record Record, filters []entities.Filter) bool {
	for _, f := range filters {
		if f.Value == entities.FilterAll {
			continue
		}

		// unknown key matches nothing
		value, ok := record.FilterValue(f.Key)
		if !ok || value != f.Value {
			return false
		}
	}
	return true
}
