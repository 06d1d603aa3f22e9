package query

import "strings"

// SortSpec is a resource's sort-key whitelist. Keys are matched
// case-insensitively; anything outside the whitelist sorts by Default.
// Values are column names, so the ORDER BY clause is never built from raw
// client input.
type SortSpec struct {
	Default string
	Keys    map[string]string
}

// Clause returns the ORDER BY fragment for the requested key and direction.
// Direction is "asc" case-insensitively; everything else is descending.
func (s SortSpec) Clause(sortBy, direction string) string {
	column, ok := s.Keys[strings.ToLower(strings.TrimSpace(sortBy))]
	if !ok {
		column = s.Default
	}
	if strings.EqualFold(strings.TrimSpace(direction), "asc") {
		return column + " ASC"
	}
	return column + " DESC"
}
