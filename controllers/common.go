package controllers

import "strconv"

// parseID reads a numeric path parameter. A non-numeric id behaves like an
// unknown id (not found), matching the route constraint semantics.
func parseID(raw string) (uint, bool) {
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}
