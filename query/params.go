// Package query implements the paginated list pipeline shared by every
// listable resource: lenient filter parsing, a sort-key whitelist with a
// per-resource default, and count + skip/take pagination in a single pass.
package query

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
)

type Params struct {
	Page          int
	Limit         int
	SortBy        string
	SortDirection string
}

// Normalize clamps page and limit to at least 1, falling back to the
// defaults when the raw values are missing or non-positive.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	return p
}

// FromRequest reads page/limit/sortBy/sortDirection from the query string.
// Unparseable numbers fall back to the defaults; they are never an error.
func FromRequest(c *gin.Context, defaultSortBy, defaultDirection string) Params {
	return Params{
		Page:          intQuery(c, "page", DefaultPage),
		Limit:         intQuery(c, "limit", DefaultLimit),
		SortBy:        c.DefaultQuery("sortBy", defaultSortBy),
		SortDirection: c.DefaultQuery("sortDirection", defaultDirection),
	}.Normalize()
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// UintParam returns a pointer to the parsed value, or nil when the parameter
// is absent or unparseable (the filter is then skipped).
func UintParam(c *gin.Context, name string) *uint {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	u := uint(v)
	return &u
}

func IntParam(c *gin.Context, name string) *int {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

// TimeParam parses an RFC3339 timestamp, nil when absent or malformed.
func TimeParam(c *gin.Context, name string) *time.Time {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil
	}
	return &t
}
