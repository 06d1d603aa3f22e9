package query

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Scope is a composable query fragment. A nil Scope means "filter not
// applied"; Paginate skips them, which is how absent or unparseable filter
// values silently drop out of the query.
type Scope func(*gorm.DB) *gorm.DB

// TextContains filters on substring containment. Blank values (including
// whitespace-only) produce no filter at all, never an exact-match or error.
func TextContains(column, value string) Scope {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" LIKE ?", "%"+value+"%")
	}
}

func EqualsUint(column string, value *uint) Scope {
	if value == nil {
		return nil
	}
	v := *value
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", v)
	}
}

func EqualsInt(column string, value *int) Scope {
	if value == nil {
		return nil
	}
	v := *value
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", v)
	}
}

// EqualsTime filters on exact timestamp equality.
func EqualsTime(column string, value *time.Time) Scope {
	if value == nil {
		return nil
	}
	v := *value
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", v)
	}
}

// EnumEquals applies an equality filter only when ok is true, i.e. when the
// raw value parsed against the enum's members. Callers pass the result of the
// entity's ParseXStatus function, keeping the parse-or-ignore policy in one
// named place.
func EnumEquals(column string, value string, ok bool) Scope {
	if !ok {
		return nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", value)
	}
}
