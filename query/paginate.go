package query

import "gorm.io/gorm"

// Result is one page of rows plus the pagination metadata every list
// endpoint returns.
type Result[T any] struct {
	Data       []T
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

// Paginate runs the full list pipeline for one entity type: apply the active
// filters, count the filtered set, then fetch a single ordered page. Nil
// scopes are skipped, so absent filters cost nothing. Preloads apply only to
// the fetched page, never to the count.
func Paginate[T any](db *gorm.DB, p Params, sort SortSpec, preloads []string, scopes ...Scope) (Result[T], error) {
	p = p.Normalize()

	filtered := db.Model(new(T))
	for _, s := range scopes {
		if s != nil {
			filtered = s(filtered)
		}
	}

	var total int64
	if err := filtered.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return Result[T]{}, err
	}

	page := filtered.Session(&gorm.Session{})
	for _, assoc := range preloads {
		page = page.Preload(assoc)
	}

	data := make([]T, 0)
	err := page.
		Order(sort.Clause(p.SortBy, p.SortDirection)).
		Offset((p.Page - 1) * p.Limit).
		Limit(p.Limit).
		Find(&data).Error
	if err != nil {
		return Result[T]{}, err
	}

	return Result[T]{
		Data:       data,
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: totalPages(total, p.Limit),
	}, nil
}

func totalPages(total int64, limit int) int {
	return int((total + int64(limit) - 1) / int64(limit))
}
