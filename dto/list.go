package dto

import "github.com/centralsales/sales-api/query"

// ListResponse is the envelope every list endpoint returns.
type ListResponse[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewListResponse projects a query result element-wise into the envelope.
func NewListResponse[E, T any](r query.Result[E], project func(E) T) ListResponse[T] {
	data := make([]T, 0, len(r.Data))
	for _, e := range r.Data {
		data = append(data, project(e))
	}
	return ListResponse[T]{
		Data:       data,
		Page:       r.Page,
		Limit:      r.Limit,
		Total:      r.Total,
		TotalPages: r.TotalPages,
	}
}
