package dto

import portsrepo "github.com/SscSPs/asset_tracker/internal/core/ports/repositories"

// PageMeta describes where a page sits within the full result set.
type PageMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// ListResponse wraps one page of items.
type ListResponse[T any] struct {
	Items      []T      `json:"items"`
	Pagination PageMeta `json:"pagination"`
}

// ToListResponse maps every item of page with convert.
func ToListResponse[E any, T any](page portsrepo.Page[E], convert func(E) T) ListResponse[T] {
	items := make([]T, len(page.Items))
	for i, e := range page.Items {
		items[i] = convert(e)
	}
	meta := PageMeta{Page: page.Page, PageSize: page.PageSize, Total: page.Total}
	if page.PageSize > 0 {
		meta.TotalPages = (page.Total + page.PageSize - 1) / page.PageSize
	}
	return ListResponse[T]{Items: items, Pagination: meta}
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error  string       `json:"error"`
	Causes []FieldCause `json:"causes,omitempty"`
}

// FieldCause is one field-level validation failure.
type FieldCause struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
