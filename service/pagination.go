package service

import (
	"strings"

	"gorm.io/gorm"
)

// PagedResult is the envelope shared by every list endpoint.
type PagedResult[T any] struct {
	Data        []T `json:"data"`
	TotalItems  int `json:"totalItems"`
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
}

// ClampPage normalizes page and size: page floors at 1, size defaults to 10
// and is capped at 100.
func ClampPage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	if size > 100 {
		size = 100
	}
	return page, size
}

// Paginate slices the already filtered and ordered collection. TotalItems
// counts the whole collection, not just the returned page.
func Paginate[T any](items []T, page, size int) PagedResult[T] {
	total := len(items)
	totalPages := (total + size - 1) / size

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	data := items[start:end]
	if data == nil {
		data = []T{}
	}
	return PagedResult[T]{
		Data:        data,
		TotalItems:  total,
		CurrentPage: page,
		TotalPages:  totalPages,
	}
}

// WhereWildcard applies the list-endpoint wildcard convention for string
// filters on column: *term* substring, *term suffix, term* prefix, and a
// plain value matches exactly. Empty values leave the query unchanged.
// column is always a trusted literal, never user input.
func WhereWildcard(q *gorm.DB, column, value string) *gorm.DB {
	switch {
	case value == "":
		return q
	case len(value) >= 2 && strings.HasPrefix(value, "*") && strings.HasSuffix(value, "*"):
		return q.Where(column+" LIKE ?", "%"+strings.Trim(value, "*")+"%")
	case strings.HasPrefix(value, "*"):
		return q.Where(column+" LIKE ?", "%"+strings.TrimPrefix(value, "*"))
	case strings.HasSuffix(value, "*"):
		return q.Where(column+" LIKE ?", strings.TrimSuffix(value, "*")+"%")
	default:
		return q.Where(column+" = ?", value)
	}
}
