package utils

import (
	"strconv"
	"strings"
)

// Page is one slice of an already-fetched result set.
type Page[T any] struct {
	Items       []T `json:"items"`
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalItems  int `json:"totalItems"`
}

// EmptyPage is the zeroed summary reported when a listing could not be loaded.
func EmptyPage[T any]() Page[T] {
	return Page[T]{Items: []T{}, CurrentPage: 1}
}

// ParsePage reads a 1-based page number. Absent, non-numeric and
// non-positive values all mean page 1.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Paginate slices items for the requested page. A page past the end yields
// an empty slice rather than an error.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	if page < 1 {
		page = 1
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	// Bounds-check before multiplying: page comes straight from the query
	// string and (page-1)*pageSize can overflow.
	if page > totalPages {
		return Page[T]{Items: []T{}, CurrentPage: page, TotalPages: totalPages, TotalItems: total}
	}

	start := (page - 1) * pageSize
	end := total
	if pageSize < total-start {
		end = start + pageSize
	}

	out := make([]T, end-start)
	copy(out, items[start:end])

	return Page[T]{
		Items:       out,
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
	}
}
