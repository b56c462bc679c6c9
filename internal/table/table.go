// Package table implements the list contract shared by every dashboard:
// free-text filter, stable sort with direction toggle, fixed-size pages,
// and a total match count.
package table

import (
	"sort"
	"strings"
)

type Query struct {
	Filter   string
	SortDesc bool
	Page     int // 1-based; values below 1 mean the first page
	PageSize int // 0 or less disables paging
}

type Page[T any] struct {
	Items      []T
	TotalCount int
	Page       int
	PageSize   int
}

// Apply filters rows by case-insensitive substring match over the strings
// returned by fields, sorts with less (stable, so equal keys keep their
// original order), and returns the requested page window together with the
// total number of matches. A nil less leaves the original order; a nil
// fields or empty filter matches everything.
func Apply[T any](rows []T, q Query, fields func(T) []string, less func(a, b T) bool) Page[T] {
	matched := filter(rows, q.Filter, fields)

	if less != nil {
		cmp := less
		if q.SortDesc {
			cmp = func(a, b T) bool { return less(b, a) }
		}

		sort.SliceStable(matched, func(i, j int) bool { return cmp(matched[i], matched[j]) })
	}

	page := q.Page
	if page < 1 {
		page = 1
	}

	result := Page[T]{
		TotalCount: len(matched),
		Page:       page,
		PageSize:   q.PageSize,
	}

	if q.PageSize <= 0 {
		result.Items = matched
		return result
	}

	start := (page - 1) * q.PageSize
	if start >= len(matched) {
		result.Items = []T{}
		return result
	}

	end := min(start+q.PageSize, len(matched))
	result.Items = matched[start:end]

	return result
}

func filter[T any](rows []T, needle string, fields func(T) []string) []T {
	matched := make([]T, 0, len(rows))

	if needle == "" || fields == nil {
		return append(matched, rows...)
	}

	needle = strings.ToLower(needle)

	for _, row := range rows {
		for _, field := range fields(row) {
			if strings.Contains(strings.ToLower(field), needle) {
				matched = append(matched, row)
				break
			}
		}
	}

	return matched
}
