// Package query implements predicate filtering and offset pagination over
// in-memory result sets. Queries scan the full collection and then slice,
// which is an accepted O(N) cost for process-local data.
package query

// Pagination bounds. Sizes outside [1, MaxPageSize] fall back to the default.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Filter is a predicate over an entity. A nil Filter matches everything.
type Filter[T any] func(T) bool

// And composes filters with logical AND. Nil filters are no-ops.
func And[T any](filters ...Filter[T]) Filter[T] {
	return func(entity T) bool {
		for _, f := range filters {
			if f != nil && !f(entity) {
				return false
			}
		}
		return true
	}
}

// Apply returns the entities matching the filter, preserving input order.
func Apply[T any](items []T, filter Filter[T]) []T {
	if filter == nil {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if filter(item) {
			out = append(out, item)
		}
	}
	return out
}

// Page is a bounded slice of a result set plus pagination metadata.
type Page[T any] struct {
	Content       []T `json:"content"`
	Page          int `json:"page"`
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
}

// Paginate slices items into the requested page. A negative page index is
// clamped to 0; a size outside [1, MaxPageSize] falls back to DefaultPageSize.
// Requests past the end yield empty content with metadata still reflecting
// the full set.
func Paginate[T any](items []T, page, size int) Page[T] {
	if page < 0 {
		page = 0
	}
	if size < 1 || size > MaxPageSize {
		size = DefaultPageSize
	}

	total := len(items)
	totalPages := (total + size - 1) / size

	start := page * size
	end := start + size
	if end > total {
		end = total
	}

	content := []T{}
	if start < total {
		content = append(content, items[start:end]...)
	}

	return Page[T]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}
