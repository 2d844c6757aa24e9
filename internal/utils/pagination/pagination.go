// Package pagination wraps an already-sliced page of an ordered result set
// together with its paging metadata. It knows nothing about storage or
// transport; callers perform the count and the slice themselves.
package pagination

// Paginated carries one page of elements plus the metadata a client needs
// to walk the full result set. Pages are 0-based.
type Paginated[T any] struct {
	PageNumber  int   `json:"page_number"`
	PageSize    int   `json:"page_size"`
	TotalCount  int64 `json:"total_count"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
	Elements    []T   `json:"elements"`
}

// New builds a page descriptor from the total match count and the elements
// fetched for page. If the caller over-fetched past pageSize the slice is
// trimmed so the advertised page size always holds.
func New[T any](page, pageSize int, totalCount int64, elements []T) Paginated[T] {
	if len(elements) > pageSize {
		elements = elements[:pageSize]
	}
	return Paginated[T]{
		PageNumber:  page,
		PageSize:    pageSize,
		TotalCount:  totalCount,
		HasNext:     int64(page)*int64(pageSize)+int64(len(elements)) < totalCount,
		HasPrevious: page > 0,
		Elements:    elements,
	}
}
