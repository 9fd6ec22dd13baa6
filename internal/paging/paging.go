// Package paging splits an ordered record list into fixed-size pages.
//
// Pages are 1-based. Paginate clamps an out-of-range index instead of
// failing; rejecting navigation to a page that does not exist is left to
// the caller, which knows the previous index to keep.
package paging

import "errors"

// DefaultSize is the page size used when none is configured.
const DefaultSize = 50

var (
	ErrInvalidSize  = errors.New("page size must be at least 1")
	ErrInvalidIndex = errors.New("page index must be at least 1")
)

// Spec is a 1-based page index and a page size.
type Spec struct {
	Index int `json:"index" yaml:"index"`
	Size  int `json:"size" yaml:"size"`
}

// Default is page 1 of DefaultSize.
func Default() Spec {
	return Spec{Index: 1, Size: DefaultSize}
}

// Validate reports a size or index below 1.
func (s Spec) Validate() error {
	if s.Size < 1 {
		return ErrInvalidSize
	}
	if s.Index < 1 {
		return ErrInvalidIndex
	}
	return nil
}

// TotalPages returns ceil(n/size); zero when n is zero or size is invalid.
func TotalPages(n, size int) int {
	if n <= 0 || size < 1 {
		return 0
	}
	return (n + size - 1) / size
}

// Paginate returns the items on page spec.Index together with the total
// page count. The index is clamped into [1, totalPages]; the final page may
// be short. The returned page is capacity-clipped so that appending to it
// never writes into items. An invalid size yields no page and zero pages.
func Paginate[T any](items []T, spec Spec) ([]T, int) {
	if spec.Size < 1 {
		return nil, 0
	}
	total := TotalPages(len(items), spec.Size)
	if total == 0 {
		return []T{}, 0
	}
	index := min(max(spec.Index, 1), total)
	start := (index - 1) * spec.Size
	end := min(start+spec.Size, len(items))
	return items[start:end:end], total
}

// InRange reports whether index names an existing page.
func InRange(index, totalPages int) bool {
	return index >= 1 && index <= totalPages
}
