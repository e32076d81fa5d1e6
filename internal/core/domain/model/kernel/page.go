package kernel

import (
	"orders/internal/pkg/errs"
)

const (
	// MinPageSize is the smallest number of records a page may request.
	MinPageSize = 1

	// MaxPageSize caps a single page to keep scans bounded.
	MaxPageSize = 100
)

// ErrPageSpecIsNotConstructed indicates that a PageSpec was not created through
// the NewPageSpec constructor.
var ErrPageSpecIsNotConstructed = errs.NewValueIsRequiredError(
	"PageSpec must be created via NewPageSpec",
)

// PageSpec is a value object describing one page of a listing: a zero-based
// page number and a page size. The zero value is invalid; construct through
// NewPageSpec.
type PageSpec struct {
	page          int
	size          int
	isConstructed bool
}

// NewPageSpec creates a page specification. The page number must be zero or
// positive and the size must lie within [MinPageSize, MaxPageSize].
func NewPageSpec(page, size int) (PageSpec, error) {
	if page < 0 {
		return PageSpec{}, errs.NewValueIsInvalidError("page")
	}
	if size < MinPageSize || size > MaxPageSize {
		return PageSpec{}, errs.NewValueIsOutOfRangeError("size", size, MinPageSize, MaxPageSize)
	}

	return PageSpec{
		page:          page,
		size:          size,
		isConstructed: true,
	}, nil
}

// Page returns the zero-based page number.
func (p PageSpec) Page() int {
	return p.page
}

// Size returns the number of records per page.
func (p PageSpec) Size() int {
	return p.size
}

// Offset returns the number of records to skip for this page.
func (p PageSpec) Offset() int {
	return p.page * p.size
}

// Validate returns ErrPageSpecIsNotConstructed for a zero-value PageSpec.
func (p PageSpec) Validate() error {
	if !p.isConstructed {
		return ErrPageSpecIsNotConstructed
	}
	return nil
}
