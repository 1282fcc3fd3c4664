package paging

import (
	"fmt"

	"github.com/omarbesiso/corekit/core/guard"
)

// Page is an immutable window over a larger dataset: the items of one
// page plus the paging arithmetic around them. Page numbers are 1-based.
type Page[T any] struct {
	items      []T
	pageNumber int
	pageSize   int
	totalItems int
}

// New builds a page after validating the paging arguments. The number of
// items must not exceed the page size.
func New[T any](items []T, pageNumber, pageSize, totalItems int) (Page[T], error) {
	if err := guard.All(
		guard.Positive("pageNumber", pageNumber),
		guard.Positive("pageSize", pageSize),
		guard.NonNegative("totalItems", totalItems),
	); err != nil {
		return Page[T]{}, err
	}
	if len(items) > pageSize {
		return Page[T]{}, fmt.Errorf("%w: %d items exceed page size %d", ErrPageOverflow, len(items), pageSize)
	}

	copied := make([]T, len(items))
	copy(copied, items)
	return Page[T]{
		items:      copied,
		pageNumber: pageNumber,
		pageSize:   pageSize,
		totalItems: totalItems,
	}, nil
}

// Empty returns a page with no items for the given page size. This is the
// explicit per-type factory; with generics there is nothing to cache.
//
// Unlike New, Empty never fails: a non-positive page size is clamped to
// one so that the result is always a usable zero page. Callers that need
// page-size validation go through New.
func Empty[T any](pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	return Page[T]{pageNumber: 1, pageSize: pageSize}
}

// Paginate slices a fully loaded dataset into the requested page. Pages
// past the end of the data are valid and come back empty.
func Paginate[T any](all []T, pageNumber, pageSize int) (Page[T], error) {
	if err := guard.All(
		guard.Positive("pageNumber", pageNumber),
		guard.Positive("pageSize", pageSize),
	); err != nil {
		return Page[T]{}, err
	}

	start := (pageNumber - 1) * pageSize
	if start >= len(all) {
		p := Empty[T](pageSize)
		p.pageNumber = pageNumber
		p.totalItems = len(all)
		return p, nil
	}
	end := min(start+pageSize, len(all))
	return New(all[start:end], pageNumber, pageSize, len(all))
}

// Items returns a copy of the page's items.
func (p Page[T]) Items() []T {
	out := make([]T, len(p.items))
	copy(out, p.items)
	return out
}

// PageNumber returns the 1-based page number.
func (p Page[T]) PageNumber() int { return p.pageNumber }

// PageSize returns the maximum number of items per page.
func (p Page[T]) PageSize() int { return p.pageSize }

// TotalItems returns the size of the whole dataset.
func (p Page[T]) TotalItems() int { return p.totalItems }

// Len returns the number of items on this page.
func (p Page[T]) Len() int { return len(p.items) }

// TotalPages returns how many pages the dataset spans; zero when empty.
func (p Page[T]) TotalPages() int {
	if p.totalItems == 0 || p.pageSize == 0 {
		return 0
	}
	return (p.totalItems + p.pageSize - 1) / p.pageSize
}

// Offset returns the zero-based index of the first item of this page
// within the dataset.
func (p Page[T]) Offset() int {
	return (p.pageNumber - 1) * p.pageSize
}

// HasNext reports whether a later page exists.
func (p Page[T]) HasNext() bool {
	return p.pageNumber < p.TotalPages()
}

// HasPrevious reports whether an earlier page exists.
func (p Page[T]) HasPrevious() bool {
	return p.pageNumber > 1
}

// IsFirst reports whether this is the first page.
func (p Page[T]) IsFirst() bool { return p.pageNumber == 1 }

// IsLast reports whether this is the last page. An empty dataset has only
// this page, so it is both first and last.
func (p Page[T]) IsLast() bool { return !p.HasNext() }
