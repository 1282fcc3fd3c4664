// Package paging provides an immutable paged-list value type and the
// arithmetic around it: total pages, offsets and navigation flags.
//
// # Usage
//
// Wrap a page that a repository already sliced:
//
//	page, err := paging.New(rows, 2, 25, 103)
//	page.TotalPages() // 5
//	page.HasNext()    // true
//
// Or slice an in-memory dataset directly:
//
//	page, err := paging.Paginate(allRows, 1, 25)
//
// Empty pages come from the explicit generic factory, which never fails
// (a non-positive size is clamped to one):
//
//	none := paging.Empty[User](25)
//
// Pages are value types: the item slice is copied on the way in and on the
// way out, so a Page can be shared freely across goroutines.
package paging
