package paging

import "errors"

// ErrPageOverflow is returned by New when more items are supplied than
// the page size allows.
var ErrPageOverflow = errors.New("page holds more items than its size")
