// Package grid — sentinel errors, checked with errors.Is per the teacher's
// builder/errors.go convention.
package grid

import "errors"

// ErrInvalidInput is returned when an InputGrid fails validation: mismatched
// totals between the declared row and column clue sets, an empty grid, or a
// clue whose minimum line size exceeds the declared width/height.
var ErrInvalidInput = errors.New("grid: invalid input grid")

// ErrIndexOutOfRange names an index outside the grid's bounds. Grid's
// Row/Col/At do not return it: they index the tile arrays directly and
// panic on an out-of-range index.
var ErrIndexOutOfRange = errors.New("grid: index out of range")
