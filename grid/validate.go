package grid

import (
	"fmt"

	"github.com/katalvlaran/nonogram/constraint"
)

// Validate sanity-checks an InputGrid before a solve is attempted, mirroring
// the original's check_input_grid:
//
//   - non-zero height and width
//   - every row clue's minimum size fits within the width, every column
//     clue's minimum size fits within the height
//   - the total number of filled tiles implied by the row clues equals the
//     total implied by the column clues
//
// It returns ErrInvalidInput, wrapped with a message describing the first
// violation found.
func Validate(g InputGrid) error {
	width, height := g.Width(), g.Height()
	if width == 0 || height == 0 {
		return fmt.Errorf("%w: empty grid (%dx%d)", ErrInvalidInput, width, height)
	}

	rowTotal := 0
	for y, segs := range g.Rows {
		c := constraint.New(segs)
		if c.MinLineSize() > width {
			return fmt.Errorf("%w: row %d requires at least %d cells, width is %d", ErrInvalidInput, y, c.MinLineSize(), width)
		}
		rowTotal += c.NbFilledTiles()
	}

	colTotal := 0
	for x, segs := range g.Cols {
		c := constraint.New(segs)
		if c.MinLineSize() > height {
			return fmt.Errorf("%w: column %d requires at least %d cells, height is %d", ErrInvalidInput, x, c.MinLineSize(), height)
		}
		colTotal += c.NbFilledTiles()
	}

	if rowTotal != colTotal {
		return fmt.Errorf("%w: row clues total %d filled tiles, column clues total %d", ErrInvalidInput, rowTotal, colTotal)
	}

	return nil
}
