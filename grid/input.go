package grid

import "strconv"

// InputGrid is the unsolved description of a puzzle: one clue (ordered
// segment lengths) per row and per column, an optional Name, and free-form
// Metadata carried through from a file format's front matter.
//
// Grounded on the original's picross::InputGrid (picross_input_grid.h):
// width is len(Cols), height is len(Rows).
type InputGrid struct {
	Rows     [][]int
	Cols     [][]int
	Name     string
	Metadata map[string]string
}

// Width returns the number of columns, i.e. the length of every row.
func (g InputGrid) Width() int {
	return len(g.Cols)
}

// Height returns the number of rows, i.e. the length of every column.
func (g InputGrid) Height() int {
	return len(g.Rows)
}

// SizeString renders the grid dimensions as "WxH", matching the original's
// str_input_grid_size.
func (g InputGrid) SizeString() string {
	return strconv.Itoa(g.Width()) + "x" + strconv.Itoa(g.Height())
}
