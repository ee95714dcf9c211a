package grid

import "github.com/katalvlaran/nonogram/tile"

// Grid is a width x height array of tiles, kept in two mirrored views: a
// row-major array (for fast row scans) and a column-major array (for fast
// column scans). A single cell write is visible through both.
type Grid struct {
	Width, Height int
	rowMajor      []tile.Tile // index = y*Width + x
	colMajor      []tile.Tile // index = x*Height + y
}

// NewGrid returns a Width x Height grid with every cell Unknown.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:    width,
		Height:   height,
		rowMajor: make([]tile.Tile, width*height),
		colMajor: make([]tile.Tile, width*height),
	}
}

// At returns the tile at column x, row y.
func (g *Grid) At(x, y int) tile.Tile {
	return g.rowMajor[y*g.Width+x]
}

// Set writes the tile at column x, row y, propagating to both mirrors.
func (g *Grid) Set(x, y int, t tile.Tile) {
	g.rowMajor[y*g.Width+x] = t
	g.colMajor[x*g.Height+y] = t
}

// Row returns a copy of row y as a tile.Line.
func (g *Grid) Row(y int) tile.Line {
	tiles := make([]tile.Tile, g.Width)
	copy(tiles, g.rowMajor[y*g.Width:(y+1)*g.Width])
	return tile.FromTiles(tile.Row, y, tiles)
}

// Col returns a copy of column x as a tile.Line.
func (g *Grid) Col(x int) tile.Line {
	tiles := make([]tile.Tile, g.Height)
	copy(tiles, g.colMajor[x*g.Height:(x+1)*g.Height])
	return tile.FromTiles(tile.Col, x, tiles)
}

// Line returns the row or column identified by axis/index, dispatching to
// Row or Col.
func (g *Grid) Line(axis tile.Axis, index int) tile.Line {
	if axis == tile.Col {
		return g.Col(index)
	}
	return g.Row(index)
}

// SetLine writes every tile of line into the grid at line.Axis/line.Index,
// propagating each cell write to both mirrors.
func (g *Grid) SetLine(line tile.Line) {
	if line.Axis == tile.Col {
		x := line.Index
		for y, t := range line.Tiles {
			g.Set(x, y, t)
		}
		return
	}
	y := line.Index
	for x, t := range line.Tiles {
		g.Set(x, y, t)
	}
}

// Clone returns an independent deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{Width: g.Width, Height: g.Height}
	out.rowMajor = append([]tile.Tile(nil), g.rowMajor...)
	out.colMajor = append([]tile.Tile(nil), g.colMajor...)
	return out
}

// NbLines returns the number of lines along axis: Height for Row, Width for Col.
func (g *Grid) NbLines(axis tile.Axis) int {
	if axis == tile.Col {
		return g.Width
	}
	return g.Height
}

// LineSize returns the length of a line along axis: Width for Row, Height for Col.
func (g *Grid) LineSize(axis tile.Axis) int {
	if axis == tile.Col {
		return g.Height
	}
	return g.Width
}

// ConstraintsFromLine extracts the clue segments implied by a fully-known
// line (the trivial grid-to-clue inversion named in the spec as the one
// in-scope piece of otherwise-external format coupling).
func ConstraintsFromLine(line tile.Line) []int {
	return line.Runs()
}
