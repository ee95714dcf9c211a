package grid

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/nonogram/tile"
)

// OutputGrid is an immutable row-major snapshot of a (possibly partial)
// solved grid, taken from a Grid at a point in time. Grounded on the
// original's picross::OutputGrid, minus its handle-to-mutable-Grid
// indirection: here a snapshot is a plain value, copied once at capture
// time.
type OutputGrid struct {
	Width, Height int
	Name          string
	Tiles         []tile.Tile // row-major, index = y*Width + x
}

// NewOutputGrid captures an immutable snapshot of g.
func NewOutputGrid(g *Grid, name string) OutputGrid {
	tiles := make([]tile.Tile, len(g.rowMajor))
	copy(tiles, g.rowMajor)
	return OutputGrid{Width: g.Width, Height: g.Height, Name: name, Tiles: tiles}
}

// At returns the tile at column x, row y.
func (o OutputGrid) At(x, y int) tile.Tile {
	return o.Tiles[y*o.Width+x]
}

// Row returns row y as a tile.Line.
func (o OutputGrid) Row(y int) tile.Line {
	tiles := make([]tile.Tile, o.Width)
	copy(tiles, o.Tiles[y*o.Width:(y+1)*o.Width])
	return tile.FromTiles(tile.Row, y, tiles)
}

// Col returns column x as a tile.Line.
func (o OutputGrid) Col(x int) tile.Line {
	tiles := make([]tile.Tile, o.Height)
	for y := 0; y < o.Height; y++ {
		tiles[y] = o.At(x, y)
	}
	return tile.FromTiles(tile.Col, x, tiles)
}

// IsComplete reports whether every tile of the snapshot is Filled or Empty.
func (o OutputGrid) IsComplete() bool {
	for _, t := range o.Tiles {
		if t == tile.Unknown {
			return false
		}
	}
	return true
}

// SizeString renders the grid dimensions as "WxH".
func (o OutputGrid) SizeString() string {
	return strconv.Itoa(o.Width) + "x" + strconv.Itoa(o.Height)
}

// String renders the grid with '#' for Filled, '.' for Empty and '?' for
// Unknown, one line per row.
func (o OutputGrid) String() string {
	var sb strings.Builder
	for y := 0; y < o.Height; y++ {
		sb.WriteString(o.Row(y).String())
		if y != o.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
