package nonio

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/katalvlaran/nonogram/grid"
	"github.com/katalvlaran/nonogram/tile"
)

// CellSize is the default edge length, in SVG user units, of one rendered
// grid cell.
const CellSize = 20

// WriteSVG renders o as a square grid of cells: black for Filled, white for
// Empty, light gray for Unknown. There is no equivalent renderer in the
// original (a Dear ImGui immediate-mode canvas, not reusable outside its
// event loop); this is a from-scratch adaptation to a static vector format
// using the one rendering library available in the dependency pack.
func WriteSVG(w io.Writer, o grid.OutputGrid, cellSize int) {
	if cellSize <= 0 {
		cellSize = CellSize
	}
	width := o.Width * cellSize
	height := o.Height * cellSize

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white;stroke:none")

	for y := 0; y < o.Height; y++ {
		for x := 0; x < o.Width; x++ {
			style := cellStyle(o.At(x, y))
			canvas.Rect(x*cellSize, y*cellSize, cellSize, cellSize, style)
		}
	}

	for x := 0; x <= o.Width; x++ {
		canvas.Line(x*cellSize, 0, x*cellSize, height, "stroke:gray;stroke-width:1")
	}
	for y := 0; y <= o.Height; y++ {
		canvas.Line(0, y*cellSize, width, y*cellSize, "stroke:gray;stroke-width:1")
	}

	canvas.End()
}

func cellStyle(t tile.Tile) string {
	switch t {
	case tile.Filled:
		return "fill:black;stroke:none"
	case tile.Empty:
		return "fill:white;stroke:none"
	default:
		return "fill:lightgray;stroke:none"
	}
}
