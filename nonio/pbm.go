package nonio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/nonogram/grid"
	"github.com/katalvlaran/nonogram/tile"
)

// WritePBM exports a (possibly partial) OutputGrid as a P1 ASCII portable
// bitmap, grounded on the original's export_bitmap_pbm: a Filled tile maps
// to bit 1, Empty or Unknown to bit 0 (PBM has no "unknown" bit; a partial
// render simply shows its unknown cells as unset).
func WritePBM(w io.Writer, o grid.OutputGrid) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "P1")
	fmt.Fprintf(bw, "%d %d\n", o.Width, o.Height)
	for y := 0; y < o.Height; y++ {
		for x := 0; x < o.Width; x++ {
			if x > 0 {
				bw.WriteByte(' ')
			}
			if o.At(x, y) == tile.Filled {
				bw.WriteByte('1')
			} else {
				bw.WriteByte('0')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
