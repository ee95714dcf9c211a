package tile_test

import (
	"fmt"

	"github.com/katalvlaran/nonogram/tile"
)

// ExampleLine_Add merges a partially-known line with a newly-reduced one,
// keeping whichever side already knows a cell.
func ExampleLine_Add() {
	known := tile.FromTiles(tile.Row, 0, []tile.Tile{tile.Unknown, tile.Filled, tile.Unknown})
	reduced := tile.FromTiles(tile.Row, 0, []tile.Tile{tile.Empty, tile.Unknown, tile.Unknown})

	merged, err := known.Add(reduced)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(merged)
	// Output:
	// .#?
}

// ExampleLine_Runs recovers the clue segments implied by a fully-known line.
func ExampleLine_Runs() {
	l := tile.FromTiles(tile.Row, 0, []tile.Tile{
		tile.Filled, tile.Filled, tile.Empty, tile.Filled, tile.Empty, tile.Filled, tile.Filled, tile.Filled,
	})
	fmt.Println(l.Runs())
	// Output:
	// [2 1 3]
}
