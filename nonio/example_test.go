package nonio_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/nonogram/nonio"
)

// ExampleReadNative parses a single native-format grid and prints its
// clues back out.
func ExampleReadNative() {
	const src = `GRID plus
ROWS
[ 1 ]
[ 3 ]
[ 1 ]
COLUMNS
[ 1 ]
[ 3 ]
[ 1 ]
`
	grids, err := nonio.ReadNative(strings.NewReader(src), "plus.txt")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(grids[0].Name, grids[0].Rows, grids[0].Cols)
	// Output:
	// plus [[1] [3] [1]] [[1] [3] [1]]
}
