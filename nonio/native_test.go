package nonio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nonogram/grid"
	"github.com/katalvlaran/nonogram/nonio"
)

const nativeSample = `# a comment
GRID note
---
catalogue: demo
---
ROWS
[ 1 ]
[ 3 ]
[ 1 ]
COLUMNS
[ 1 1 ]
[ 3 ]
[ 1 1 ]

GRID second
ROWS
[ 0 ]
COLUMNS
[ 0 ]
`

func TestReadNative_MultipleGrids(t *testing.T) {
	grids, err := nonio.ReadNative(strings.NewReader(nativeSample), "test")
	require.NoError(t, err)
	require.Len(t, grids, 2)

	assert.Equal(t, "note", grids[0].Name)
	assert.Equal(t, [][]int{{1}, {3}, {1}}, grids[0].Rows)
	assert.Equal(t, [][]int{{1, 1}, {3}, {1, 1}}, grids[0].Cols)
	assert.Equal(t, "demo", grids[0].Metadata["catalogue"])

	assert.Equal(t, "second", grids[1].Name)
	assert.Equal(t, [][]int{{}}, grids[1].Rows)
}

func TestWriteNative_RoundTrip(t *testing.T) {
	in := []grid.InputGrid{{
		Name: "square",
		Rows: [][]int{{2}, {2}},
		Cols: [][]int{{2}, {2}},
	}}
	var buf bytes.Buffer
	require.NoError(t, nonio.WriteNative(&buf, in))

	out, err := nonio.ReadNative(&buf, "roundtrip")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, in[0].Rows, out[0].Rows)
	assert.Equal(t, in[0].Cols, out[0].Cols)
}

func TestReadNative_UnknownDirective(t *testing.T) {
	_, err := nonio.ReadNative(strings.NewReader("GRID x\nBOGUS\n"), "test")
	assert.ErrorIs(t, err, nonio.ErrUnknownDirective)
	var perr *nonio.ParseError
	assert.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Line)
}
