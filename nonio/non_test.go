package nonio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nonogram/grid"
	"github.com/katalvlaran/nonogram/nonio"
	"github.com/katalvlaran/nonogram/tile"
)

const nonSample = `title "Note"
catalogue "demo set"
width 3
height 3
goal "X..XXX.X."
rows
1
3
1
columns
1,1
3
1,1
`

func TestReadNON(t *testing.T) {
	g, goal, err := nonio.ReadNON(strings.NewReader(nonSample), "test")
	require.NoError(t, err)
	assert.Equal(t, "Note", g.Name)
	assert.Equal(t, "demo set", g.Metadata["catalogue"])
	assert.Equal(t, [][]int{{1}, {3}, {1}}, g.Rows)
	assert.Equal(t, [][]int{{1, 1}, {3}, {1, 1}}, g.Cols)
	require.NotNil(t, goal)
	assert.Equal(t, tile.Filled, goal.At(0, 0))
	assert.Equal(t, tile.Empty, goal.At(1, 0))
}

func TestWriteNON_RoundTrip(t *testing.T) {
	in := grid.InputGrid{
		Name: "square",
		Rows: [][]int{{2}, {2}},
		Cols: [][]int{{2}, {2}},
	}
	var buf bytes.Buffer
	require.NoError(t, nonio.WriteNON(&buf, in, nil))

	out, _, err := nonio.ReadNON(&buf, "roundtrip")
	require.NoError(t, err)
	assert.Equal(t, in.Name, out.Name)
	assert.Equal(t, in.Rows, out.Rows)
	assert.Equal(t, in.Cols, out.Cols)
}
