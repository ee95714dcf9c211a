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

const ninSample = "3 3\n1\n3\n1\n1 1\n3\n1 1\n"

func TestReadNIN(t *testing.T) {
	g, err := nonio.ReadNIN(strings.NewReader(ninSample), "test")
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, [][]int{{1}, {3}, {1}}, g.Rows)
	assert.Equal(t, [][]int{{1, 1}, {3}, {1, 1}}, g.Cols)
}

func TestWriteNIN_RoundTrip(t *testing.T) {
	in := grid.InputGrid{
		Rows: [][]int{{1}, {0}},
		Cols: [][]int{{1}, {1}},
	}
	var buf bytes.Buffer
	require.NoError(t, nonio.WriteNIN(&buf, in))

	out, err := nonio.ReadNIN(&buf, "roundtrip")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1}, {}}, out.Rows)
	assert.Equal(t, in.Cols, out.Cols)
}

func TestReadNIN_UnexpectedEOF(t *testing.T) {
	_, err := nonio.ReadNIN(strings.NewReader("2 2\n1\n"), "test")
	assert.ErrorIs(t, err, nonio.ErrUnexpectedEOF)
}
