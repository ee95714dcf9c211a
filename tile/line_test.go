package tile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nonogram/tile"
)

func parseLine(axis tile.Axis, index int, s string) tile.Line {
	tiles := make([]tile.Tile, len(s))
	for i, r := range s {
		switch r {
		case '#':
			tiles[i] = tile.Filled
		case '.':
			tiles[i] = tile.Empty
		default:
			tiles[i] = tile.Unknown
		}
	}
	return tile.FromTiles(axis, index, tiles)
}

func TestLine_AddCompatible(t *testing.T) {
	l1 := parseLine(tile.Row, 0, "....##??????")
	l2 := parseLine(tile.Row, 0, "..????##..??")

	require.True(t, l1.Compatible(l2))
	sum, err := l1.Add(l2)
	require.NoError(t, err)
	assert.Equal(t, "....####..??", sum.String())
}

func TestLine_AddIncompatible(t *testing.T) {
	l1 := parseLine(tile.Row, 0, "#.")
	l2 := parseLine(tile.Row, 0, ".#")

	assert.False(t, l1.Compatible(l2))
	_, err := l1.Add(l2)
	assert.ErrorIs(t, err, tile.ErrIncompatible)
}

func TestLine_Reduce(t *testing.T) {
	l1 := parseLine(tile.Row, 0, "??..######..")
	l2 := parseLine(tile.Row, 0, "??....######")

	reduced := l1.Reduce(l2)
	assert.Equal(t, "??..??####??", reduced.String())
}

func TestLine_Delta(t *testing.T) {
	older := parseLine(tile.Row, 0, "..????##..??")
	newer := parseLine(tile.Row, 0, "....####..??")

	delta := older.Delta(newer)
	assert.Equal(t, "??..##??????", delta.String())
}

func TestLine_IsCompleteAndRuns(t *testing.T) {
	l := parseLine(tile.Row, 0, "###..#.##")
	assert.True(t, l.IsComplete())
	assert.Equal(t, []int{3, 1, 2}, l.Runs())

	partial := parseLine(tile.Row, 0, "###..#.?#")
	assert.False(t, partial.IsComplete())
}

func TestLine_MismatchedIdentity(t *testing.T) {
	a := tile.New(tile.Row, 0, 3, tile.Unknown)
	b := tile.New(tile.Col, 0, 3, tile.Unknown)
	assert.False(t, a.Compatible(b))
	_, err := a.Add(b)
	assert.ErrorIs(t, err, tile.ErrAxisMismatch)

	c := tile.New(tile.Row, 0, 4, tile.Unknown)
	_, err = a.Add(c)
	assert.ErrorIs(t, err, tile.ErrSizeMismatch)
}
