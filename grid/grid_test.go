package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nonogram/grid"
	"github.com/katalvlaran/nonogram/tile"
)

func TestGrid_SetPropagatesToBothMirrors(t *testing.T) {
	g := grid.NewGrid(3, 2)
	g.Set(1, 0, tile.Filled)

	assert.Equal(t, tile.Filled, g.At(1, 0))
	assert.Equal(t, "?#?", g.Row(0).String())
	assert.Equal(t, "#?", g.Col(1).String())
}

func TestGrid_SetLineRow(t *testing.T) {
	g := grid.NewGrid(4, 3)
	line := tile.FromTiles(tile.Row, 1, []tile.Tile{tile.Filled, tile.Empty, tile.Filled, tile.Unknown})
	g.SetLine(line)

	assert.Equal(t, "#.#?", g.Row(1).String())
	assert.Equal(t, tile.Filled, g.At(0, 1))
	assert.Equal(t, tile.Empty, g.At(1, 1))
}

func TestGrid_SetLineCol(t *testing.T) {
	g := grid.NewGrid(2, 3)
	line := tile.FromTiles(tile.Col, 0, []tile.Tile{tile.Filled, tile.Filled, tile.Empty})
	g.SetLine(line)

	assert.Equal(t, "##.", g.Col(0).String())
	assert.Equal(t, tile.Filled, g.At(0, 0))
	assert.Equal(t, tile.Filled, g.At(0, 1))
	assert.Equal(t, tile.Empty, g.At(0, 2))
}

func TestGrid_Clone(t *testing.T) {
	g := grid.NewGrid(2, 2)
	g.Set(0, 0, tile.Filled)
	clone := g.Clone()
	clone.Set(1, 1, tile.Filled)

	assert.Equal(t, tile.Unknown, g.At(1, 1))
	assert.Equal(t, tile.Filled, clone.At(1, 1))
	assert.Equal(t, tile.Filled, clone.At(0, 0))
}

func TestConstraintsFromLine(t *testing.T) {
	line := tile.FromTiles(tile.Row, 0, []tile.Tile{tile.Filled, tile.Filled, tile.Empty, tile.Filled})
	assert.Equal(t, []int{2, 1}, grid.ConstraintsFromLine(line))
}

func TestValidate_OK(t *testing.T) {
	in := grid.InputGrid{
		Rows: [][]int{{1}, {1}},
		Cols: [][]int{{2}},
	}
	require.NoError(t, grid.Validate(in))
}

func TestValidate_MismatchedTotals(t *testing.T) {
	in := grid.InputGrid{
		Rows: [][]int{{1}, {1}},
		Cols: [][]int{{1}},
	}
	err := grid.Validate(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, grid.ErrInvalidInput)
}

func TestValidate_RowTooLong(t *testing.T) {
	in := grid.InputGrid{
		Rows: [][]int{{5}},
		Cols: [][]int{{1}, {1}, {1}},
	}
	err := grid.Validate(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, grid.ErrInvalidInput)
}

func TestValidate_EmptyGrid(t *testing.T) {
	err := grid.Validate(grid.InputGrid{})
	require.Error(t, err)
	assert.ErrorIs(t, err, grid.ErrInvalidInput)
}
