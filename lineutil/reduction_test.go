package lineutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nonogram/constraint"
	"github.com/katalvlaran/nonogram/lineutil"
	"github.com/katalvlaran/nonogram/tile"
)

func unknownLine(size int) tile.Line {
	return tile.New(tile.Row, 0, size, tile.Unknown)
}

func parseKnown(s string) tile.Line {
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
	return tile.FromTiles(tile.Row, 0, tiles)
}

// Scenario D from the spec.
func TestFullReduction_SingleSegmentExact(t *testing.T) {
	c := constraint.New([]int{6, 1})

	r := lineutil.FullReduction(c, unknownLine(8), nil)
	require.Equal(t, uint32(1), r.NbAlternatives)
	assert.Equal(t, "######.#", r.ReducedLine.String())
	assert.True(t, r.FullyReduced)

	r2 := lineutil.FullReduction(c, unknownLine(10), nil)
	require.Equal(t, uint32(6), r2.NbAlternatives)
	assert.Equal(t, "??####????", r2.ReducedLine.String())
}

// Scenario E from the spec.
func TestFullReduction_Contradiction(t *testing.T) {
	c := constraint.New([]int{3})
	known := parseKnown("????####.")

	r := lineutil.FullReduction(c, known, nil)
	assert.Equal(t, uint32(0), r.NbAlternatives)
}

func TestFullReduction_KnownTilesNarrowChoices(t *testing.T) {
	c := constraint.New([]int{2, 1})
	known := parseKnown("?????")

	r := lineutil.FullReduction(c, known, nil)
	assert.True(t, r.NbAlternatives > 0)
	assert.True(t, r.FullyReduced)
}

func TestLinearReduction_BlankClue(t *testing.T) {
	c := constraint.New(nil)
	r := lineutil.LinearReduction(c, unknownLine(4))
	assert.Equal(t, "....", r.ReducedLine.String())
	assert.Equal(t, uint32(1), r.NbAlternatives)
}

func TestLinearReduction_TightConstraintForcesOverlap(t *testing.T) {
	c := constraint.New([]int{6, 1})
	r := lineutil.LinearReduction(c, unknownLine(8))
	assert.Equal(t, uint32(1), r.NbAlternatives)
	assert.Equal(t, "######.#", r.ReducedLine.String())
	assert.False(t, r.FullyReduced)
}

func TestPartialReduction_FallsBackToFullWhenSmall(t *testing.T) {
	c := constraint.New([]int{1, 1})
	full := lineutil.FullReduction(c, unknownLine(5), nil)
	partial := lineutil.PartialReduction(c, unknownLine(5), 1)
	assert.Equal(t, full.ReducedLine.String(), partial.ReducedLine.String())
	assert.Equal(t, full.NbAlternatives, partial.NbAlternatives)
}

func TestPartialReduction_BoundaryOnly(t *testing.T) {
	c := constraint.New([]int{1, 1, 1, 1, 1})
	known := unknownLine(20)
	r := lineutil.PartialReduction(c, known, 1)
	assert.True(t, r.NbAlternatives > 0)
	assert.False(t, r.FullyReduced)
}
