package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nonogram/constraint"
	"github.com/katalvlaran/nonogram/tile"
)

// TestNew_EmptyAndZeroClueAreEquivalent checks spec.md Scenario F: a clue
// written as the empty sequence and one written as a single zero must be
// treated identically (a zero is a non-meaningful separator, not a
// zero-length segment).
func TestNew_EmptyAndZeroClueAreEquivalent(t *testing.T) {
	empty := constraint.New(nil)
	zero := constraint.New([]int{0})

	assert.Equal(t, empty, zero)
	assert.Equal(t, empty.Segments(), zero.Segments())
	assert.Equal(t, empty.MinLineSize(), zero.MinLineSize())
	assert.Equal(t, 0, zero.NbSegments())

	const size = 4
	known := tile.New(tile.Row, 0, size, tile.Unknown)

	emptyReduced, err := empty.TrivialReduction(tile.Row, 0, size)
	require.NoError(t, err)
	zeroReduced, err := zero.TrivialReduction(tile.Row, 0, size)
	require.NoError(t, err)
	assert.Equal(t, emptyReduced.String(), zeroReduced.String())

	emptyAlt, err := empty.TrivialAlternatives(size, nil)
	require.NoError(t, err)
	zeroAlt, err := zero.TrivialAlternatives(size, nil)
	require.NoError(t, err)
	assert.Equal(t, emptyAlt, zeroAlt)

	emptyCandidates := empty.BuildAllPossibleLines(known)
	zeroCandidates := zero.BuildAllPossibleLines(known)
	require.Len(t, zeroCandidates, len(emptyCandidates))
	for i := range emptyCandidates {
		assert.Equal(t, emptyCandidates[i].String(), zeroCandidates[i].String())
	}
}
