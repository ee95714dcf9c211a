package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/nonogram/grid"
	"github.com/katalvlaran/nonogram/solver"
)

func TestStats_NilSafe(t *testing.T) {
	var s *solver.Stats
	assert.NotPanics(t, func() {
		_, err := solver.New(solver.WithStats(s)).Solve(grid.InputGrid{
			Rows: [][]int{{1}},
			Cols: [][]int{{1}},
		}, 0, func(solver.Solution) bool { return true })
		_ = err
	})
}

func TestStats_AccumulatesAcrossBranches(t *testing.T) {
	input := grid.InputGrid{
		Rows: [][]int{{3}, {1, 1}, {1, 1}, {3}, {3}, {3}, {1, 1}, {1, 1}, {3}, {3}},
		Cols: [][]int{{2}, {2}, {5}, {1}, {3}, {2}, {2}, {5}, {1}, {3}},
	}
	var stats solver.Stats
	_, err := solver.New(solver.WithStats(&stats)).Solve(input, 0, func(solver.Solution) bool { return true })
	assert.NoError(t, err)
	assert.Equal(t, uint32(2), stats.NbSolutions)
	assert.True(t, stats.NbBranchingCalls > 0)
}
