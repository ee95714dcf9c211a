package solver

import "github.com/katalvlaran/nonogram/grid"

// Solution is one completion of an InputGrid.
type Solution struct {
	Grid           grid.OutputGrid
	BranchingDepth int
	// Partial is true only for the LineSolve PARTIAL result: a
	// not-fully-reduced grid returned instead of a genuine completion.
	Partial bool
}

// SolutionCallback receives solutions as they are found. Returning false
// requests the search stop after this solution.
type SolutionCallback func(Solution) bool
