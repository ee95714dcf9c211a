package solver

import "errors"

// ErrContradictoryGrid names the case where line reduction proves no
// completion of the grid can satisfy every clue. Solve, LineSolve and
// Validate do not return it: they report that case as
// StatusContradictoryGrid (ValidationZero for Validate).
var ErrContradictoryGrid = errors.New("solver: contradictory grid")

// ErrNotLineSolvable is returned by LineSolve when reduction reaches a fixed
// point with UNKNOWN cells remaining and branching was not requested.
var ErrNotLineSolvable = errors.New("solver: grid is not line-solvable")

// ErrAborted is returned by Validate when the abort function supplied via
// WithAbort (or context cancellation via WithContext) stopped the solve
// before it finished. Solve and LineSolve report an abort as StatusAborted
// with a nil error.
var ErrAborted = errors.New("solver: solve aborted")

// ErrInvalidInput is returned when Solve/LineSolve/Validate is called with
// an InputGrid that fails grid.Validate.
var ErrInvalidInput = errors.New("solver: invalid input grid")
