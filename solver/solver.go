package solver

import (
	"github.com/katalvlaran/nonogram/binomial"
	"github.com/katalvlaran/nonogram/grid"
)

// Solver is the public facade over workGrid: it validates the input,
// builds a workGrid, and drives it to completion through Solve, LineSolve
// or Validate. Grounded on the original's RefSolver (solver.h/.cpp), minus
// the C++ virtual-interface indirection: a Go caller constructs one value
// and calls the method it needs.
type Solver struct {
	cfg Config
}

// New builds a Solver from the given options.
func New(opts ...Option) *Solver {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Solver{cfg: cfg}
}

// Solve enumerates completions of input, invoking cb for each one found, up
// to maxNbSolutions (0 means unbounded). It returns once the search is
// exhausted, cb requests a stop, the abort function fires, or the grid is
// proved contradictory.
func (s *Solver) Solve(input grid.InputGrid, maxNbSolutions int, cb SolutionCallback) (Status, error) {
	if err := grid.Validate(input); err != nil {
		return StatusContradictoryGrid, wrapInvalid(err)
	}
	w := newWorkGrid(input, s.cfg, binomial.New())
	if s.cfg.Stats != nil {
		s.cfg.Stats.MaxNbSolutions = uint32(maxNbSolutions)
	}
	if !w.initialPass() {
		return StatusContradictoryGrid, nil
	}

	sc := &searchControl{cb: cb, maxNbSolutions: maxNbSolutions}
	status := w.run(sc, true)
	if status == StatusContradictoryGrid && sc.nbFound > 0 {
		// Branching exhausted every alternative after already reporting
		// solutions along other branches: not itself a failure.
		return StatusOK, nil
	}
	return status, nil
}

// LineSolve runs reduction only, with branching disabled. It returns
// ErrNotLineSolvable if reduction reaches a fixed point with UNKNOWN cells
// remaining; the caller may still inspect the partial grid via the
// returned Solution when reportPartial is true.
func (s *Solver) LineSolve(input grid.InputGrid, reportPartial bool) (Solution, Status, error) {
	if err := grid.Validate(input); err != nil {
		return Solution{}, StatusContradictoryGrid, wrapInvalid(err)
	}
	w := newWorkGrid(input, s.cfg, binomial.New())
	if !w.initialPass() {
		return Solution{}, StatusContradictoryGrid, nil
	}

	sc := &searchControl{maxNbSolutions: 1}
	status := w.run(sc, false)
	switch status {
	case StatusOK:
		return Solution{Grid: grid.NewOutputGrid(w.g, input.Name), BranchingDepth: 0}, StatusOK, nil
	case StatusNotLineSolvable:
		if reportPartial {
			return Solution{Grid: grid.NewOutputGrid(w.g, input.Name), Partial: true}, StatusNotLineSolvable, ErrNotLineSolvable
		}
		return Solution{}, StatusNotLineSolvable, ErrNotLineSolvable
	default:
		return Solution{}, status, nil
	}
}

// Validate classifies input by solution count without requiring the caller
// to collect every solution: ValidationError for an input that fails
// grid.Validate or an aborted solve, ValidationZero when no completion
// exists (including a grid proved contradictory), ValidationUnique or
// ValidationMultiple otherwise. For ValidationUnique, the
// returned depth is the branching depth of that solution (0 means
// line-solvable).
func (s *Solver) Validate(input grid.InputGrid) (ValidationCode, int, error) {
	if err := grid.Validate(input); err != nil {
		return ValidationError, 0, wrapInvalid(err)
	}

	var found []Solution
	status, err := s.Solve(input, 2, func(sol Solution) bool {
		found = append(found, sol)
		return true
	})
	if err != nil {
		return ValidationError, 0, err
	}
	if status == StatusAborted {
		return ValidationError, 0, ErrAborted
	}
	if status == StatusContradictoryGrid && len(found) == 0 {
		return ValidationZero, 0, nil
	}

	switch len(found) {
	case 0:
		return ValidationZero, 0, nil
	case 1:
		return ValidationUnique, found[0].BranchingDepth, nil
	default:
		return ValidationMultiple, 0, nil
	}
}

func wrapInvalid(cause error) error {
	return &invalidInputError{cause: cause}
}

type invalidInputError struct {
	cause error
}

func (e *invalidInputError) Error() string {
	return ErrInvalidInput.Error() + ": " + e.cause.Error()
}

func (e *invalidInputError) Unwrap() []error {
	return []error{ErrInvalidInput, e.cause}
}
