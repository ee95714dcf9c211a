package solver

import (
	"github.com/katalvlaran/nonogram/grid"
	"github.com/katalvlaran/nonogram/tile"
)

// searchControl is shared across every workGrid clone spawned by a single
// top-level Solve/LineSolve call: it tracks how many solutions have been
// found and whether the caller's callback has asked to stop. Unlike Stats
// (itself already a shared pointer threaded through Config, so branch
// counters accumulate into the caller's struct as a side effect of every
// clone using the same pointer), this needs its own home because "stop"
// must short-circuit sibling branches, not just accumulate.
type searchControl struct {
	cb             SolutionCallback
	maxNbSolutions int
	nbFound        int
	stopRequested  bool
}

func (s *searchControl) emit(sol Solution) {
	s.nbFound++
	if s.cb != nil && !s.cb(sol) {
		s.stopRequested = true
	}
	if s.maxNbSolutions > 0 && s.nbFound >= s.maxNbSolutions {
		s.stopRequested = true
	}
}

// run drives w from its current state to either a solution, a contradiction,
// an abort, or (if branchingAllowed is false and the grid is not yet
// complete) NOT_LINE_SOLVABLE; recursing into branch() as needed.
func (w *workGrid) run(sc *searchControl, branchingAllowed bool) Status {
	_, status := w.reduceToFixedPoint()
	if status != StatusOK {
		return status
	}
	if w.allLinesCompleted() {
		sc.emit(Solution{
			Grid:           grid.NewOutputGrid(w.g, ""),
			BranchingDepth: w.depth,
		})
		w.cfg.Observer(EventSolvedGrid, nil, w.depth, 0)
		w.cfg.Stats.recordObserverCall()
		w.cfg.Stats.recordSolution()
		return StatusOK
	}
	if !branchingAllowed {
		return StatusNotLineSolvable
	}
	// reduceToFixedPoint only returns StatusOK with the grid incomplete
	// when its SelectionPolicy asked to switch to branching.
	return w.branch(sc)
}

// branch picks the least-ambiguous incomplete line, enumerates its
// remaining alternatives, and recursively solves a cloned workGrid per
// alternative, per spec.md §4.5.
func (w *workGrid) branch(sc *searchControl) Status {
	prefix := w.incompletePrefix()
	if len(prefix) == 0 {
		return StatusOK
	}
	axis, idx := prefix[0][0], prefix[0][1]
	known := w.readLine(axis, idx)
	alternatives := w.constraints[axis][idx].BuildAllPossibleLines(known)

	w.cfg.Observer(EventBranching, &known, w.depth, uint32(len(alternatives)))
	w.cfg.Stats.recordObserverCall()
	w.cfg.Stats.recordBranching(w.depth, uint32(len(alternatives)))
	w.cfg.Logger.Debug().
		Int("depth", w.depth).
		Str("axis", tile.Axis(axis).String()).
		Int("index", idx).
		Int("alternatives", len(alternatives)).
		Msg("branching")

	anyNonContradictory := false
	for i, alt := range alternatives {
		if sc.stopRequested {
			break
		}
		if w.cfg.aborted() {
			return StatusAborted
		}
		w.cfg.Observer(EventBranching, nil, w.depth+1, 0)
		w.cfg.Stats.recordObserverCall()
		if w.depth == 0 && len(alternatives) > 0 {
			w.cfg.Observer(EventProgress, nil, w.depth, progressMisc(float32(i)/float32(len(alternatives))))
			w.cfg.Stats.recordObserverCall()
		}

		child := w.clone()
		child.depth = w.depth + 1
		if _, ok := child.applyLine(axis, idx, alt, 1, true); !ok {
			continue
		}

		status := child.run(sc, true)
		switch status {
		case StatusAborted:
			return StatusAborted
		case StatusOK:
			anyNonContradictory = true
		case StatusContradictoryGrid:
			// try the next alternative
		}
	}
	if !anyNonContradictory {
		return StatusContradictoryGrid
	}
	return StatusOK
}
