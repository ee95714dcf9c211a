package solver

import (
	"sort"

	"github.com/katalvlaran/nonogram/binomial"
	"github.com/katalvlaran/nonogram/constraint"
	"github.com/katalvlaran/nonogram/grid"
	"github.com/katalvlaran/nonogram/lineutil"
	"github.com/katalvlaran/nonogram/tile"
)

// workGrid owns a grid.Grid plus the per-line bookkeeping needed to drive
// the reduction/branch loop: one entry per axis (0 = Row, 1 = Col), one
// slot per line within that axis. Grounded on the original's WorkGrid
// (work_grid.h): constraints/m_alternatives/m_line_completed/
// m_line_to_be_reduced translated field-for-field.
type workGrid struct {
	g            *grid.Grid
	constraints  [2][]constraint.LineConstraint
	completed    [2][]bool
	updated      [2][]bool // pending reduction ("dirty")
	fullyReduced [2][]bool
	nbAlt        [2][]uint32

	cache *binomial.Cache
	cfg   Config

	depth          int
	maxAlt         uint32
	contradictory  bool
}

func newWorkGrid(input grid.InputGrid, cfg Config, cache *binomial.Cache) *workGrid {
	w := &workGrid{
		g:      grid.NewGrid(input.Width(), input.Height()),
		cache:  cache,
		cfg:    cfg,
		maxAlt: cfg.Policy.InitialMaxNbAlternatives(),
	}
	w.constraints[tile.Row] = make([]constraint.LineConstraint, len(input.Rows))
	for i, segs := range input.Rows {
		w.constraints[tile.Row][i] = constraint.New(segs)
	}
	w.constraints[tile.Col] = make([]constraint.LineConstraint, len(input.Cols))
	for i, segs := range input.Cols {
		w.constraints[tile.Col][i] = constraint.New(segs)
	}
	for axis := 0; axis < 2; axis++ {
		n := len(w.constraints[axis])
		w.completed[axis] = make([]bool, n)
		w.updated[axis] = make([]bool, n)
		w.fullyReduced[axis] = make([]bool, n)
		w.nbAlt[axis] = make([]uint32, n)
	}
	return w
}

// clone deep-copies the grid and all per-line bookkeeping, sharing only
// the binomial cache, per spec.md §9's "deep copy for branching".
func (w *workGrid) clone() *workGrid {
	out := &workGrid{
		g:             w.g.Clone(),
		cache:         w.cache,
		cfg:           w.cfg,
		depth:         w.depth,
		maxAlt:        w.maxAlt,
		contradictory: w.contradictory,
	}
	for axis := 0; axis < 2; axis++ {
		out.constraints[axis] = append([]constraint.LineConstraint(nil), w.constraints[axis]...)
		out.completed[axis] = append([]bool(nil), w.completed[axis]...)
		out.updated[axis] = append([]bool(nil), w.updated[axis]...)
		out.fullyReduced[axis] = append([]bool(nil), w.fullyReduced[axis]...)
		out.nbAlt[axis] = append([]uint32(nil), w.nbAlt[axis]...)
	}
	return out
}

func (w *workGrid) nbLines(axis int) int { return len(w.constraints[axis]) }

func (w *workGrid) lineSize(axis int) int {
	if axis == int(tile.Row) {
		return w.g.Width
	}
	return w.g.Height
}

func (w *workGrid) readLine(axis, index int) tile.Line {
	return w.g.Line(tile.Axis(axis), index)
}

func (w *workGrid) orthogonal(axis int) int {
	if axis == int(tile.Row) {
		return int(tile.Col)
	}
	return int(tile.Row)
}

// applyLine merges a newly reduced line into the grid, emitting DELTA_LINE
// and propagating the `updated` flag to every orthogonal line whose tile
// actually changed. Returns whether any tile changed, and ok == false when
// the merge was itself contradictory.
func (w *workGrid) applyLine(axis, index int, reduced tile.Line, nbAlternatives uint32, fullyReduced bool) (changed bool, ok bool) {
	old := w.readLine(axis, index)
	merged, err := old.Add(reduced)
	if err != nil {
		return false, false
	}
	delta := old.Delta(merged)
	changedCells := false
	for i, t := range delta.Tiles {
		if t == tile.Unknown {
			continue
		}
		changedCells = true
		w.setCell(axis, index, i, t)
	}

	if nbAlternatives < w.nbAlt[axis][index] || w.nbAlt[axis][index] == 0 {
		w.nbAlt[axis][index] = nbAlternatives
	}
	if fullyReduced {
		w.fullyReduced[axis][index] = true
	}
	if merged.IsComplete() {
		w.completed[axis][index] = true
	}

	if changedCells {
		w.cfg.Observer(EventDeltaLine, &delta, w.depth, nbAlternatives)
		w.cfg.Stats.recordObserverCall()
	}
	return changedCells, true
}

// setCell writes a single cell and marks the orthogonal line dirty.
func (w *workGrid) setCell(axis, index, pos int, t tile.Tile) {
	var x, y int
	if axis == int(tile.Row) {
		x, y = pos, index
	} else {
		x, y = index, pos
	}
	w.g.Set(x, y, t)

	orth := w.orthogonal(axis)
	w.updated[orth][pos] = true
	w.fullyReduced[orth][pos] = false
	if p, ok := w.cfg.Policy.(interface{ EstimateNbAlternatives(uint32) uint32 }); ok {
		w.nbAlt[orth][pos] = p.EstimateNbAlternatives(w.nbAlt[orth][pos])
	}
}

// initialPass runs LineConstraint.TrivialReduction and
// TrivialAlternatives over every line, per spec.md §4.4's INITIAL_PASS.
func (w *workGrid) initialPass() bool {
	totalLines := w.nbLines(int(tile.Row)) + w.nbLines(int(tile.Col))
	linesDone := 0
	for axis := 0; axis < 2; axis++ {
		size := w.lineSize(axis)
		for idx, c := range w.constraints[axis] {
			known := w.readLine(axis, idx)
			w.cfg.Observer(EventKnownLine, &known, w.depth, w.nbAlt[axis][idx])
			if totalLines > 0 {
				w.cfg.Observer(EventProgress, nil, w.depth, progressMisc(float32(linesDone)/float32(totalLines)))
				w.cfg.Stats.recordObserverCall()
			}
			linesDone++

			reduced, err := c.TrivialReduction(tile.Axis(axis), idx, size)
			if err != nil {
				w.contradictory = true
				return false
			}
			nbAlt, err := c.TrivialAlternatives(size, w.cache)
			if err != nil {
				w.contradictory = true
				return false
			}
			w.cfg.Stats.recordInitialAlternatives(nbAlt)
			w.nbAlt[axis][idx] = nbAlt

			if nbAlt == 0 || !reduced.Compatible(known) {
				w.contradictory = true
				return false
			}
			if _, ok := w.applyLine(axis, idx, reduced, nbAlt, false); !ok {
				w.contradictory = true
				return false
			}
		}
	}
	return true
}

// pendingLines returns the indices of axis's lines whose `updated` flag is
// set and which are not yet completed.
func (w *workGrid) pendingLines(axis int) []int {
	var out []int
	for idx, dirty := range w.updated[axis] {
		if dirty && !w.completed[axis][idx] {
			out = append(out, idx)
		}
	}
	return out
}

// partialReductionPass runs linear reduction on every dirty, incomplete
// line (PartialReduction instead, for a line with more than
// 2*PartialReductionWidth segments), per spec.md §4.4's PARTIAL_REDUCTION
// state.
func (w *workGrid) partialReductionPass() (changed bool, ok bool) {
	w.cfg.Stats.recordFullGridPass()
	for axis := 0; axis < 2; axis++ {
		for _, idx := range w.pendingLines(axis) {
			known := w.readLine(axis, idx)
			c := w.constraints[axis][idx]

			var red lineutil.Reduction
			if w.cfg.PartialReductionWidth > 0 && c.NbSegments() > 2*w.cfg.PartialReductionWidth {
				red = lineutil.PartialReduction(c, known, w.cfg.PartialReductionWidth)
			} else {
				red = lineutil.LinearReduction(c, known)
			}
			w.updated[axis][idx] = false
			if red.NbAlternatives == 0 {
				w.contradictory = true
				return changed, false
			}
			lineChanged, applyOK := w.applyLine(axis, idx, red.ReducedLine, red.NbAlternatives, red.FullyReduced)
			if !applyOK {
				w.contradictory = true
				return changed, false
			}
			w.cfg.Stats.recordSingleLinePass(lineChanged)
			changed = changed || lineChanged
		}
	}
	return changed, true
}

// fullReductionCandidates returns incomplete lines whose cached
// nb_alternatives is at or below w.maxAlt, i.e. eligible for a full
// reduction pass this round; skipped reports how many were over budget.
func (w *workGrid) fullReductionCandidates() (eligible [][2]int, skipped int) {
	for axis := 0; axis < 2; axis++ {
		for idx := range w.constraints[axis] {
			if w.completed[axis][idx] || w.fullyReduced[axis][idx] {
				continue
			}
			if w.nbAlt[axis][idx] <= w.maxAlt {
				eligible = append(eligible, [2]int{axis, idx})
			} else {
				skipped++
			}
		}
	}
	return eligible, skipped
}

// fullReductionPass runs exhaustive reduction on every eligible line, per
// spec.md §4.4's FULL_REDUCTION state. Returns whether the grid changed and
// how many lines were skipped for exceeding the threshold.
func (w *workGrid) fullReductionPass() (changed bool, skipped int, ok bool) {
	eligible, skipped := w.fullReductionCandidates()
	w.cfg.Stats.recordFullGridPass()
	for _, pair := range eligible {
		axis, idx := pair[0], pair[1]
		known := w.readLine(axis, idx)
		c := w.constraints[axis][idx]

		red := lineutil.FullReduction(c, known, w.cache)
		if red.NbAlternatives == 0 {
			w.contradictory = true
			return changed, skipped, false
		}
		lineChanged, applyOK := w.applyLine(axis, idx, red.ReducedLine, red.NbAlternatives, red.FullyReduced)
		if !applyOK {
			w.contradictory = true
			return changed, skipped, false
		}
		w.cfg.Stats.recordReduction(red.NbAlternatives, lineChanged)
		w.cfg.Stats.recordSingleLinePass(lineChanged)
		changed = changed || lineChanged
	}
	return changed, skipped, true
}

// allLinesCompleted reports whether every row and column has no Unknown
// cell left.
func (w *workGrid) allLinesCompleted() bool {
	for axis := 0; axis < 2; axis++ {
		for _, done := range w.completed[axis] {
			if !done {
				return false
			}
		}
	}
	return true
}

// incompletePrefix returns every (axis, index) pair not yet completed,
// sorted by cached nb_alternatives ascending, so branching picks the
// least-ambiguous line first.
func (w *workGrid) incompletePrefix() [][2]int {
	var out [][2]int
	for axis := 0; axis < 2; axis++ {
		for idx, done := range w.completed[axis] {
			if !done {
				out = append(out, [2]int{axis, idx})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ai, aj := out[i], out[j]
		return w.nbAlt[ai[0]][ai[1]] < w.nbAlt[aj[0]][aj[1]]
	})
	return out
}

// reduceToFixedPoint runs PARTIAL_REDUCTION / FULL_REDUCTION until the grid
// stops changing or is proven contradictory, adjusting maxAlt via the
// configured SelectionPolicy between full passes.
func (w *workGrid) reduceToFixedPoint() (branchingReady bool, status Status) {
	for {
		if w.cfg.aborted() {
			return false, StatusAborted
		}
		partialChanged, ok := w.partialReductionPass()
		if !ok {
			return false, StatusContradictoryGrid
		}
		if w.allLinesCompleted() {
			return false, StatusOK
		}

		if w.cfg.aborted() {
			return false, StatusAborted
		}
		fullChanged, skipped, ok := w.fullReductionPass()
		if !ok {
			return false, StatusContradictoryGrid
		}
		if w.allLinesCompleted() {
			return false, StatusOK
		}

		gridChanged := partialChanged || fullChanged
		w.maxAlt = w.cfg.Policy.NextMaxNbAlternatives(w.maxAlt, gridChanged, skipped)
		w.cfg.Logger.Debug().
			Int("depth", w.depth).
			Bool("grid_changed", gridChanged).
			Int("skipped", skipped).
			Uint32("max_alt", w.maxAlt).
			Msg("reduction pass")
		if w.cfg.Policy.SwitchToBranching(w.maxAlt, gridChanged, skipped) {
			return true, StatusOK
		}
	}
}
