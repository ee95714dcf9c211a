package lineutil

import (
	"github.com/katalvlaran/nonogram/binomial"
	"github.com/katalvlaran/nonogram/constraint"
	"github.com/katalvlaran/nonogram/tile"
)

// fullEngine carries the mutable state of one FullReduction (or
// PartialReduction) call: the known tiles being matched against, a reusable
// working buffer for the candidate under construction, and the running
// intersection of every candidate found compatible so far.
type fullEngine struct {
	known     tile.Line
	working   []tile.Tile
	accHasOne bool
	acc       []tile.Tile
	count     uint32
	cache     *binomial.Cache
}

func newFullEngine(known tile.Line, cache *binomial.Cache) *fullEngine {
	return &fullEngine{
		known:   known,
		working: make([]tile.Tile, known.Size()),
		acc:     make([]tile.Tile, known.Size()),
		cache:   cache,
	}
}

// compatibleRange reports whether working[start:end] agrees with
// known[start:end] at every position (Unknown on either side is always
// compatible).
func (e *fullEngine) compatibleRange(start, end int) bool {
	known := e.known.Tiles
	work := e.working
	for i := start; i < end; i++ {
		k, w := known[i], work[i]
		if k == tile.Empty && w == tile.Filled {
			return false
		}
		if k == tile.Filled && w == tile.Empty {
			return false
		}
	}
	return true
}

// commitCandidate is invoked once the working buffer holds one complete,
// compatible candidate: it folds the candidate into the running
// intersection and bumps the count.
func (e *fullEngine) commitCandidate() {
	if !e.accHasOne {
		copy(e.acc, e.working)
		e.accHasOne = true
	} else {
		for i, w := range e.working {
			if e.acc[i] != w {
				e.acc[i] = tile.Unknown
			}
		}
	}
	e.count = binomial.SaturatingAdd(e.count, 1)
}

// place recursively fills segs[segIdx:] into working[lineIdx:], trying
// every feasible number of leading Empty cells before the current segment,
// and invokes commitCandidate for every complete compatible placement.
func (e *fullEngine) place(segs []int, segIdx, lineIdx, remainingZeros int) {
	n := len(e.working)
	if segIdx == len(segs) {
		for i := lineIdx; i < n; i++ {
			e.working[i] = tile.Empty
		}
		if e.compatibleRange(lineIdx, n) {
			e.commitCandidate()
		}
		return
	}

	segSize := segs[segIdx]
	isLast := segIdx+1 == len(segs)
	for preZeros := 0; preZeros <= remainingZeros; preZeros++ {
		for i := 0; i < preZeros; i++ {
			e.working[lineIdx+i] = tile.Empty
		}
		segStart := lineIdx + preZeros
		for i := 0; i < segSize; i++ {
			e.working[segStart+i] = tile.Filled
		}
		next := segStart + segSize
		if !isLast {
			e.working[next] = tile.Empty
			next++
		}
		if e.compatibleRange(lineIdx, next) {
			e.place(segs, segIdx+1, next, remainingZeros-preZeros)
		}
	}
}

// FullReduction exhaustively enumerates every feasible placement of c's
// segments that is compatible with known, reducing them all into one line.
// It always returns FullyReduced == true (the counter may still saturate).
// cache may be nil, in which case alternative counting still returns the
// exact count (capped at uint32 range) since it is computed by direct
// enumeration rather than the binomial shortcut.
func FullReduction(c constraint.LineConstraint, known tile.Line, cache *binomial.Cache) Reduction {
	n := known.Size()
	nbZeros := n - c.MinLineSize()
	e := newFullEngine(known, cache)
	if nbZeros < 0 {
		return Reduction{ReducedLine: known, NbAlternatives: 0, FullyReduced: true}
	}

	segs := c.Segments()
	if len(segs) == 0 {
		for i := range e.working {
			e.working[i] = tile.Empty
		}
		if e.compatibleRange(0, n) {
			e.commitCandidate()
		}
	} else {
		e.place(segs, 0, 0, nbZeros)
	}

	if e.count == 0 {
		return Reduction{ReducedLine: known, NbAlternatives: 0, FullyReduced: true}
	}
	return Reduction{
		ReducedLine:    tile.FromTiles(known.Axis, known.Index, e.acc),
		NbAlternatives: e.count,
		FullyReduced:   true,
	}
}
