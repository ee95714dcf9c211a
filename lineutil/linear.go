package lineutil

import (
	"github.com/katalvlaran/nonogram/binomial"
	"github.com/katalvlaran/nonogram/constraint"
	"github.com/katalvlaran/nonogram/tile"
)

// SegmentRange is the feasible interval of start positions for one clue
// segment, bounded by known Empty cells only (Filled cells are not used to
// tighten the range, which keeps this computation linear at the cost of a
// possibly looser bound — see LinearReduction).
type SegmentRange struct {
	Leftmost  int
	Rightmost int
}

// leftmostStarts greedily packs segs as far left as possible, skipping over
// any known Empty cell (a segment may never cover one). Returns nil if no
// placement fits within n positions.
func leftmostStarts(known []tile.Tile, segs []int) []int {
	n := len(known)
	starts := make([]int, len(segs))
	pos := 0
	for i, seg := range segs {
		start := pos
		for {
			blocked := -1
			for j := start; j < start+seg; j++ {
				if j >= n {
					return nil
				}
				if known[j] == tile.Empty {
					blocked = j
					break
				}
			}
			if blocked < 0 {
				break
			}
			start = blocked + 1
		}
		starts[i] = start
		pos = start + seg + 1
	}
	return starts
}

// reversedTiles returns a new slice with tiles in reverse order.
func reversedTiles(t []tile.Tile) []tile.Tile {
	out := make([]tile.Tile, len(t))
	for i, v := range t {
		out[len(t)-1-i] = v
	}
	return out
}

func reversedInts(s []int) []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

// LinearReduction computes, for every segment, the interval of feasible
// start positions via two linear passes (leftmost packing, then rightmost
// packing on the mirrored line), then derives forced-Filled cells (the
// overlap of every segment's leftmost and rightmost placement), forced-
// Empty cells (outside the union of any segment's feasible range), and an
// upper-bound estimate of the alternative count. It never claims
// FullyReduced.
func LinearReduction(c constraint.LineConstraint, known tile.Line) Reduction {
	n := known.Size()
	segs := c.Segments()

	if len(segs) == 0 {
		blank := known.Blank(tile.Empty)
		if !blank.Compatible(known) {
			return Reduction{ReducedLine: known, NbAlternatives: 0, FullyReduced: false}
		}
		return Reduction{ReducedLine: blank, NbAlternatives: 1, FullyReduced: false}
	}

	left := leftmostStarts(known.Tiles, segs)
	if left == nil {
		return Reduction{ReducedLine: known, NbAlternatives: 0, FullyReduced: false}
	}
	rightStartsReversed := leftmostStarts(reversedTiles(known.Tiles), reversedInts(segs))
	if rightStartsReversed == nil {
		return Reduction{ReducedLine: known, NbAlternatives: 0, FullyReduced: false}
	}
	// Translate reversed-line start positions back into forward-line start
	// positions: a segment of length s starting at r in the reversed line
	// occupies [n-r-s, n-r-1] in the forward line, i.e. starts at n-r-s.
	right := make([]int, len(segs))
	for i, seg := range segs {
		rRev := rightStartsReversed[len(segs)-1-i]
		right[i] = n - rRev - seg
	}

	ranges := make([]SegmentRange, len(segs))
	for i := range segs {
		ranges[i] = SegmentRange{Leftmost: left[i], Rightmost: right[i]}
	}

	reduced := known.Clone()
	nbAlt := uint32(1)
	for i, seg := range segs {
		r := ranges[i]
		if r.Rightmost < r.Leftmost {
			// The two passes disagree — treat as no information rather
			// than risk an unsound claim.
			continue
		}
		width := r.Rightmost - r.Leftmost + 1
		nbAlt = binomial.SaturatingMul(nbAlt, uint32(width))

		overlapStart := r.Rightmost
		overlapEnd := r.Leftmost + seg - 1
		for pos := overlapStart; pos <= overlapEnd && pos < n; pos++ {
			reduced.Tiles[pos] = tile.Filled
		}
	}

	covered := make([]bool, n)
	for i, seg := range segs {
		r := ranges[i]
		for pos := r.Leftmost; pos < r.Rightmost+seg && pos < n; pos++ {
			covered[pos] = true
		}
	}
	for pos := 0; pos < n; pos++ {
		if !covered[pos] {
			reduced.Tiles[pos] = tile.Empty
		}
	}

	merged, err := known.Add(reduced)
	if err != nil {
		// The two passes produced a placement incompatible with the known
		// tiles; rather than propagate an invalid line, fall back to the
		// known tiles unreduced (sound, just uninformative this round).
		return Reduction{ReducedLine: known, NbAlternatives: nbAlt, FullyReduced: false}
	}

	return Reduction{ReducedLine: merged, NbAlternatives: nbAlt, FullyReduced: false}
}
