package lineutil

import (
	"github.com/katalvlaran/nonogram/binomial"
	"github.com/katalvlaran/nonogram/constraint"
	"github.com/katalvlaran/nonogram/tile"
)

// PartialReduction restricts the expensive full-enumeration reduction to
// the m leftmost and m rightmost segments of c, leaving the middle segments
// entirely unreduced (their cells stay whatever known already says). This
// is used when full reduction over the whole line would be too costly but
// pinning down the boundary is still worthwhile.
//
// If c has at most 2m segments (or m <= 0), PartialReduction is equivalent
// to FullReduction, FullyReduced included. Otherwise FullyReduced is false:
// a contiguous stretch in the middle of the line was never examined.
func PartialReduction(c constraint.LineConstraint, known tile.Line, m int) Reduction {
	segs := c.Segments()
	if m <= 0 || len(segs) <= 2*m {
		return FullReduction(c, known, nil)
	}

	n := known.Size()
	head := segs[:m]
	tail := segs[len(segs)-m:]
	middle := segs[m : len(segs)-m]

	headReduction, headPrefixLen := reduceBoundary(known, head, append(append([]int{}, middle...), tail...))
	if headReduction.NbAlternatives == 0 {
		return Reduction{ReducedLine: known, NbAlternatives: 0, FullyReduced: false}
	}

	revKnown := tile.FromTiles(known.Axis, known.Index, reversedTiles(known.Tiles))
	tailReductionRev, tailPrefixLen := reduceBoundary(revKnown, reversedInts(tail), append(reversedInts(middle), reversedInts(head)...))
	if tailReductionRev.NbAlternatives == 0 {
		return Reduction{ReducedLine: known, NbAlternatives: 0, FullyReduced: false}
	}

	reduced := known.Clone()
	for i := 0; i < headPrefixLen; i++ {
		reduced.Tiles[i] = headReduction.ReducedLine.Tiles[i]
	}
	tailStart := n - tailPrefixLen
	revTiles := tailReductionRev.ReducedLine.Tiles
	for i := 0; i < tailPrefixLen; i++ {
		reduced.Tiles[tailStart+i] = revTiles[tailPrefixLen-1-i]
	}

	merged, err := known.Add(reduced)
	if err != nil {
		return Reduction{ReducedLine: known, NbAlternatives: 0, FullyReduced: false}
	}

	nbAlt := binomial.SaturatingMul(headReduction.NbAlternatives, tailReductionRev.NbAlternatives)
	return Reduction{ReducedLine: merged, NbAlternatives: nbAlt, FullyReduced: false}
}

// reduceBoundary runs FullReduction on boundarySegs against the leftmost
// slice of known whose length reserves exactly restSegs' minimum size plus
// one mandatory gap, so the slack distributed to boundarySegs equals the
// true global slack of the whole line. Returns the reduction and the
// prefix length it was computed over.
func reduceBoundary(known tile.Line, boundarySegs, restSegs []int) (Reduction, int) {
	n := known.Size()
	restMin := constraint.New(restSegs).MinLineSize()
	gap := 0
	if len(restSegs) > 0 {
		gap = 1
	}
	prefixLen := n - restMin - gap
	if prefixLen < 0 {
		prefixLen = 0
	}
	if prefixLen > n {
		prefixLen = n
	}
	prefix := tile.FromTiles(known.Axis, known.Index, known.Tiles[:prefixLen])
	return FullReduction(constraint.New(boundarySegs), prefix, nil), prefixLen
}
