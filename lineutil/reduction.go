package lineutil

import "github.com/katalvlaran/nonogram/tile"

// Reduction is the result of reducing a line against a constraint.
//
//   - ReducedLine contains at least every originally-known cell, plus every
//     cell that is equal across all compatible completions.
//   - NbAlternatives is the number of compatible completions, saturating at
//     binomial.MaxAlternatives.
//   - FullyReduced is true only when ReducedLine is exactly the pointwise
//     intersection of every compatible completion; when false, ReducedLine
//     is still sound (every compatible completion is consistent with it)
//     but may be weaker, and NbAlternatives is only an upper bound.
//
// NbAlternatives == 0 signals a contradiction: the known tiles admit no
// completion at all. ReducedLine's contents are then unspecified.
type Reduction struct {
	ReducedLine    tile.Line
	NbAlternatives uint32
	FullyReduced   bool
}
