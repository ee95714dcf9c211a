package solver

import "math"

// SelectionPolicy decides, for a given WorkGrid pass, what the current
// ceiling on a line's alternative count should be before the engine is
// willing to spend a full reduction on it, and when to give up on
// reduction and switch to branching. Grounded on the original's
// LineSelectionPolicy_Legacy / LineSelectionPolicy_RampUpMaxNbAlternatives
// (work_grid.h): two tunable heuristics behind one interface, the same
// shape as bfs.Option's swappable hooks.
type SelectionPolicy interface {
	// InitialMaxNbAlternatives is the ceiling used before the first full
	// grid pass.
	InitialMaxNbAlternatives() uint32
	// NextMaxNbAlternatives computes the ceiling to use for the next full
	// grid pass, given the previous ceiling, whether the grid changed
	// during the last pass, and how many lines were skipped (because
	// their alternative count exceeded the ceiling).
	NextMaxNbAlternatives(previous uint32, gridChanged bool, skippedLines int) uint32
	// SwitchToBranching reports whether the engine should stop reducing
	// and start branching.
	SwitchToBranching(maxNbAlternatives uint32, gridChanged bool, skippedLines int) bool
}

// LegacyPolicy always reduces every line regardless of cost (ceiling is
// always MaxUint32) and switches to branching as soon as a full pass makes
// no further change.
type LegacyPolicy struct{}

func (LegacyPolicy) InitialMaxNbAlternatives() uint32 {
	return math.MaxUint32
}

func (LegacyPolicy) NextMaxNbAlternatives(uint32, bool, int) uint32 {
	return math.MaxUint32
}

func (LegacyPolicy) SwitchToBranching(_ uint32, gridChanged bool, _ int) bool {
	return !gridChanged
}

// RampUpPolicy starts with a low ceiling and grows it geometrically only
// when lines are being skipped, keeping early passes cheap and reserving
// expensive full reductions for when they are actually needed.
type RampUpPolicy struct {
	// EstimateOnSet, when true, halves the cached alternative estimate of
	// a line whenever one of its cells is set from outside (a neighbor
	// line's reduction), instead of leaving the estimate untouched. This
	// mirrors LineSelectionPolicy_RampUpMaxNbAlternatives_EstimateNbAlternatives.
	EstimateOnSet bool
}

const (
	rampUpMinAlternatives uint32 = 1 << 6
	rampUpMaxAlternatives uint32 = 1 << 30
)

func (RampUpPolicy) InitialMaxNbAlternatives() uint32 {
	return rampUpMinAlternatives
}

func (RampUpPolicy) NextMaxNbAlternatives(previous uint32, gridChanged bool, skippedLines int) uint32 {
	switch {
	case gridChanged && previous > rampUpMinAlternatives:
		n := previous
		if n > rampUpMaxAlternatives {
			n = rampUpMaxAlternatives
		}
		n >>= 4
		if n < rampUpMinAlternatives {
			n = rampUpMinAlternatives
		}
		return n
	case !gridChanged && skippedLines > 0:
		if previous >= rampUpMaxAlternatives {
			return math.MaxUint32
		}
		return previous << 2
	default:
		return previous
	}
}

func (RampUpPolicy) SwitchToBranching(_ uint32, gridChanged bool, skippedLines int) bool {
	return !gridChanged && skippedLines == 0
}

// EstimateNbAlternatives applies p's cell-set estimate heuristic to a
// cached alternative count, used when a line's known tiles change because
// a neighboring line's reduction wrote into it (not because the line
// itself was just reduced).
func (p RampUpPolicy) EstimateNbAlternatives(nbAlternatives uint32) uint32 {
	if !p.EstimateOnSet {
		return nbAlternatives
	}
	if nbAlternatives>>1 < 2 {
		return 2
	}
	return nbAlternatives >> 1
}
