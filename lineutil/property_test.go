package lineutil_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/katalvlaran/nonogram/constraint"
	"github.com/katalvlaran/nonogram/lineutil"
	"github.com/katalvlaran/nonogram/tile"
)

// genConstraintAndLine produces a random clue and a line size that fits it,
// plus a known line obtained by randomly erasing cells of one of the
// clue's own feasible completions — so the fixture is always satisfiable.
func genConstraintAndLine(t *rapid.T) (constraint.LineConstraint, tile.Line) {
	nbSegs := rapid.IntRange(0, 4).Draw(t, "nbSegs")
	segs := make([]int, nbSegs)
	for i := range segs {
		segs[i] = rapid.IntRange(1, 3).Draw(t, "seg")
	}
	c := constraint.New(segs)

	slack := rapid.IntRange(0, 4).Draw(t, "slack")
	size := c.MinLineSize() + slack
	if size == 0 {
		size = 1
	}

	full := lineutil.FullReduction(c, tile.New(tile.Row, 0, size, tile.Unknown), nil)
	if full.NbAlternatives == 0 {
		return c, tile.New(tile.Row, 0, size, tile.Unknown)
	}
	known := full.ReducedLine.Clone()
	// Erase a random subset of the fully-reduced cells back to Unknown,
	// simulating a partially-reduced grid mid-solve.
	for i := range known.Tiles {
		if rapid.Bool().Draw(t, "erase") {
			known.Tiles[i] = tile.Unknown
		}
	}
	return c, known
}

// TestFullReduction_SoundAndCountMatchesEnumeration checks spec.md Testable
// Properties 1 (soundness: every BuildAllPossibleLines candidate is
// compatible with the reduced line) and 3 (count-equivalence: NbAlternatives
// equals the number of candidates enumerated independently by
// BuildAllPossibleLines).
func TestFullReduction_SoundAndCountMatchesEnumeration(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c, known := genConstraintAndLine(t)

		candidates := c.BuildAllPossibleLines(known)
		red := lineutil.FullReduction(c, known, nil)

		if len(candidates) == 0 {
			if red.NbAlternatives != 0 {
				t.Fatalf("BuildAllPossibleLines found nothing but FullReduction reports %d alternatives", red.NbAlternatives)
			}
			return
		}

		if uint32(len(candidates)) != red.NbAlternatives {
			t.Fatalf("count mismatch: enumerated %d, FullReduction reported %d", len(candidates), red.NbAlternatives)
		}
		for _, cand := range candidates {
			if !cand.Compatible(red.ReducedLine) {
				t.Fatalf("candidate %s incompatible with reduced line %s", cand, red.ReducedLine)
			}
		}
	})
}

// TestLinearReduction_NeverContradictsKnown checks Testable Property 2:
// linear reduction's output never conflicts with the caller's own
// knowledge (no cell the caller already determined comes back with the
// opposite value).
func TestLinearReduction_NeverContradictsKnown(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c, known := genConstraintAndLine(t)
		red := lineutil.LinearReduction(c, known)
		if !known.Compatible(red.ReducedLine) {
			t.Fatalf("linear reduction of %s under clue %v produced incompatible %s", known, c.Segments(), red.ReducedLine)
		}
	})
}

// TestFullReduction_IdempotentOnItsOwnOutput checks Testable Property 4:
// reducing an already fully-reduced line again changes nothing.
func TestFullReduction_IdempotentOnItsOwnOutput(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c, known := genConstraintAndLine(t)
		first := lineutil.FullReduction(c, known, nil)
		if first.NbAlternatives == 0 {
			return
		}
		second := lineutil.FullReduction(c, first.ReducedLine, nil)
		if second.ReducedLine.String() != first.ReducedLine.String() {
			t.Fatalf("not idempotent: %s -> %s", first.ReducedLine, second.ReducedLine)
		}
	})
}
