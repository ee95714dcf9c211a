// Package constraint defines LineConstraint, the clue for a single row or
// column: an ordered sequence of positive filled-run lengths.
//
// What
//
//   - New builds a LineConstraint from raw segment lengths, stripping any
//     zero (a zero in the input is a non-meaningful separator, never a
//     segment of length zero).
//   - MinLineSize is the shortest line that can satisfy the constraint.
//   - TrivialReduction / TrivialAlternatives answer those questions using
//     only the constraint and the line size, with no known tiles at all.
//   - Compatible checks a fully-known line's filled runs against the clue.
//   - BuildAllPossibleLines enumerates every completion consistent with a
//     partially-known line — used by the solver's branching search.
//
// Why
//
//   - Keeping the clue as its own type lets the line reducer (lineutil)
//     stay a pure function of (LineConstraint, known tiles) without
//     re-deriving min_line_size or re-stripping zeros on every call.
//
// Determinism
//
//	All methods are pure; BuildAllPossibleLines returns completions in a
//	stable left-to-right order (ascending left padding of the first
//	segment).
//
// Complexity (k = number of segments, n = line size)
//
//   - MinLineSize, NbFilledTiles, MaxSegmentSize: O(k).
//   - TrivialReduction: O(n).
//   - Compatible: O(n).
//   - BuildAllPossibleLines: O(n^k) worst case (bounded by the number of
//     alternatives actually returned).
package constraint
