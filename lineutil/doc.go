// Package lineutil implements LineAlternatives: given a LineConstraint and a
// partially-known Line, it computes the intersection of every completion
// compatible with both, and/or a count of such completions.
//
// What
//
//   - Reduction is the result record: ReducedLine, NbAlternatives,
//     FullyReduced.
//   - FullReduction exhaustively enumerates every feasible placement of the
//     constraint's segments, pruned against known tiles, and reduces them
//     all into one line. Always FullyReduced == true.
//   - LinearReduction computes a SegmentRange (leftmost/rightmost feasible
//     start) per segment in two linear passes, deriving forced-Filled and
//     forced-Empty cells without enumerating every completion. Cheaper,
//     never claims FullyReduced.
//   - PartialReduction runs the full enumeration on only the m leftmost and
//     m rightmost segments, leaving the middle Unknown; useful to extract
//     boundary information when full reduction would be too costly.
//
// Why
//
//	The grid work engine (solver) alternates between these three strengths:
//	linear reduction (partial reduction on lines with many segments) is run
//	on every touched line because it's cheap; full
//	reduction is reserved for lines whose current alternative count is
//	below a threshold, since its cost grows quickly with slack.
//
// Failure semantics
//
//	A contradiction (the known tiles admit zero completions) is a normal,
//	non-fatal result: NbAlternatives == 0. ReducedLine's contents are then
//	unspecified and must not be used by the caller.
//
// Complexity (n = line size, k = number of segments, z = slack)
//
//   - FullReduction: O(C(z+k, k) * n) worst case — bounded by the number
//     of alternatives actually enumerated, pruned early on incompatibility.
//   - LinearReduction: O(n) two passes plus O(k) bookkeeping.
//   - PartialReduction: same order as FullReduction restricted to 2m segments.
package lineutil
