// Package grid defines the two-mirror Grid used by the solver, plus the
// public InputGrid and OutputGrid projections consumed by external format
// adapters (see nonio) and the CLI.
//
// What
//
//   - Grid holds a width x height array of tiles in two mirrored views,
//     row-major and column-major; writing a tile updates both.
//   - InputGrid is the row/column clue sets plus a name and free-form
//     metadata, as supplied by a file parser.
//   - OutputGrid is an immutable snapshot of a (possibly partial) solved
//     grid, row-major.
//   - Validate sanity-checks an InputGrid's clue totals and line widths
//     before a solve is attempted.
//
// Why
//
//	Keeping both mirrors lets row reduction and column reduction each read
//	and write their own line without re-deriving strides; the trade-off
//	(2x memory for the tile array) is the same one the teacher's matrix
//	package makes keeping parallel adjacency and incidence representations.
//
// Determinism
//
//	Grid has no hidden state beyond the two tile mirrors, which the package
//	keeps in lockstep on every write; reading through either mirror always
//	observes the same value for the same cell.
//
// Complexity (w = width, h = height)
//
//   - NewGrid: O(w*h).
//   - Set: O(1).
//   - Row(i) / Col(j): O(w) / O(h); each returns a copy of the line.
//   - Validate: O(w*h).
package grid
