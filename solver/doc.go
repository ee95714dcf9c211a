// Package solver drives a WorkGrid through line reduction and, when
// reduction alone cannot finish the grid, branching search, producing one
// or more completions of an InputGrid.
//
// What
//
//   - WorkGrid holds the row/column constraints, the two-mirror grid from
//     package grid, and the per-line bookkeeping (completed flags, pending
//     reduction flags, cached alternative counts) needed to drive the
//     reduce/branch loop.
//   - Solver is the public facade: Solve enumerates up to a requested
//     number of completions, LineSolve runs reduction only (no branching),
//     Validate classifies a grid as unsolvable / unique / multiple.
//   - Stats accumulates counters describing the work performed by a solve.
//   - Observer receives a stream of Events describing line updates,
//     branch nodes and the edges tried from them, solved grids and
//     progress.
//
// Why
//
//	Mirroring the teacher's separation of policy (bfs.Option) from engine
//	(bfs.BFS) keeps the branching heuristic swappable without touching the
//	reduction loop: SelectionPolicy plays the role of bfs.BFSOptions'
//	hooks, deciding when to keep hammering on line reduction versus when to
//	pay the cost of a branch.
//
// Determinism
//
//	Given the same InputGrid, SelectionPolicy and max solution count, Solve
//	emits the same completions in the same order on every call: branching
//	always tries alternatives in the order
//	constraint.LineConstraint.BuildAllPossibleLines enumerates them, and no
//	goroutine or map iteration introduces nondeterminism.
//
// Complexity
//
//	Reduction passes are polynomial in grid size; branching is worst-case
//	exponential in the number of UNKNOWN cells remaining when reduction
//	reaches a fixed point, bounded in practice by how close to
//	line-solvable the puzzle is.
package solver
