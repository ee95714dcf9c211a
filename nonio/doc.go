// Package nonio implements the external file-format collaborators named
// by spec.md §6 as outside the solver core: native, NIN and NON text
// parsers/writers for InputGrid, and PBM/SVG exporters for OutputGrid.
// Every adapter here consumes only the public grid/solver API.
//
// What
//
//   - Native: the project's own line-oriented format (GRID/ROWS/COLUMNS
//     directives, bracketed constraint lines, '#' comments).
//   - NIN: Jakub Wilk's nonogram format (`width height` header, then
//     height row-constraint lines, then width column-constraint lines).
//   - NON: Steve Simpson's format (quoted directives, comma-separated
//     constraint lines, optional `goal` bitmap and metadata).
//   - PBM: a bitmap export of a solved or partial OutputGrid (P1 ASCII
//     portable bitmap).
//   - SVG: a vector render of an OutputGrid via ajstarks/svgo.
//
// Why
//
//	Keeping format coupling out of grid/solver mirrors the teacher's own
//	split between algorithm packages (bfs, dfs, dijkstra) and the
//	input-construction package (builder): the core never imports a parser,
//	and a parser never reaches into core internals.
//
// Errors
//
//	Parse functions return a *ParseError carrying the offending line number
//	and the file path, following spec.md §6's file-loader error-handler
//	contract; IO failures are returned unwrapped from the underlying
//	os/io call.
package nonio
