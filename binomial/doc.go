// Package binomial memoizes the number of ways to place n indistinguishable
// items into k ordered buckets, equivalently the binomial coefficient
// C(n+k-1, k-1), with saturating arithmetic.
//
// What
//
//   - Cache.Partition(n, k) returns that count, or MaxAlternatives when the
//     true value would overflow a uint32.
//   - SaturatingAdd / SaturatingMul combine two counts without overflowing.
//
// Why
//
//   - A nonogram line with wide slack has a combinatorial number of
//     candidate completions. The exact count is only used to rank lines
//     for branching order and to detect when a line is already fully
//     determined (count == 1) — saturation preserves both uses without
//     risking undefined behavior on overflow.
//
// Complexity
//
//   - Partition(n, k): O(n) per distinct (n, k) pair the first time it is
//     requested (the recursive sum over e = 0..n), O(1) amortized on cache
//     hit. Memory: O(n·k) worst case across all distinct pairs seen.
package binomial
