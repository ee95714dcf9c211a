// Package constraint — sentinel errors.
//
// Error policy (matching the teacher's builder/errors.go convention):
//   - Only sentinel variables are exposed.
//   - Callers use errors.Is to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site.
package constraint

import "errors"

// ErrLineTooShort is returned when a line size is smaller than the
// constraint's MinLineSize. Per spec, this is a logic violation a caller
// can always avoid by validating the InputGrid first; it never occurs as a
// result of normal solving, only of malformed callers.
var ErrLineTooShort = errors.New("constraint: line size smaller than minimum required")
