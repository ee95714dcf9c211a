package tile

import (
	"errors"
	"strings"
)

// ErrAxisMismatch is returned when two lines with different Axis or Index
// are combined; callers should never hit this outside of programming errors,
// since the solver only ever combines a line with another line of the same
// identity.
var ErrAxisMismatch = errors.New("tile: line axis/index mismatch")

// ErrSizeMismatch is returned when two lines of different lengths are
// combined.
var ErrSizeMismatch = errors.New("tile: line size mismatch")

// ErrIncompatible is returned by Add when the two lines genuinely disagree
// on at least one cell.
var ErrIncompatible = errors.New("tile: lines are incompatible")

// Line is a fixed-length sequence of Tile values belonging to one row or
// column of a Grid.
type Line struct {
	Axis  Axis
	Index int
	Tiles []Tile
}

// New builds a Line of the given size, every cell initialized to init.
func New(axis Axis, index, size int, init Tile) Line {
	tiles := make([]Tile, size)
	if init != Unknown {
		for i := range tiles {
			tiles[i] = init
		}
	}
	return Line{Axis: axis, Index: index, Tiles: tiles}
}

// FromTiles wraps an existing tile slice as a Line. The slice is not copied.
func FromTiles(axis Axis, index int, tiles []Tile) Line {
	return Line{Axis: axis, Index: index, Tiles: tiles}
}

// Size returns the number of cells in the line.
func (l Line) Size() int { return len(l.Tiles) }

// At returns the tile at idx.
func (l Line) At(idx int) Tile { return l.Tiles[idx] }

// Clone returns an independent copy of the line.
func (l Line) Clone() Line {
	tiles := make([]Tile, len(l.Tiles))
	copy(tiles, l.Tiles)
	return Line{Axis: l.Axis, Index: l.Index, Tiles: tiles}
}

// Blank returns a Line with the same Axis/Index/Size as l, every cell set
// to init.
func (l Line) Blank(init Tile) Line {
	return New(l.Axis, l.Index, l.Size(), init)
}

func (l Line) sameIdentity(other Line) error {
	if l.Axis != other.Axis || l.Index != other.Index {
		return ErrAxisMismatch
	}
	if len(l.Tiles) != len(other.Tiles) {
		return ErrSizeMismatch
	}
	return nil
}

// Compatible reports whether Add(other) would succeed: every position pair
// is one of (x,x), (x,Unknown), (Unknown,x).
func (l Line) Compatible(other Line) bool {
	if err := l.sameIdentity(other); err != nil {
		return false
	}
	for i, t := range l.Tiles {
		if !compatibleTile(t, other.Tiles[i]) {
			return false
		}
	}
	return true
}

// Add combines l and other element-wise, returning the merged line. It
// fails with ErrIncompatible if any position pair genuinely disagrees.
func (l Line) Add(other Line) (Line, error) {
	if err := l.sameIdentity(other); err != nil {
		return Line{}, err
	}
	out := make([]Tile, len(l.Tiles))
	for i, t := range l.Tiles {
		merged, ok := addTile(t, other.Tiles[i])
		if !ok {
			return Line{}, ErrIncompatible
		}
		out[i] = merged
	}
	return Line{Axis: l.Axis, Index: l.Index, Tiles: out}, nil
}

// Delta computes the delta between l (the older line) and newer, such that
// newer = (delta-added-to-l). Position is Unknown where the two agree,
// otherwise the tile from newer.
func (l Line) Delta(newer Line) Line {
	out := make([]Tile, len(l.Tiles))
	for i, t := range l.Tiles {
		out[i] = deltaTile(t, newer.Tiles[i])
	}
	return Line{Axis: l.Axis, Index: l.Index, Tiles: out}
}

// Reduce returns the pointwise intersection of l and other: the common
// value where they agree, Unknown elsewhere. Used to intersect a set of
// candidate completions.
func (l Line) Reduce(other Line) Line {
	out := make([]Tile, len(l.Tiles))
	for i, t := range l.Tiles {
		out[i] = reduceTile(t, other.Tiles[i])
	}
	return Line{Axis: l.Axis, Index: l.Index, Tiles: out}
}

// ReduceInto intersects other into l in place; used by the full-reduction
// accumulator to avoid allocating a new line per candidate.
func (l *Line) ReduceInto(other Line) {
	for i, t := range l.Tiles {
		l.Tiles[i] = reduceTile(t, other.Tiles[i])
	}
}

// IsComplete reports whether the line has no Unknown cell left.
func (l Line) IsComplete() bool {
	for _, t := range l.Tiles {
		if t == Unknown {
			return false
		}
	}
	return true
}

// IsAllOneColor reports whether every cell equals color.
func (l Line) IsAllOneColor(color Tile) bool {
	for _, t := range l.Tiles {
		if t != color {
			return false
		}
	}
	return true
}

// Runs extracts the lengths of the maximal Filled runs in a complete line,
// in left-to-right order. The caller must ensure l.IsComplete().
func (l Line) Runs() []int {
	var runs []int
	count := 0
	for _, t := range l.Tiles {
		if t == Filled {
			count++
		} else if count > 0 {
			runs = append(runs, count)
			count = 0
		}
	}
	if count > 0 {
		runs = append(runs, count)
	}
	return runs
}

// String renders the line using '?'/'.'/'#' notation, with no axis prefix.
func (l Line) String() string {
	var b strings.Builder
	b.Grow(len(l.Tiles))
	for _, t := range l.Tiles {
		b.WriteString(t.String())
	}
	return b.String()
}
