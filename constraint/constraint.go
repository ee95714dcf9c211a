package constraint

import (
	"github.com/katalvlaran/nonogram/binomial"
	"github.com/katalvlaran/nonogram/tile"
)

// LineConstraint is the clue for one row or column: an ordered sequence of
// positive filled-run lengths, plus the cached minimum line size.
type LineConstraint struct {
	segments    []int
	minLineSize int
}

// New builds a LineConstraint from raw segment lengths. Zeros are dropped:
// they are treated as non-meaningful separators rather than zero-length
// segments, so New(nil) and New([]int{0}) are equivalent, both producing
// the empty (all-Empty) constraint.
func New(segs []int) LineConstraint {
	out := make([]int, 0, len(segs))
	total := 0
	for _, s := range segs {
		if s > 0 {
			out = append(out, s)
			total += s
		}
	}
	min := 0
	if len(out) > 0 {
		min = total + len(out) - 1
	}
	return LineConstraint{segments: out, minLineSize: min}
}

// Segments returns the constraint's ordered filled-run lengths. The
// returned slice must not be mutated by the caller.
func (c LineConstraint) Segments() []int { return c.segments }

// NbSegments returns the number of filled runs in the clue.
func (c LineConstraint) NbSegments() int { return len(c.segments) }

// MinLineSize returns sum(segments) + max(0, len(segments)-1).
func (c LineConstraint) MinLineSize() int { return c.minLineSize }

// NbFilledTiles returns the total number of Filled cells in any completion.
func (c LineConstraint) NbFilledTiles() int {
	total := 0
	for _, s := range c.segments {
		total += s
	}
	return total
}

// MaxSegmentSize returns the length of the longest segment, or 0 if the
// constraint has no segments.
func (c LineConstraint) MaxSegmentSize() int {
	max := 0
	for _, s := range c.segments {
		if s > max {
			max = s
		}
	}
	return max
}

// TrivialAlternatives computes the number of completions of a line of the
// given size against this constraint, given no prior knowledge at all.
// It fails with ErrLineTooShort if lineSize < MinLineSize.
func (c LineConstraint) TrivialAlternatives(lineSize int, cache *binomial.Cache) (uint32, error) {
	if lineSize < c.minLineSize {
		return 0, ErrLineTooShort
	}
	nbZeros := lineSize - c.minLineSize
	return cache.Partition(nbZeros, len(c.segments)+1), nil
}

// TrivialReduction computes the intersection of every completion of a line
// of the given size against this constraint, assuming no prior knowledge.
// It fails with ErrLineTooShort if lineSize < MinLineSize.
func (c LineConstraint) TrivialReduction(axis tile.Axis, index, lineSize int) (tile.Line, error) {
	if lineSize < c.minLineSize {
		return tile.Line{}, ErrLineTooShort
	}
	line := tile.New(axis, index, lineSize, tile.Unknown)
	nbZeros := lineSize - c.minLineSize

	maxSeg := c.MaxSegmentSize()
	switch {
	case maxSeg == 0:
		// Blank line: every cell Empty.
		for i := range line.Tiles {
			line.Tiles[i] = tile.Empty
		}
	case nbZeros == 0:
		// The line is fully determined.
		idx := 0
		for i, seg := range c.segments {
			last := i+1 == len(c.segments)
			for k := 0; k < seg; k++ {
				line.Tiles[idx] = tile.Filled
				idx++
			}
			if !last {
				line.Tiles[idx] = tile.Empty
				idx++
			}
		}
	case maxSeg > nbZeros:
		// Every segment's forced overlap region is Filled, rest Unknown.
		idx := 0
		for i, seg := range c.segments {
			last := i+1 == len(c.segments)
			for k := 0; k < seg; k++ {
				if k >= nbZeros {
					line.Tiles[idx] = tile.Filled
				}
				idx++
			}
			if !last {
				idx++ // would be Empty, but slack permits Unknown here too
			}
		}
	default:
		// Slack too large to say anything: line stays all Unknown.
	}
	return line, nil
}

// Compatible reports whether a fully-known line's filled runs equal this
// constraint's segments exactly.
func (c LineConstraint) Compatible(line tile.Line) bool {
	runs := line.Runs()
	if len(runs) != len(c.segments) {
		return false
	}
	for i, r := range runs {
		if r != c.segments[i] {
			return false
		}
	}
	return true
}

// BuildAllPossibleLines enumerates every completion of knownTiles that is
// consistent with this constraint, in ascending left-padding order of the
// first segment. It is used by the solver's branching search to turn a
// chosen line into its candidate alternatives.
func (c LineConstraint) BuildAllPossibleLines(knownTiles tile.Line) []tile.Line {
	n := knownTiles.Size()
	nbZeros := n - c.minLineSize
	if nbZeros < 0 {
		return nil
	}

	var result []tile.Line

	if len(c.segments) == 0 {
		candidate := knownTiles.Blank(tile.Empty)
		if candidate.Compatible(knownTiles) {
			result = append(result, candidate)
		}
		return result
	}

	if len(c.segments) == 1 {
		seg := c.segments[0]
		for padLeft := 0; padLeft <= nbZeros; padLeft++ {
			tiles := make([]tile.Tile, n)
			idx := 0
			for k := 0; k < padLeft; k++ {
				tiles[idx] = tile.Empty
				idx++
			}
			for k := 0; k < seg; k++ {
				tiles[idx] = tile.Filled
				idx++
			}
			for idx < n {
				tiles[idx] = tile.Empty
				idx++
			}
			candidate := tile.FromTiles(knownTiles.Axis, knownTiles.Index, tiles)
			if candidate.Compatible(knownTiles) {
				result = append(result, candidate)
			}
		}
		return result
	}

	seg := c.segments[0]
	rest := New(c.segments[1:])
	for padLeft := 0; padLeft <= nbZeros; padLeft++ {
		idx := padLeft + seg + 1 // padding + segment + mandatory separator
		if idx > n {
			break
		}
		prefix := make([]tile.Tile, idx)
		for k := 0; k < padLeft; k++ {
			prefix[k] = tile.Empty
		}
		for k := 0; k < seg; k++ {
			prefix[padLeft+k] = tile.Filled
		}
		prefix[idx-1] = tile.Empty

		prefixLine := tile.FromTiles(knownTiles.Axis, knownTiles.Index, append([]tile.Tile(nil), prefix...))
		knownPrefix := tile.FromTiles(knownTiles.Axis, knownTiles.Index, knownTiles.Tiles[:idx])
		if !prefixLine.Compatible(knownPrefix) {
			continue
		}

		knownSuffix := tile.FromTiles(knownTiles.Axis, knownTiles.Index, knownTiles.Tiles[idx:])
		for _, tail := range rest.BuildAllPossibleLines(knownSuffix) {
			tiles := make([]tile.Tile, n)
			copy(tiles, prefix)
			copy(tiles[idx:], tail.Tiles)
			candidate := tile.FromTiles(knownTiles.Axis, knownTiles.Index, tiles)
			result = append(result, candidate)
		}
	}
	return result
}
