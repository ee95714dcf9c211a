package solver

import (
	"math"

	"github.com/katalvlaran/nonogram/tile"
)

// Event identifies what an Observer call reports.
type Event uint8

const (
	// EventKnownLine: line = the line as known before this reduction,
	// misc = its pre-reduction alternative count.
	EventKnownLine Event = iota
	// EventDeltaLine: line = the delta between the previous and the
	// reduced line (Unknown at unchanged positions), misc = its
	// post-reduction alternative count.
	EventDeltaLine
	// EventBranching: when line is non-nil this is a branch "node" event
	// (line = known tiles at the branch point, misc = its alternative
	// count); when line is nil this is a branch "edge" event, one per
	// alternative tried.
	EventBranching
	// EventSolvedGrid: a completion has been found; line is always nil,
	// depth is the branching depth at which it was found.
	EventSolvedGrid
	// EventInternalState: misc carries an InternalState value.
	EventInternalState
	// EventProgress: misc carries the IEEE-754 bit pattern of a float32
	// in [0,1]; decode with ProgressValue.
	EventProgress
)

// String implements fmt.Stringer.
func (e Event) String() string {
	switch e {
	case EventKnownLine:
		return "KNOWN_LINE"
	case EventDeltaLine:
		return "DELTA_LINE"
	case EventBranching:
		return "BRANCHING"
	case EventSolvedGrid:
		return "SOLVED_GRID"
	case EventInternalState:
		return "INTERNAL_STATE"
	case EventProgress:
		return "PROGRESS"
	default:
		return "UNKNOWN_EVENT"
	}
}

// InternalState is the value carried by an EventInternalState's misc field.
type InternalState uint32

const (
	StateInitialPass InternalState = iota
	StatePartialReduction
	StateFullReduction
	StateBranching
)

// String implements fmt.Stringer.
func (s InternalState) String() string {
	switch s {
	case StateInitialPass:
		return "INITIAL_PASS"
	case StatePartialReduction:
		return "PARTIAL_REDUCTION"
	case StateFullReduction:
		return "FULL_REDUCTION"
	case StateBranching:
		return "BRANCHING"
	default:
		return "UNKNOWN_STATE"
	}
}

// Observer receives solver events. It must not call back into the Solver
// instance that invoked it, and must not retain line beyond the call.
type Observer func(event Event, line *tile.Line, depth int, misc uint32)

// ProgressValue decodes the misc field of an EventProgress call back into
// the [0,1] float it represents.
func ProgressValue(misc uint32) float32 {
	return math.Float32frombits(misc)
}

func progressMisc(v float32) uint32 {
	return math.Float32bits(v)
}

// noopObserver is installed when the caller supplies none, so the reduction
// and branching code can call it unconditionally.
func noopObserver(Event, *tile.Line, int, uint32) {}
