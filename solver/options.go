package solver

import (
	"context"

	"github.com/rs/zerolog"
)

// AbortFunc is polled by the solver before each partial and each full
// reduction pass and before each branch alternative is tried; it is not
// polled between the individual lines of a pass. A true return unwinds the
// search and the call reports StatusAborted.
type AbortFunc func() bool

// Option configures a Solver via functional arguments, per the teacher's
// bfs.Option / builder.Option convention.
type Option func(*Config)

// Config holds the resolved settings of a Solver.
type Config struct {
	Ctx      context.Context
	Observer Observer
	Abort    AbortFunc
	Stats    *Stats
	Policy   SelectionPolicy
	PartialReductionWidth int
	Logger   zerolog.Logger
}

// DefaultConfig returns the settings used when no Option overrides them:
// background context, no observer, no abort function, no stats collection,
// LegacyPolicy, partial-reduction width of 3, and a disabled logger.
func DefaultConfig() Config {
	return Config{
		Ctx:                   context.Background(),
		Observer:              noopObserver,
		Abort:                 func() bool { return false },
		Stats:                 nil,
		Policy:                LegacyPolicy{},
		PartialReductionWidth: 3,
		Logger:                zerolog.Nop(),
	}
}

// WithContext sets the context whose cancellation is treated as an abort
// request, checked alongside any AbortFunc.
func WithContext(ctx context.Context) Option {
	return func(c *Config) {
		if ctx != nil {
			c.Ctx = ctx
		}
	}
}

// WithObserver registers an event sink. Supplying nil disables events.
func WithObserver(o Observer) Option {
	return func(c *Config) {
		if o != nil {
			c.Observer = o
		} else {
			c.Observer = noopObserver
		}
	}
}

// WithAbort registers an abort predicate polled during the solve.
func WithAbort(a AbortFunc) Option {
	return func(c *Config) {
		if a != nil {
			c.Abort = a
		}
	}
}

// WithStats attaches a Stats instance that accumulates counters over the
// solve. The caller owns the pointer and may read it once Solve returns.
func WithStats(s *Stats) Option {
	return func(c *Config) {
		c.Stats = s
	}
}

// WithSelectionPolicy overrides the default LegacyPolicy.
func WithSelectionPolicy(p SelectionPolicy) Option {
	return func(c *Config) {
		if p != nil {
			c.Policy = p
		}
	}
}

// WithPartialReductionWidth sets how many leftmost/rightmost segments a
// partial reduction examines. During the partial reduction pass, a line
// with at most twice that many segments gets linear reduction instead.
// Values <= 0 are ignored.
func WithPartialReductionWidth(m int) Option {
	return func(c *Config) {
		if m > 0 {
			c.PartialReductionWidth = m
		}
	}
}

// WithLogger attaches a zerolog.Logger for internal diagnostics (pass
// rates, branch counts); the zero value keeps logging disabled.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

func (c Config) aborted() bool {
	if c.Abort != nil && c.Abort() {
		return true
	}
	if c.Ctx != nil {
		select {
		case <-c.Ctx.Done():
			return true
		default:
		}
	}
	return false
}
