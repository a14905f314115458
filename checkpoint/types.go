// Package checkpoint defines the plan geometry, options, and error
// definitions for the sparse checkpoint filter.
package checkpoint

import (
	"errors"
	"fmt"
)

// Sentinel errors for filter configuration.
var (
	// ErrMinLenTooSmall is returned when the requested window length is below 1.
	ErrMinLenTooSmall = errors.New("checkpoint: window length must be at least 1")

	// ErrNegativeBudget is returned when the mismatch budget is negative.
	ErrNegativeBudget = errors.New("checkpoint: mismatch budget must be non-negative")

	// ErrBudgetTooLarge is returned when the budget exceeds the window
	// length, leaving no stride to sample with.
	ErrBudgetTooLarge = errors.New("checkpoint: mismatch budget leaves no stride")
)

// SweepEvent describes one executed sweep:
// Shift is the sample-group index (0..Stride-1) just processed,
// Active the number of candidates still alive afterwards,
// Eliminated how many candidates this sweep removed.
// Sweeping stops early once Active reaches zero, so observers see only
// the sweeps that actually ran.
type SweepEvent struct {
	Shift      int
	Active     int
	Eliminated int
}

// Option configures filter behavior via functional arguments.
type Option func(*Options)

// Options holds the tunable callbacks of one Filter invocation.
type Options struct {
	// OnSweep is called after every executed sweep, in shift order.
	OnSweep func(SweepEvent)
}

// DefaultOptions returns Options with a no-op sweep observer.
func DefaultOptions() Options {
	return Options{OnSweep: func(SweepEvent) {}}
}

// WithOnSweep registers an observer invoked once per executed sweep.
// A nil fn keeps the no-op default.
func WithOnSweep(fn func(SweepEvent)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSweep = fn
		}
	}
}

// Plan captures the sampling geometry derived from a window length and a
// mismatch budget. A Plan is immutable; derive stream-dependent figures
// through its methods.
type Plan struct {
	// MinLen is the requested minimum window length L.
	MinLen int

	// Budget is the maximum tolerated mismatch count E.
	Budget int

	// Stride is the sample-group spacing M = floor((L+1)/(E+1)).
	Stride int

	// Window is the number of stream positions each candidate's count
	// covers: Stride*(Budget+1). Candidate J covers the positions
	// [J*Stride, J*Stride+Window-1], each sampled exactly once.
	Window int

	// EffectiveMinLen is Window-1, the span between a window's first and
	// last position. A caller asking for MinLen is effectively served
	// this length; the reduction is observable and documented.
	EffectiveMinLen int
}

// NewPlan validates the pair (minLen, budget) and derives the sampling
// geometry. Returns ErrMinLenTooSmall, ErrNegativeBudget, or
// ErrBudgetTooLarge. Complexity: O(1).
func NewPlan(minLen, budget int) (Plan, error) {
	if minLen < 1 {
		return Plan{}, fmt.Errorf("%w: got %d", ErrMinLenTooSmall, minLen)
	}
	if budget < 0 {
		return Plan{}, fmt.Errorf("%w: got %d", ErrNegativeBudget, budget)
	}
	stride := (minLen + 1) / (budget + 1)
	if stride < 1 {
		return Plan{}, fmt.Errorf("%w: window %d, budget %d", ErrBudgetTooLarge, minLen, budget)
	}
	window := stride * (budget + 1)

	return Plan{
		MinLen:          minLen,
		Budget:          budget,
		Stride:          stride,
		Window:          window,
		EffectiveMinLen: window - 1,
	}, nil
}

// Checks reports how many stride-sized blocks cover a stream of
// streamLen positions: ceil(streamLen/Stride), 0 for an empty stream.
func (p Plan) Checks(streamLen int) int {
	if streamLen <= 0 {
		return 0
	}
	return (streamLen + p.Stride - 1) / p.Stride
}

// PaddedLen reports the stream length after right-padding to a whole
// number of stride blocks: Checks(streamLen)*Stride.
func (p Plan) PaddedLen(streamLen int) int {
	return p.Checks(streamLen) * p.Stride
}

// Candidates reports how many starting offsets the filter considers for
// a stream of streamLen positions: Checks-Budget, clamped at zero.
func (p Plan) Candidates(streamLen int) int {
	c := p.Checks(streamLen) - p.Budget
	if c < 0 {
		return 0
	}
	return c
}

// CandidateOffset returns the stream offset anchoring candidate j:
// (j+1)*Stride-1.
func (p Plan) CandidateOffset(j int) int {
	return (j+1)*p.Stride - 1
}

// WindowBounds returns the first and last stream position covered by
// candidate j's window.
func (p Plan) WindowBounds(j int) (lo, hi int) {
	lo = j * p.Stride
	return lo, lo + p.Window - 1
}
