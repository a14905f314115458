// Package prefilter defines options, result types, and error definitions
// for whole-matrix diagonal scans.
package prefilter

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlign/checkpoint"
	"github.com/katalvlaran/lvlign/diagonal"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("prefilter: invalid option supplied")

// DiagonalEvent describes one fully processed diagonal:
// Offset identifies the diagonal, StreamLen the projected stream length,
// Candidates how many anchors the filter considered, Survivors how many
// remained.
type DiagonalEvent struct {
	Offset     int
	StreamLen  int
	Candidates int
	Survivors  int
}

// Option configures Scan behavior via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when
// Scan is invoked.
type Option func(*Options)

// Options holds the tunable parameters and callbacks of a scan.
type Options struct {
	// Workers bounds how many diagonals are filtered concurrently.
	// 1 scans sequentially in ascending offset order.
	Workers int

	// OnDiagonal is called once per processed diagonal. With Workers > 1
	// it fires from multiple goroutines and must be safe for concurrent
	// use; the per-diagonal order is then unspecified.
	OnDiagonal func(DiagonalEvent)

	// OnSweep is forwarded to every per-diagonal filter invocation.
	// The same concurrency caveat as OnDiagonal applies.
	OnSweep func(checkpoint.SweepEvent)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sequential scanning, a no-op
// diagonal observer, and no sweep observer.
func DefaultOptions() Options {
	return Options{
		Workers:    1,
		OnDiagonal: func(DiagonalEvent) {},
		OnSweep:    nil,
		err:        nil,
	}
}

// WithWorkers bounds concurrent diagonal processing.
//
//	k > 1: up to k diagonals in flight
//	k == 1: sequential scan (default)
//	k < 1: invalid option, surfaces ErrOptionViolation
func WithWorkers(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: Workers must be at least 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.Workers = k
	}
}

// WithOnDiagonal registers a callback fired once per processed diagonal.
func WithOnDiagonal(fn func(DiagonalEvent)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiagonal = fn
		}
	}
}

// WithOnSweep forwards a sweep observer to every per-diagonal filter run.
func WithOnSweep(fn func(checkpoint.SweepEvent)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSweep = fn
		}
	}
}

// Result aggregates one scan: the comparison-matrix dimensions, the
// resolved filter geometry, and the surviving anchors per diagonal.
type Result struct {
	// Rows is the first sequence's length, Cols the second's.
	Rows int
	Cols int

	// Plan is the filter geometry every diagonal was swept with.
	Plan checkpoint.Plan

	// PerDiagonal maps each diagonal offset to its surviving anchors in
	// ascending order. Every scanned diagonal has an entry; a degenerate
	// or fully eliminated one maps to an empty set.
	PerDiagonal map[int][]int
}

// At returns the surviving anchors recorded for diagonal off, or nil
// when off was never scanned.
func (r *Result) At(off int) []int {
	return r.PerDiagonal[off]
}

// Diagonals reports how many diagonals the scan visited.
func (r *Result) Diagonals() int {
	return len(r.PerDiagonal)
}

// Total counts surviving anchors across all diagonals.
func (r *Result) Total() int {
	total := 0
	for _, anchors := range r.PerDiagonal {
		total += len(anchors)
	}
	return total
}

// Locate maps an anchor on diagonal off back to its cell in the
// comparison matrix; Coord.Row indexes the first sequence, Coord.Col the
// second. Surviving anchors always lie within the projected stream, so
// the cell of a survivor is always in bounds.
// Returns diagonal.ErrOffsetOutOfRange when off is not a valid diagonal.
func (r *Result) Locate(off, anchor int) (diagonal.Coord, error) {
	org, err := diagonal.Origin(r.Rows, r.Cols, off)
	if err != nil {
		return diagonal.Coord{}, err
	}
	return org.At(anchor), nil
}
