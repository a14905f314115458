// Package prefilter scans every diagonal of a sequence pair through the
// sparse checkpoint filter and aggregates the survivors.
package prefilter

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lvlign/checkpoint"
	"github.com/katalvlaran/lvlign/diagonal"
)

// Scan projects every diagonal of the comparison matrix between a and b,
// filters each mismatch stream under (minLen, budget), and aggregates
// the surviving anchors per diagonal. Diagonals are independent, so the
// Result content does not depend on scheduling.
// Returns ErrOptionViolation for bad options, or the checkpoint
// configuration errors for an invalid (minLen, budget) pair, in both
// cases before any diagonal is projected.
// Complexity: O(n*m) symbol comparisons plus the per-diagonal filter
// sweeps; Memory: O(result) plus one projected stream per worker.
func Scan[S comparable](a, b []S, minLen, budget int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	plan, err := checkpoint.NewPlan(minLen, budget)
	if err != nil {
		return nil, fmt.Errorf("prefilter: %w", err)
	}

	n, m := len(a), len(b)
	count := diagonal.Count(n, m)
	perDiag := make([][]int, count)
	errs := make([]error, count)

	if o.Workers > 1 && count > 1 {
		scanParallel(a, b, plan, &o, perDiag, errs)
	} else {
		for off := 0; off < count; off++ {
			perDiag[off], errs[off] = scanDiagonal(a, b, plan, &o, off)
		}
	}
	for _, err = range errs {
		if err != nil {
			return nil, err
		}
	}

	res := &Result{Rows: n, Cols: m, Plan: plan, PerDiagonal: make(map[int][]int, count)}
	for off, anchors := range perDiag {
		res.PerDiagonal[off] = anchors
	}

	return res, nil
}

// scanParallel fans diagonals out over a bounded worker pool. Every
// diagonal writes only its own slot, so the slices need no locking.
func scanParallel[S comparable](a, b []S, plan checkpoint.Plan, o *Options, perDiag [][]int, errs []error) {
	sem := make(chan struct{}, o.Workers)
	var wg sync.WaitGroup

	for off := range perDiag {
		wg.Add(1)
		go func(off int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			perDiag[off], errs[off] = scanDiagonal(a, b, plan, o, off)
		}(off)
	}
	wg.Wait()
}

// scanDiagonal projects one diagonal and filters its stream. A
// degenerate (empty) stream records an empty anchor set without invoking
// the filter.
func scanDiagonal[S comparable](a, b []S, plan checkpoint.Plan, o *Options, off int) ([]int, error) {
	stream, err := diagonal.Project(a, b, off)
	if err != nil {
		return nil, fmt.Errorf("prefilter: diagonal %d: %w", off, err)
	}

	anchors := make([]int, 0)
	if len(stream) > 0 {
		anchors = plan.Filter(stream, checkpoint.WithOnSweep(o.OnSweep))
	}
	o.OnDiagonal(DiagonalEvent{
		Offset:     off,
		StreamLen:  len(stream),
		Candidates: plan.Candidates(len(stream)),
		Survivors:  len(anchors),
	})

	return anchors, nil
}
