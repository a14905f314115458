// Package checkpoint sweeps boolean mismatch streams with a sparse,
// exact, early-abandoning window filter.
package checkpoint

// Filter returns the starting offsets (in stream coordinates) whose
// window holds at most budget mismatches, in ascending order. The window
// geometry derives from (minLen, budget); see NewPlan and Plan. Positions
// past the end of stream count as mismatches; stream itself is never
// modified.
// Returns ErrMinLenTooSmall, ErrNegativeBudget, or ErrBudgetTooLarge
// before any sweep runs.
// Complexity: O(Candidates*(budget+1)) per sweep, at most Stride sweeps.
func Filter(stream []bool, minLen, budget int, opts ...Option) ([]int, error) {
	plan, err := NewPlan(minLen, budget)
	if err != nil {
		return nil, err
	}
	return plan.Filter(stream, opts...), nil
}

// Filter runs the sweep loop under an already validated plan.
// Infallible: every index any shift can touch lies inside the padded
// stream, and candidate counts only grow.
func (p Plan) Filter(stream []bool, opts ...Option) []int {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newSweeper(p, stream, o.OnSweep).run()
}

// candidate pairs a starting-offset anchor with its running mismatch count.
type candidate struct {
	offset int
	count  int
}

// sweeper holds the mutable state of one Filter invocation.
type sweeper struct {
	plan    Plan
	stream  []bool // padded copy when the input needed padding
	cands   []candidate
	onSweep func(SweepEvent)
}

// newSweeper pads the stream (copy-on-pad, mismatches only) to a whole
// number of stride blocks and lays out one candidate per check position
// beyond the budget.
func newSweeper(p Plan, stream []bool, onSweep func(SweepEvent)) *sweeper {
	if onSweep == nil {
		onSweep = func(SweepEvent) {}
	}
	padded := stream
	if pl := p.PaddedLen(len(stream)); pl > len(stream) {
		padded = make([]bool, pl)
		copy(padded, stream)
		for i := len(stream); i < pl; i++ {
			padded[i] = true
		}
	}
	cands := make([]candidate, p.Candidates(len(stream)))
	for j := range cands {
		cands[j] = candidate{offset: p.CandidateOffset(j)}
	}

	return &sweeper{plan: p, stream: padded, cands: cands, onSweep: onSweep}
}

// run executes sweeps in natural shift order, stopping early once no
// candidate remains, and returns the survivors' anchors in ascending
// order.
func (s *sweeper) run() []int {
	for q := 0; q < s.plan.Stride && len(s.cands) > 0; q++ {
		s.sweep(q)
	}
	return s.result()
}

// sweep adds sample group shift to every active candidate and compacts
// the survivors in place. The write cursor never passes the read cursor,
// so no candidate is skipped or counted twice; the live slice length is
// the only loop bound.
func (s *sweeper) sweep(shift int) {
	before := len(s.cands)
	alive := s.cands[:0]
	for _, c := range s.cands {
		c.count = s.accumulate(c.offset-shift, c.count)
		if c.count > s.plan.Budget {
			continue // eliminated for good
		}
		alive = append(alive, c)
	}
	s.cands = alive
	s.onSweep(SweepEvent{Shift: shift, Active: len(alive), Eliminated: before - len(alive)})
}

// accumulate adds the mismatches at base, base+M, ..., base+E*M to count,
// abandoning the group as soon as the budget is exceeded.
func (s *sweeper) accumulate(base, count int) int {
	top := base + s.plan.Budget*s.plan.Stride
	for i := base; i <= top; i += s.plan.Stride {
		if s.stream[i] {
			count++
			if count > s.plan.Budget {
				return count
			}
		}
	}
	return count
}

// result snapshots the surviving anchors.
func (s *sweeper) result() []int {
	out := make([]int, len(s.cands))
	for i, c := range s.cands {
		out[i] = c.offset
	}
	return out
}
