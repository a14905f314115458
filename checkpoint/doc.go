// Package checkpoint implements a sparse checkpoint filter over boolean
// mismatch streams: an exact, incremental, early-abandoning counter that
// reports which starting offsets admit a window holding at most a given
// number of mismatches.
//
// What:
//
//   - NewPlan derives the sampling geometry (stride, window size,
//     candidate layout) from a window length L and a mismatch budget E.
//   - Filter sweeps a mismatch stream and returns the surviving starting
//     offsets: exactly those whose window stays within budget.
//   - WithOnSweep observes each executed sweep (shift, survivors,
//     eliminations) without touching the result.
//
// How:
//
// The stride M = floor((L+1)/(E+1)) splits each candidate window into M
// disjoint sample groups of E+1 positions, spaced M apart. One sweep adds
// one group to every active candidate's running count; a candidate whose
// count exceeds E is eliminated permanently. Across all M sweeps the
// groups tile the window with every position sampled exactly once, so a
// survivor's final count is its exact window mismatch total. Early
// elimination (and abandoning a group mid-sum once the budget is blown)
// skips work only for candidates already out; membership never depends
// on it, nor on the order the sweeps run in.
//
// The stream is treated as right-padded with mismatches to a whole number
// of stride blocks, so no shift/coverage combination indexes out of
// bounds. Padding can only reject a window, never wrongly accept one, and
// the input slice itself is never modified.
//
// Window geometry: a survivor at anchor (J+1)*M-1 certifies the M*(E+1)
// positions [J*M, J*M+M*(E+1)-1], a span of M*(E+1)-1. The requested L is
// thereby reduced to Plan.EffectiveMinLen; callers needing the full
// requested length re-verify survivors downstream.
//
// Why:
//
//   - Summing every window in full costs O(checks*L). Sweeping
//     group-by-group drops hopeless candidates after as little as one
//     group, degrading gracefully toward O(checks*(E+1)) on
//     mismatch-dense streams while staying exact for survivors.
//
// Complexity:
//
//   - Filter: at most M sweeps of O(active*(E+1)) each;
//     Memory: O(candidates), plus one padded copy when padding applies.
//
// Errors:
//
//   - ErrMinLenTooSmall: window length below 1.
//   - ErrNegativeBudget: negative mismatch budget.
//   - ErrBudgetTooLarge: budget exceeds the window length, so the stride
//     vanishes and nothing can be discriminated.
package checkpoint
