// Package lvlign is an in-memory toolkit for pre-filtering local-alignment
// candidates: it scans every diagonal of a sequence pair and keeps only the
// spots that could still hold an alignment window within a mismatch budget.
//
// 🚀 What is lvlign?
//
//	A small, deterministic, sparse-sampling library that brings together:
//		• Diagonal projection: turn a sequence pair into boolean mismatch streams
//		• Checkpoint filtering: probe one position in ~(L+1)/(E+1) instead of all L
//		• Parallel scanning: fan diagonals out across a bounded worker pool
//		• Sequence generation: reproducible random and mutated test inputs
//
// ✨ Why choose lvlign?
//
//   - Beginner-friendly - minimal API, clear, intuitive naming
//   - Deterministic - same inputs and seed give the same survivors, at any worker count
//   - Honest elimination - a discarded spot provably exceeds the mismatch budget
//   - Extensible - add custom hooks (OnSweep, OnDiagonal…) for custom logic
//
// Under the hood, everything is organized under four subpackages:
//
//	checkpoint/ — the sparse filter: plan geometry, sweeps, candidate elimination
//	diagonal/   — anti-diagonal numbering and projection to mismatch streams
//	prefilter/  — whole-pair scans, worker pool, survivor lookup
//	seqgen/     —
//
// Quick ASCII example:
//
//	      G A T T A          one diagonal of the comparison grid
//	    G ╲                  becomes one mismatch stream:
//	    A   ╲
//	    C     ╲              match    -> false
//	    T       ╲            mismatch -> true
//
//	the filter then probes each stream at a sparse set of checkpoints.
//
// Next up: gapped extensions, seed chaining, probabilistic scoring and beyond.
// Dive into README.md for full examples, a feature matrix, and our roadmap.
//
//	go get github.com/katalvlaran/lvlign
package lvlign
