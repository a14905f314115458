// Package seqgen fabricates deterministic sequence fixtures for demos,
// tests, and benchmarks.
//
// What:
//
//   - Random draws n symbols uniformly from a configurable alphabet
//     (DNA by default, Binary for stream-flavored demos).
//   - Mutate copies a sequence and substitutes exactly k distinct
//     positions, never reusing the original symbol, so the copy sits at
//     Hamming distance exactly k from its source.
//
// Determinism:
//
//   - Same seed, same output, on every platform. No time-based sources
//     anywhere; Seed 0 selects a fixed default stream.
//   - WithRand hands over a caller-owned source instead. math/rand
//     sources are not goroutine-safe; do not share one across
//     concurrent generators.
//
// Errors:
//
//   - ErrBadLength: negative sequence length.
//   - ErrBadMutations: substitution count negative or past the sequence.
//   - ErrShortAlphabet: alphabet cannot serve the operation (Random
//     needs one symbol, Mutate an alternative per mutated position).
package seqgen
