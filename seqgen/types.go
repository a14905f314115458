// Package seqgen defines alphabets, options, and error definitions for
// sequence fixture generation.
package seqgen

import (
	"errors"
	"math/rand"
)

// Alphabet presets.
var (
	// DNA is the default four-letter nucleotide alphabet.
	DNA = []byte("ACGT")

	// Binary is a two-valued alphabet for stream-flavored demos.
	Binary = []byte("01")
)

// Sentinel errors for fixture generation.
var (
	// ErrBadLength is returned when a negative sequence length is requested.
	ErrBadLength = errors.New("seqgen: length must be non-negative")

	// ErrBadMutations is returned when the substitution count does not
	// fit the sequence.
	ErrBadMutations = errors.New("seqgen: substitutions must fit the sequence")

	// ErrShortAlphabet is returned when the alphabet cannot serve the
	// requested operation.
	ErrShortAlphabet = errors.New("seqgen: alphabet too short")
)

// Option configures generation via functional arguments.
type Option func(*Options)

// Options holds the tunable parameters of Random and Mutate.
type Options struct {
	// Alphabet is the symbol set drawn from. Random needs at least one
	// symbol, Mutate at least two distinct ones.
	Alphabet []byte

	// Rand is the random source. When nil, a deterministic stream is
	// derived from Seed.
	Rand *rand.Rand

	// Seed selects the deterministic stream used when Rand is nil;
	// 0 selects the fixed default seed.
	Seed int64
}

// DefaultOptions returns Options drawing DNA symbols from the fixed
// default stream.
func DefaultOptions() Options {
	return Options{Alphabet: DNA, Rand: nil, Seed: 0}
}

// WithAlphabet swaps the symbol set.
func WithAlphabet(alphabet []byte) Option {
	return func(o *Options) { o.Alphabet = alphabet }
}

// WithSeed selects a deterministic stream; 0 keeps the fixed default.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand supplies a caller-owned source, taking precedence over
// WithSeed. A nil rng keeps the seed-derived default.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rand = rng
		}
	}
}

// rng materializes the configured source.
func (o *Options) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	return rngFromSeed(o.Seed)
}
