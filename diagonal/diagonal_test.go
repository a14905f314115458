package diagonal_test

import (
	"testing"

	"github.com/katalvlaran/lvlign/diagonal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCount_Dimensions verifies the diagonal count for a spread of
// matrix shapes, including empty ones.
func TestCount_Dimensions(t *testing.T) {
	cases := []struct {
		name string
		n, m int
		want int
	}{
		{"both empty", 0, 0, 0},
		{"single row empty col", 1, 0, 0},
		{"empty row single col", 0, 1, 0},
		{"one cell", 1, 1, 1},
		{"row vector", 1, 6, 6},
		{"col vector", 6, 1, 6},
		{"square", 10, 10, 19},
		{"rectangular", 3, 7, 9},
		{"degenerate wide", 5, 0, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, diagonal.Count(tc.n, tc.m))
		})
	}
}

// TestOrigin_Corners checks the three landmark diagonals: bottom-left,
// main, and top-right.
func TestOrigin_Corners(t *testing.T) {
	n, m := 4, 6

	org, err := diagonal.Origin(n, m, 0)
	require.NoError(t, err)
	assert.Equal(t, diagonal.Coord{Row: 3, Col: 0}, org, "offset 0 starts at the bottom-left corner")

	org, err = diagonal.Origin(n, m, n-1)
	require.NoError(t, err)
	assert.Equal(t, diagonal.Coord{Row: 0, Col: 0}, org, "offset n-1 is the main diagonal")

	org, err = diagonal.Origin(n, m, n+m-2)
	require.NoError(t, err)
	assert.Equal(t, diagonal.Coord{Row: 0, Col: 5}, org, "last offset starts at the top-right corner")
}

// TestOrigin_OutOfRange ensures offsets outside [0, n+m-2] signal
// ErrOffsetOutOfRange instead of degrading to an empty result.
func TestOrigin_OutOfRange(t *testing.T) {
	_, err := diagonal.Origin(4, 6, -1)
	assert.ErrorIs(t, err, diagonal.ErrOffsetOutOfRange, "negative offset must error")

	_, err = diagonal.Origin(4, 6, 9)
	assert.ErrorIs(t, err, diagonal.ErrOffsetOutOfRange, "offset n+m-1 must error")

	_, err = diagonal.Origin(0, 0, 0)
	assert.ErrorIs(t, err, diagonal.ErrOffsetOutOfRange, "empty matrix has no diagonals")
}

// TestLength_MatchesCellWalk cross-checks Length against walking the
// diagonal cell by cell inside the matrix bounds.
func TestLength_MatchesCellWalk(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {4, 6}, {6, 4}, {5, 5}, {1, 8}} {
		n, m := dims[0], dims[1]
		for off := 0; off < diagonal.Count(n, m); off++ {
			org, err := diagonal.Origin(n, m, off)
			require.NoError(t, err)

			walked := 0
			for c := org; c.Row < n && c.Col < m; c = c.At(1) {
				walked++
			}

			got, err := diagonal.Length(n, m, off)
			require.NoError(t, err)
			assert.Equal(t, walked, got, "n=%d m=%d offset=%d", n, m, off)
		}
	}
}

// TestProject_SelfComparison verifies that the main diagonal of a
// self-comparison is all matches, and that every diagonal of a uniform
// sequence is, with the expected lengths throughout.
func TestProject_SelfComparison(t *testing.T) {
	seq := []byte("GATTACCA")
	n := len(seq)

	stream, err := diagonal.Project(seq, seq, n-1)
	require.NoError(t, err)
	require.Len(t, stream, n)
	for i, mismatch := range stream {
		assert.False(t, mismatch, "main diagonal position=%d", i)
	}

	// Off-diagonals compare the sequence against a shifted copy of
	// itself, so only a uniform sequence is all-match everywhere.
	uniform := []byte("AAAAAAA")
	n = len(uniform)
	for off := 0; off < diagonal.Count(n, n); off++ {
		stream, err = diagonal.Project(uniform, uniform, off)
		require.NoError(t, err)

		want, err := diagonal.Length(n, n, off)
		require.NoError(t, err)
		require.Len(t, stream, want, "offset=%d", off)
		for i, mismatch := range stream {
			assert.False(t, mismatch, "offset=%d position=%d", off, i)
		}
	}
}

// TestProject_MainDiagonal checks a hand-computed mismatch stream on the
// main diagonal of two equal-length sequences.
func TestProject_MainDiagonal(t *testing.T) {
	a := []byte("GATTACA")
	b := []byte("GACTATA")

	stream, err := diagonal.Project(a, b, len(a)-1)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, true, false, false, true, false}, stream)
}

// TestProject_SideDiagonals checks streams off the main diagonal, where
// row and column origins differ.
func TestProject_SideDiagonals(t *testing.T) {
	a := []byte("ACGT")
	b := []byte("CGTT")
	n, m := len(a), len(b)

	// offset 2 starts at (1, 0): pairs C/C, G/G, T/T.
	stream, err := diagonal.Project(a, b, 2)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, false}, stream)

	// offset 4 starts at (0, 1): pairs A/G, C/T, G/T.
	stream, err = diagonal.Project(a, b, 4)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, true}, stream)

	// offset n+m-2 starts at (0, m-1): single pair A/T.
	stream, err = diagonal.Project(a, b, n+m-2)
	require.NoError(t, err)
	assert.Equal(t, []bool{true}, stream)
}

// TestProject_FullRange verifies that both extreme offsets project
// non-empty streams for non-empty inputs, and that the first offset
// past the range errors.
func TestProject_FullRange(t *testing.T) {
	a := []byte("ACGTAC")
	b := []byte("TGCA")
	n, m := len(a), len(b)

	first, err := diagonal.Project(a, b, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, first, "offset 0 must project a stream")

	last, err := diagonal.Project(a, b, n+m-2)
	require.NoError(t, err)
	assert.NotEmpty(t, last, "offset n+m-2 must project a stream")

	_, err = diagonal.Project(a, b, n+m-1)
	assert.ErrorIs(t, err, diagonal.ErrOffsetOutOfRange)
}

// TestProject_DegenerateDiagonal ensures a diagonal with no cells inside
// the matrix yields an empty stream, not an error.
func TestProject_DegenerateDiagonal(t *testing.T) {
	a := []byte("ACGTA")
	var b []byte

	require.Equal(t, 4, diagonal.Count(len(a), len(b)))
	stream, err := diagonal.Project(a, b, 2)
	require.NoError(t, err)
	assert.Empty(t, stream)
	assert.NotNil(t, stream, "degenerate stream is empty, not absent")
}

// TestProject_GenericSymbols exercises non-byte alphabets.
func TestProject_GenericSymbols(t *testing.T) {
	ints1 := []int{1, 2, 3, 4}
	ints2 := []int{1, 9, 3, 9}
	stream, err := diagonal.Project(ints1, ints2, len(ints1)-1)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false, true}, stream)

	runes1 := []rune("αβγ")
	runes2 := []rune("αδγ")
	stream, err = diagonal.Project(runes1, runes2, len(runes1)-1)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false}, stream)
}

// TestCoord_At verifies stream-offset to cell arithmetic.
func TestCoord_At(t *testing.T) {
	org := diagonal.Coord{Row: 3, Col: 0}
	assert.Equal(t, org, org.At(0))
	assert.Equal(t, diagonal.Coord{Row: 5, Col: 2}, org.At(2))
}
