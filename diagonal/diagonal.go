// Package diagonal maps offsets of the n×m comparison matrix between two
// sequences to start coordinates, lengths, and boolean mismatch streams.
package diagonal

import (
	"errors"
	"fmt"
)

// ErrOffsetOutOfRange is returned when a diagonal offset falls outside
// the valid range [0, n+m-2] for the given sequence lengths.
var ErrOffsetOutOfRange = errors.New("diagonal: offset out of range")

// Coord addresses one cell of the comparison matrix:
// Row indexes the first sequence, Col the second.
type Coord struct {
	Row int
	Col int
}

// At returns the cell i steps further along the diagonal through c.
// Complexity: O(1).
func (c Coord) At(i int) Coord {
	return Coord{Row: c.Row + i, Col: c.Col + i}
}

// Count reports the number of diagonals of an n×m comparison matrix:
// n+m-1 when positive, otherwise 0. Valid offsets are 0..Count(n,m)-1.
// Complexity: O(1).
func Count(n, m int) int {
	if d := n + m - 1; d > 0 {
		return d
	}
	return 0
}

// Origin returns the start cell of the diagonal identified by offset.
// Offsets below n start on the first column at row n-1-offset; the rest
// start on the first row at column offset-(n-1).
// Returns ErrOffsetOutOfRange when offset is not in [0, Count(n,m)-1].
// Complexity: O(1).
func Origin(n, m, offset int) (Coord, error) {
	if offset < 0 || offset >= Count(n, m) {
		return Coord{}, fmt.Errorf("%w: offset %d, diagonals %d", ErrOffsetOutOfRange, offset, Count(n, m))
	}
	if offset < n {
		return Coord{Row: n - 1 - offset, Col: 0}, nil
	}
	return Coord{Row: 0, Col: offset - (n - 1)}, nil
}

// Length reports how many aligned symbol pairs lie on the diagonal:
// min(n-Row, m-Col) from its origin, never negative. A zero length means
// the diagonal degenerates at an empty matrix edge.
// Returns ErrOffsetOutOfRange when offset is invalid.
// Complexity: O(1).
func Length(n, m, offset int) (int, error) {
	org, err := Origin(n, m, offset)
	if err != nil {
		return 0, err
	}
	return span(n, m, org), nil
}

// Project emits the mismatch stream of one diagonal of the comparison
// matrix between a and b: stream[i] is true exactly when
// a[Row+i] != b[Col+i] for the diagonal's origin (Row, Col).
// A degenerate diagonal yields an empty stream and a nil error.
// Returns ErrOffsetOutOfRange when offset is not in [0, Count(n,m)-1].
// Complexity: O(diagonal length) time and memory.
func Project[S comparable](a, b []S, offset int) ([]bool, error) {
	n, m := len(a), len(b)
	org, err := Origin(n, m, offset)
	if err != nil {
		return nil, err
	}
	stream := make([]bool, span(n, m, org))
	for i := range stream {
		stream[i] = a[org.Row+i] != b[org.Col+i]
	}
	return stream, nil
}

// span counts the cells between org and the nearest matrix edge along
// the diagonal, clamped at zero for degenerate corners.
func span(n, m int, org Coord) int {
	s := n - org.Row
	if t := m - org.Col; t < s {
		s = t
	}
	if s < 0 {
		return 0
	}
	return s
}
