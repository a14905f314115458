// Package diagonal projects two symbol sequences onto the diagonals of
// their implicit comparison matrix, producing boolean mismatch streams.
//
// What:
//
//   - Count reports how many diagonals an n×m comparison matrix has.
//   - Origin locates the start cell of the diagonal with a given offset.
//   - Length measures how many aligned symbol pairs lie on a diagonal.
//   - Project emits a diagonal's mismatch stream: element i is true
//     exactly when the sequences disagree at the i-th cell along it.
//
// Diagonal numbering runs from the bottom-left corner of the matrix to
// the top-right: offset 0 starts at cell (n-1, 0), offset n+m-2 at
// (0, m-1), and offset n-1 is the main diagonal starting at (0, 0).
//
// Why:
//
//   - Substitution-only (Hamming-style) comparison decomposes cleanly per
//     diagonal: an ungapped window lives entirely on one diagonal.
//   - Downstream filters (see checkpoint) consume the boolean stream form
//     without caring which symbol alphabet produced it.
//
// Complexity:
//
//   - Count, Origin, Length: O(1).
//   - Project: O(diagonal length) time and memory.
//
// Errors:
//
//   - ErrOffsetOutOfRange: offset outside [0, n+m-2].
//
// A zero-length diagonal is data, not failure: Project returns an empty
// stream and the caller moves on.
package diagonal
