// Package prefilter runs the sparse checkpoint filter across every
// diagonal of the comparison matrix between two sequences, producing the
// candidate regions a downstream exact aligner would verify.
//
// What:
//
//   - Scan projects each diagonal to a mismatch stream (see diagonal),
//     sweeps it with the checkpoint filter (see checkpoint), and collects
//     the surviving anchors per diagonal into a Result.
//   - Result maps anchors back to comparison-matrix cells via Locate.
//   - WithWorkers fans independent diagonals out over a bounded pool;
//     WithOnDiagonal and WithOnSweep observe progress.
//
// Diagonals are fully independent: no state crosses diagonal boundaries,
// so the Result content never depends on scheduling. A scan is bounded
// and deterministic for fixed inputs; no cancellation hooks are needed.
//
// Why:
//
//   - Substitution-only candidate regions decompose per diagonal, and the
//     filter prunes each diagonal in sublinear work per window. Scanning
//     all n+m-1 diagonals yields every plausible region in one pass.
//
// Complexity:
//
//   - Scan: O(n*m) symbol comparisons across all diagonals plus the
//     filter sweeps; Memory: O(result) plus one stream per worker.
//
// Errors:
//
//   - ErrOptionViolation: invalid Option value (Workers < 1).
//   - checkpoint.ErrMinLenTooSmall, checkpoint.ErrNegativeBudget,
//     checkpoint.ErrBudgetTooLarge: invalid (minLen, budget), surfaced
//     before any diagonal is projected.
//
// A degenerate diagonal (zero projected length) is data, not failure:
// its entry records an empty set and the scan continues.
package prefilter
