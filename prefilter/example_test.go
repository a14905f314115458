package prefilter_test

import (
	"fmt"

	"github.com/katalvlaran/lvlign/prefilter"
)

// ExampleScan filters two reads differing by a single substitution and
// maps the first surviving anchor of the main diagonal back to its cell.
func ExampleScan() {
	a := []byte("GATTACAGAT")
	b := []byte("GATTATAGAT")

	res, err := prefilter.Scan(a, b, 8, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	main := len(a) - 1
	fmt.Println("diagonals scanned:", res.Diagonals())
	fmt.Println("main diagonal survivors:", res.At(main))

	cell, _ := res.Locate(main, res.At(main)[0])
	fmt.Printf("first anchor sits at row %d, col %d\n", cell.Row, cell.Col)
	// Output:
	// diagonals scanned: 19
	// main diagonal survivors: [1 3]
	// first anchor sits at row 1, col 1
}

// ExampleWithOnDiagonal reports per-diagonal progress for the diagonals
// that can host at least one candidate window.
func ExampleWithOnDiagonal() {
	a := []byte("AAAAAAAAAA")
	b := []byte("AAAAAAAAAA")

	_, err := prefilter.Scan(a, b, 8, 3, prefilter.WithOnDiagonal(func(ev prefilter.DiagonalEvent) {
		if ev.Candidates > 0 {
			fmt.Printf("diagonal %d: %d of %d survive\n", ev.Offset, ev.Survivors, ev.Candidates)
		}
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	// Output:
	// diagonal 6: 1 of 1 survive
	// diagonal 7: 1 of 1 survive
	// diagonal 8: 2 of 2 survive
	// diagonal 9: 2 of 2 survive
	// diagonal 10: 2 of 2 survive
	// diagonal 11: 1 of 1 survive
	// diagonal 12: 1 of 1 survive
}
