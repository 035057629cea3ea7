package spmatrixio

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	sp "github.com/xyuan/libspmatrix"
)

type triplet struct {
	i, j sp.Index
	v    sp.Real
}

// Dump writes a plain-text representation of m to w: a header line
// "rows cols nnz orientation" followed by one "i j v" triplet per
// stored entry, zero-based, in ascending row-then-column order
// regardless of m's internal storage orientation.
func Dump(w io.Writer, m sp.Dumpable) error {
	bw := bufio.NewWriter(w)
	rows, cols := m.Dims()
	if _, err := fmt.Fprintf(bw, "%d %d %d %s\n", rows, cols, m.NNZ(), m.Orientation()); err != nil {
		return err
	}

	triplets := make([]triplet, 0, m.NNZ())
	m.Do(func(i, j sp.Index, v sp.Real) {
		triplets = append(triplets, triplet{i, j, v})
	})
	sort.Slice(triplets, func(a, b int) bool {
		if triplets[a].i != triplets[b].i {
			return triplets[a].i < triplets[b].i
		}
		return triplets[a].j < triplets[b].j
	})

	for _, t := range triplets {
		if _, err := fmt.Fprintf(bw, "%d %d %.17g\n", t.i, t.j, t.v); err != nil {
			return err
		}
	}
	return bw.Flush()
}
