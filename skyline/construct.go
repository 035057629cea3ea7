package skyline

import (
	"sort"

	sp "github.com/xyuan/libspmatrix"
	"github.com/xyuan/libspmatrix/yale"
)

// NewFromYale builds a SKYLINE view of m, which must be square with a
// symmetric nonzero portrait (A[i,j] != 0 iff A[j,i] != 0; values may
// differ). A portrait that fails the check returns
// spmatrix.ErrPortraitNotSymmetric. After the portrait check the algorithm
// makes two passes over m: count strict-lower entries per row to build
// iptr, then fill diag, lower,
// jptr and the aliased upper value read back from m via At.
func NewFromYale(m *yale.Matrix) (*Matrix, error) {
	rows, cols := m.Dims()
	if rows != cols {
		return nil, sp.ErrShapeMismatch
	}
	if !hasSymmetricPortrait(m) {
		return nil, sp.ErrPortraitNotSymmetric
	}

	iptr := make([]sp.Index, rows+1)
	m.Do(func(i, j sp.Index, _ sp.Real) {
		if j < i {
			iptr[i+1]++
		}
	})
	for i := 0; i < rows; i++ {
		iptr[i+1] += iptr[i]
	}
	trNNZ := int(iptr[rows])

	diag := make([]sp.Real, rows)
	lower := make([]sp.Real, trNNZ)
	upper := make([]sp.Real, trNNZ)
	jptr := make([]sp.Index, trNNZ)
	cursor := append([]sp.Index(nil), iptr[:rows]...)

	m.Do(func(i, j sp.Index, v sp.Real) {
		switch {
		case i == j:
			diag[i] = v
		case j < i:
			pos := cursor[i]
			jptr[pos] = j
			lower[pos] = v
			upper[pos] = m.At(j, i)
			cursor[i]++
		}
	})

	return &Matrix{
		rows: rows, trNNZ: trNNZ,
		diag: diag, lower: lower, upper: upper,
		jptr: jptr, iptr: iptr,
	}, nil
}

// hasSymmetricPortrait reports whether, for every stored (i, j), the
// position (j, i) is also structurally stored (possibly with a different
// value). It is checked directly against the raw offsets/indices rather
// than through At, since At cannot distinguish an absent entry from an
// explicitly stored zero.
func hasSymmetricPortrait(m *yale.Matrix) bool {
	rows, cols := m.Dims()
	if rows != cols {
		return false
	}
	ok := true
	m.Do(func(i, j sp.Index, _ sp.Real) {
		if i == j || !ok {
			return
		}
		if !hasStored(m, j, i) {
			ok = false
		}
	})
	return ok
}

// hasStored reports whether (i, j) is a structurally stored position in
// m, using the exported Offsets/Indices accessors so this check works
// regardless of m's orientation.
func hasStored(m *yale.Matrix, i, j sp.Index) bool {
	principal, cross := i, j
	if m.Orientation() == sp.ColMajor {
		principal, cross = j, i
	}
	offsets, indices := m.Offsets(), m.Indices()
	lo, hi := offsets[principal], offsets[principal+1]
	slice := indices[lo:hi]
	k := sort.Search(len(slice), func(k int) bool { return slice[k] >= cross })
	return k < len(slice) && slice[k] == cross
}
