package yale

import (
	"sort"

	sp "github.com/xyuan/libspmatrix"
)

// Matrix is the YALE storage entity: offsets, indices and values arrays in
// either row-major (CRS) or column-major (CCS) orientation. A Matrix's
// portrait (offsets and indices) is immutable after construction; values
// may be updated in place through At-compatible kernels, but structural
// changes require building a new Matrix.
type Matrix struct {
	rows, cols  int
	orientation sp.Orientation
	nnz         int
	offsets     []sp.Index
	indices     []sp.Index
	values      []sp.Real
}

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (rows, cols int) { return m.rows, m.cols }

// Orientation returns the storage orientation.
func (m *Matrix) Orientation() sp.Orientation { return m.orientation }

// NNZ returns the number of stored nonzero entries.
func (m *Matrix) NNZ() int { return m.nnz }

// Offsets, Indices and Values expose the raw three-array representation
// for callers that need direct access (e.g. package skyline's construction
// pass, or a Matrix-Market writer). The returned slices alias the
// receiver's storage and must not be mutated in a way that violates the
// invariants documented on Matrix.
func (m *Matrix) Offsets() []sp.Index { return m.offsets }
func (m *Matrix) Indices() []sp.Index { return m.indices }
func (m *Matrix) Values() []sp.Real   { return m.values }

// principalLen is the number of offset slots: rows if RowMajor, cols if
// ColMajor.
func (m *Matrix) principalLen() int {
	if m.orientation == sp.ColMajor {
		return m.cols
	}
	return m.rows
}

// crossLen is the dimension indexed by Indices: cols if RowMajor, rows if
// ColMajor.
func (m *Matrix) crossLen() int {
	if m.orientation == sp.ColMajor {
		return m.rows
	}
	return m.cols
}

// At returns the value stored at (i, j), or 0 if absent. At panics if i or
// j falls outside the matrix dimensions. Each principal-axis slice is
// sorted ascending by cross index, so At uses binary search.
func (m *Matrix) At(i, j sp.Index) sp.Real {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(sp.ErrIndexOutOfRange)
	}
	principal, cross := i, j
	if m.orientation == sp.ColMajor {
		principal, cross = j, i
	}
	lo, hi := m.offsets[principal], m.offsets[principal+1]
	slice := m.indices[lo:hi]
	k := sort.Search(len(slice), func(k int) bool { return slice[k] >= cross })
	if k < len(slice) && slice[k] == cross {
		return m.values[lo+k]
	}
	return 0
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{rows: m.rows, cols: m.cols, orientation: m.orientation, nnz: m.nnz}
	out.offsets = append([]sp.Index(nil), m.offsets...)
	out.indices = append([]sp.Index(nil), m.indices...)
	out.values = append([]sp.Real(nil), m.values...)
	return out
}

// Do calls fn once per stored entry in (row, column, value) form,
// traversing principal-axis slices in order.
func (m *Matrix) Do(fn func(i, j sp.Index, v sp.Real)) {
	n := m.principalLen()
	for p := 0; p < n; p++ {
		for k := m.offsets[p]; k < m.offsets[p+1]; k++ {
			if m.orientation == sp.ColMajor {
				fn(m.indices[k], p, m.values[k])
			} else {
				fn(p, m.indices[k], m.values[k])
			}
		}
	}
}
