package skyline

import (
	sp "github.com/xyuan/libspmatrix"
)

// Matrix is the SKYLINE (CSLR) storage entity: a diagonal vector plus the
// strict lower and strict upper triangles of a symmetric-portrait matrix,
// packed row by row. lower[p] and upper[p] alias the same slot p: lower[p]
// holds A[i,jptr[p]] and upper[p] holds A[jptr[p],i] for the row i owning
// slot p (iptr[i] <= p < iptr[i+1]). This aliasing is the entire point of
// the format and downstream kernels depend on it.
type Matrix struct {
	rows, trNNZ int
	diag        []sp.Real
	lower       []sp.Real
	upper       []sp.Real
	jptr        []sp.Index
	iptr        []sp.Index
}

// Dims returns the number of rows (equal to the number of columns).
func (m *Matrix) Dims() int { return m.rows }

// TrNNZ returns the number of strict-lower (equivalently strict-upper)
// stored entries.
func (m *Matrix) TrNNZ() int { return m.trNNZ }

// Diag, Lower, Upper, Jptr and Iptr expose the raw representation for
// package-level construction of an ILU context; the returned slices alias
// the receiver's storage.
func (m *Matrix) Diag() []sp.Real  { return m.diag }
func (m *Matrix) Lower() []sp.Real { return m.lower }
func (m *Matrix) Upper() []sp.Real { return m.upper }
func (m *Matrix) Jptr() []sp.Index { return m.jptr }
func (m *Matrix) Iptr() []sp.Index { return m.iptr }

// rowRange returns the [lo, hi) slot range owned by row i.
func (m *Matrix) rowRange(i int) (lo, hi sp.Index) {
	return m.iptr[i], m.iptr[i+1]
}
