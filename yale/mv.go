package yale

import sp "github.com/xyuan/libspmatrix"

// MulVec computes y = A*x. For a RowMajor matrix y is overwritten: each
// y[i] is the dot product of row i with x, accumulated in ascending
// column-index order for reproducibility. For a ColMajor matrix y is
// first zeroed and then accumulated column by column, since the natural
// CCS traversal order visits (row, column) pairs by column rather than by
// row. Both orientations overwrite y; callers that want y += A*x
// semantics must add the result themselves.
func (m *Matrix) MulVec(x, y []sp.Real) {
	if len(x) != m.cols || len(y) != m.rows {
		panic(sp.ErrShapeMismatch)
	}
	if m.orientation == sp.RowMajor {
		for i := 0; i < m.rows; i++ {
			var sum sp.Real
			for k := m.offsets[i]; k < m.offsets[i+1]; k++ {
				sum += m.values[k] * x[m.indices[k]]
			}
			y[i] = sum
		}
		return
	}
	for i := range y {
		y[i] = 0
	}
	for j := 0; j < m.cols; j++ {
		xj := x[j]
		for k := m.offsets[j]; k < m.offsets[j+1]; k++ {
			y[m.indices[k]] += m.values[k] * xj
		}
	}
}

// MulVecTo computes A*x into dst, satisfying spmatrix.MatVec. It
// allocates nothing, delegating straight to MulVec. Package linsolve
// calls MulVec on a *Matrix directly rather than going through this
// method.
func (m *Matrix) MulVecTo(dst []sp.Real, x []sp.Real) {
	m.MulVec(x, dst)
}
