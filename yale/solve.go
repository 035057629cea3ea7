package yale

import (
	"math"

	sp "github.com/xyuan/libspmatrix"
)

// LowerSolve performs forward substitution against a general lower
// triangular matrix m (not necessarily unit diagonal, unlike the ILU
// triangular solves in package skyline): for i = 0..rows-1,
// x[i] = (b[i] - sum_{j<i} m[i,j]*x[j]) / m[i,i]. Every row must carry an
// explicit, nonzero diagonal entry; a missing or near-zero diagonal
// returns a *spmatrix.SingularPivotError naming the offending row. m may
// be stored RowMajor or ColMajor; ColMajor input is converted internally.
func LowerSolve(m *Matrix, b, x []sp.Real) error {
	rows, cols := m.Dims()
	if rows != cols {
		return sp.ErrShapeMismatch
	}
	if len(b) != rows || len(x) != rows {
		return sp.ErrShapeMismatch
	}
	rm := m
	if m.Orientation() != sp.RowMajor {
		rm = m.ConvertOrientation(sp.RowMajor)
	}
	offsets, indices, values := rm.Offsets(), rm.Indices(), rm.Values()
	for i := 0; i < rows; i++ {
		var sum sp.Real
		var diag sp.Real
		haveDiag := false
		for k := offsets[i]; k < offsets[i+1]; k++ {
			j := indices[k]
			switch {
			case int(j) == i:
				diag, haveDiag = values[k], true
			case int(j) < i:
				sum += values[k] * x[j]
			}
		}
		if !haveDiag || math.Abs(diag) < sp.Epsilon {
			return &sp.SingularPivotError{Row: sp.Index(i)}
		}
		x[i] = (b[i] - sum) / diag
	}
	return nil
}
