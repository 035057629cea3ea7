package spmatrixio

import (
	"gonum.org/v1/gonum/mat"

	sp "github.com/xyuan/libspmatrix"
)

// DensePreview renders m as a gonum mat.Dense, for use in small-matrix
// debugging (printing via mat.Formatted) where an ASCII triplet dump is
// too sparse to eyeball. It is not meant for matrices large enough that
// a dense rendering would be wasteful; callers own that judgment.
func DensePreview(m sp.Dumpable) *mat.Dense {
	rows, cols := m.Dims()
	dense := mat.NewDense(rows, cols, nil)
	m.Do(func(i, j sp.Index, v sp.Real) {
		dense.Set(int(i), int(j), v)
	})
	return dense
}
