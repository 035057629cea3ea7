package yale

import (
	"gonum.org/v1/gonum/floats/scalar"

	sp "github.com/xyuan/libspmatrix"
)

// Cmp compares m and other, returning Same if they are the identical
// object, Equal if dimensions, offsets, indices and values all match
// (values within Epsilon), SamePortrait if offsets and indices match but
// values differ, or Different otherwise.
func (m *Matrix) Cmp(other *Matrix) sp.Comparison {
	if m == other {
		return sp.Same
	}
	if other == nil {
		return sp.Different
	}
	if m.rows != other.rows || m.cols != other.cols || m.orientation != other.orientation || m.nnz != other.nnz {
		return sp.Different
	}
	if !intsEqual(m.offsets, other.offsets) || !intsEqual(m.indices, other.indices) {
		return sp.Different
	}
	for i := range m.values {
		if !scalar.EqualWithinAbsOrRel(m.values[i], other.values[i], sp.Epsilon, sp.Epsilon) {
			return sp.SamePortrait
		}
	}
	return sp.Equal
}

func intsEqual(a, b []sp.Index) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
