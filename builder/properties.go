package builder

import (
	"math"

	sp "github.com/xyuan/libspmatrix"
)

// Properties scans all stored entries and classifies the matrix as
// General, Symmetric, SymmetricPortrait or SkewSymmetric. Symmetric
// requires |A[i,j] - A[j,i]| <= Epsilon*max(|A[i,j]|, |A[j,i]|) for every
// stored pair; SymmetricPortrait requires only that presence matches;
// SkewSymmetric requires A[i,j] == -A[j,i] within the same tolerance and a
// zero diagonal.
func (m *Matrix) Properties() sp.Properties {
	symmetric := true
	skew := true
	portrait := true

	m.Do(func(i, j sp.Index, v sp.Real) {
		if i == j {
			if !closeToZero(v) {
				skew = false
			}
			return
		}
		other, ok := m.Get(j, i)
		if !ok {
			portrait = false
			symmetric = false
			skew = false
			return
		}
		tol := sp.Epsilon * math.Max(math.Abs(v), math.Abs(other))
		if math.Abs(v-other) > tol {
			symmetric = false
		}
		if math.Abs(v+other) > tol {
			skew = false
		}
	})

	switch {
	case symmetric:
		return sp.Symmetric
	case skew:
		return sp.SkewSymmetric
	case portrait:
		return sp.SymmetricPortrait
	default:
		return sp.General
	}
}

func closeToZero(v sp.Real) bool {
	return math.Abs(v) <= sp.Epsilon
}
