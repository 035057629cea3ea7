package yale

import (
	"math"

	sp "github.com/xyuan/libspmatrix"
)

// Properties classifies m the same way builder.Matrix.Properties does,
// scanning stored entries and cross-checking the transposed position with
// At (an O(log rowlen) binary search per entry).
func (m *Matrix) Properties() sp.Properties {
	symmetric, skew, portrait := true, true, true
	m.Do(func(i, j sp.Index, v sp.Real) {
		if i == j {
			if math.Abs(v) > sp.Epsilon {
				skew = false
			}
			return
		}
		other := m.At(j, i)
		if other == 0 && !m.hasEntry(j, i) {
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

// hasEntry reports whether (i, j) is a structurally stored position,
// distinguishing a stored explicit zero from an absent entry.
func (m *Matrix) hasEntry(i, j sp.Index) bool {
	principal, cross := i, j
	if m.orientation == sp.ColMajor {
		principal, cross = j, i
	}
	for k := m.offsets[principal]; k < m.offsets[principal+1]; k++ {
		if m.indices[k] == cross {
			return true
		}
	}
	return false
}
