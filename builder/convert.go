package builder

import sp "github.com/xyuan/libspmatrix"

// Do calls fn once for every stored entry, in (row, column, value) form
// regardless of orientation.
func (m *Matrix) Do(fn func(i, j sp.Index, v sp.Real)) {
	for k := range m.vecs {
		m.DoVector(k, func(cross sp.Index, v sp.Real) {
			if m.orientation == sp.ColMajor {
				fn(cross, k, v)
			} else {
				fn(k, cross, v)
			}
		})
	}
}

// Convert returns a new Matrix holding the same entries in the requested
// orientation. If orientation already matches, Convert returns a deep
// copy ("byte-copy" per spec); otherwise it rebuilds the matrix by
// re-adding every entry under the new principal axis, the BUILDER
// equivalent of the counting-pass transpose used by package yale. Each
// re-add scans its destination vector for an existing slot before
// appending, so the rebuild costs O(len) per entry, not O(1).
func (m *Matrix) Convert(orientation sp.Orientation) *Matrix {
	if orientation == m.orientation {
		return m.Copy()
	}
	out := New(m.rows, m.cols, 4, orientation)
	m.Do(func(i, j sp.Index, v sp.Real) {
		out.Add(i, j, v)
	})
	out.Compress()
	return out
}

// ConvertInplace performs the same transformation as Convert but replaces
// the receiver's contents.
func (m *Matrix) ConvertInplace(orientation sp.Orientation) {
	if orientation == m.orientation {
		return
	}
	*m = *m.Convert(orientation)
}
