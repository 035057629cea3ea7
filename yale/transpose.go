package yale

import sp "github.com/xyuan/libspmatrix"

// countingTranspose computes the counting-sort transpose of m's raw
// storage in O(nnz + crossLen): count cross-axis occurrences, prefix-sum
// into a fresh offsets array, then scatter entries forward using a
// separate advancing cursor (next) so the prefix-sum itself is left
// intact for the caller to reuse as the result's offsets. Because the
// scatter visits source principal-axis slices in ascending order, each
// destination bucket receives its entries in ascending order too, so the
// result needs no additional sort pass.
func (m *Matrix) countingTranspose() (offsets, indices []sp.Index, values []sp.Real) {
	cross := m.crossLen()
	offsets = make([]sp.Index, cross+1)
	for _, idx := range m.indices {
		offsets[idx+1]++
	}
	for k := 0; k < cross; k++ {
		offsets[k+1] += offsets[k]
	}
	indices = make([]sp.Index, m.nnz)
	values = make([]sp.Real, m.nnz)
	next := append([]sp.Index(nil), offsets[:cross]...)
	n := m.principalLen()
	for p := 0; p < n; p++ {
		for k := m.offsets[p]; k < m.offsets[p+1]; k++ {
			j := m.indices[k]
			pos := next[j]
			indices[pos] = p
			values[pos] = m.values[k]
			next[j]++
		}
	}
	return offsets, indices, values
}

// Transpose returns Aᵀ as a new Matrix with rows and columns swapped and
// the same orientation label as the receiver: the counting-transpose of a
// RowMajor (CRS) matrix is itself a valid RowMajor representation of Aᵀ,
// since the roles of "row" and "column" have simply exchanged.
func (m *Matrix) Transpose() *Matrix {
	offsets, indices, values := m.countingTranspose()
	return &Matrix{
		rows: m.cols, cols: m.rows,
		orientation: m.orientation,
		nnz:         m.nnz,
		offsets:     offsets, indices: indices, values: values,
	}
}

// ConvertOrientation returns a Matrix with the same logical dimensions and
// entries as the receiver but stored under the opposite orientation
// (CRS<->CCS). It is implemented, per the original design, as a
// counting-sort transpose whose result is reinterpreted with the
// dimensions held fixed and only the orientation label swapped — the same
// raw arrays that represent Aᵀ in the original orientation represent A
// itself under the opposite orientation. If orientation already matches,
// ConvertOrientation returns a deep copy.
func (m *Matrix) ConvertOrientation(orientation sp.Orientation) *Matrix {
	if orientation == m.orientation {
		return m.Clone()
	}
	offsets, indices, values := m.countingTranspose()
	return &Matrix{
		rows: m.rows, cols: m.cols,
		orientation: orientation,
		nnz:         m.nnz,
		offsets:     offsets, indices: indices, values: values,
	}
}

// ConvertOrientationInplace performs the same transformation as
// ConvertOrientation but replaces the receiver's contents.
func (m *Matrix) ConvertOrientationInplace(orientation sp.Orientation) {
	if orientation == m.orientation {
		return
	}
	*m = *m.ConvertOrientation(orientation)
}
