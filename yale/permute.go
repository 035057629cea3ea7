package yale

import sp "github.com/xyuan/libspmatrix"

// Permute computes C = P*A*Q for a RowMajor matrix, where pinv is the
// inverse row permutation (row i moves to row k such that pinv[k] == i,
// see spmatrix.PermInverse) and q is the forward column permutation.
// Permute requires the receiver to be RowMajor; callers with a ColMajor
// matrix should call ConvertOrientation first.
func (m *Matrix) Permute(pinv, q []sp.Index) (*Matrix, error) {
	if m.orientation != sp.RowMajor {
		return nil, sp.ErrFormatMismatch
	}
	if len(pinv) != m.rows || len(q) != m.cols {
		return nil, sp.ErrShapeMismatch
	}
	qinv := sp.PermInverse(q)

	offsets := make([]sp.Index, m.rows+1)
	for k := 0; k < m.rows; k++ {
		i := pinv[k]
		offsets[k+1] = offsets[k] + (m.offsets[i+1] - m.offsets[i])
	}

	indices := make([]sp.Index, m.nnz)
	values := make([]sp.Real, m.nnz)
	for k := 0; k < m.rows; k++ {
		i := pinv[k]
		dst := offsets[k]
		for s := m.offsets[i]; s < m.offsets[i+1]; s++ {
			indices[dst] = qinv[m.indices[s]]
			values[dst] = m.values[s]
			dst++
		}
		insertionSortRange(indices[offsets[k]:offsets[k+1]], values[offsets[k]:offsets[k+1]])
	}

	return &Matrix{
		rows: m.rows, cols: m.cols,
		orientation: m.orientation,
		nnz:         m.nnz,
		offsets:     offsets, indices: indices, values: values,
	}, nil
}

// insertionSortRange sorts a short (index, value) range ascending by
// index. Permuted output rows are exactly as long as the corresponding
// input row, which is typically tiny for finite-element matrices, so a
// plain insertion sort beats the overhead of a general-purpose sort.
func insertionSortRange(idx []sp.Index, val []sp.Real) {
	for i := 1; i < len(idx); i++ {
		ki, kv := idx[i], val[i]
		j := i - 1
		for j >= 0 && idx[j] > ki {
			idx[j+1] = idx[j]
			val[j+1] = val[j]
			j--
		}
		idx[j+1] = ki
		val[j+1] = kv
	}
}
