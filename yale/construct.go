package yale

import (
	sp "github.com/xyuan/libspmatrix"
	"github.com/xyuan/libspmatrix/builder"
)

// NewFromBuilder converts a sealed BUILDER matrix into YALE storage. b
// must have been Compress()-ed (Ordered() == true); otherwise
// NewFromBuilder returns spmatrix.ErrNotOrdered. The algorithm is a single
// O(nnz) pass: prefix-sum the per-vector counts into offsets, then copy
// each vector's indices and values into the corresponding contiguous
// region.
func NewFromBuilder(b *builder.Matrix) (*Matrix, error) {
	if !b.Ordered() {
		return nil, sp.ErrNotOrdered
	}
	rows, cols := b.Dims()
	n := b.VectorLen()
	offsets := make([]sp.Index, n+1)
	for k := 0; k < n; k++ {
		offsets[k+1] = offsets[k] + b.VectorNNZ(k)
	}
	nnz := offsets[n]
	indices := make([]sp.Index, nnz)
	values := make([]sp.Real, nnz)
	for k := 0; k < n; k++ {
		pos := offsets[k]
		b.DoVector(k, func(cross sp.Index, v sp.Real) {
			indices[pos] = cross
			values[pos] = v
			pos++
		})
	}
	return &Matrix{
		rows:        rows,
		cols:        cols,
		orientation: b.Orientation(),
		nnz:         nnz,
		offsets:     offsets,
		indices:     indices,
		values:      values,
	}, nil
}

// Init2 constructs a Matrix with offsets pre-filled from counts (the
// number of stored entries per principal-axis slice) and zero-initialized
// indices/values of length nnz, left for the caller to fill directly.
// Init2 does not verify that the caller fills each slice in ascending
// order; that is checked only implicitly by kernels (At, MulVec,
// Transpose, Permute, Cmp) that assume it.
func Init2(orientation sp.Orientation, rows, cols, nnz int, counts []sp.Index) *Matrix {
	n := rows
	if orientation == sp.ColMajor {
		n = cols
	}
	if len(counts) != n {
		panic(sp.ErrShapeMismatch)
	}
	offsets := make([]sp.Index, n+1)
	for k := 0; k < n; k++ {
		offsets[k+1] = offsets[k] + counts[k]
	}
	if offsets[n] != nnz {
		panic(sp.ErrShapeMismatch)
	}
	return &Matrix{
		rows:        rows,
		cols:        cols,
		orientation: orientation,
		nnz:         nnz,
		offsets:     offsets,
		indices:     make([]sp.Index, nnz),
		values:      make([]sp.Real, nnz),
	}
}
