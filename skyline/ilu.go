package skyline

import (
	"math"

	sp "github.com/xyuan/libspmatrix"
)

// ILU holds the L*U factors of an ILU(0) factorization over a Matrix's
// portrait: no fill is introduced beyond the strict lower/upper triangles
// already present. L is taken unit-lower (diagonal 1, not stored); the
// factored diagonal belongs to U.
type ILU struct {
	sky   *Matrix
	diag  []sp.Real
	lower []sp.Real
	upper []sp.Real
}

// NewILU allocates an (unfactored) ILU context over sky. Call Factorize
// before using any of the solve/multiply kernels.
func NewILU(sky *Matrix) *ILU {
	return &ILU{
		sky:   sky,
		diag:  make([]sp.Real, sky.rows),
		lower: make([]sp.Real, sky.trNNZ),
		upper: make([]sp.Real, sky.trNNZ),
	}
}

// Diag, Lower and Upper expose the factored arrays (ilu_diag, ilu_lower,
// ilu_upper) for inspection and testing.
func (f *ILU) Diag() []sp.Real  { return f.diag }
func (f *ILU) Lower() []sp.Real { return f.lower }
func (f *ILU) Upper() []sp.Real { return f.upper }

// Factorize computes the ILU(0) factors in place, row by row. For row i
// and each lower-triangle slot p (column j = jptr[p] < i), it forms
//
//	L[i,j] = (A[i,j] - sum_{k<j} L[i,k]*U[k,j]) / U[j,j]
//	U[j,i] =  A[j,i] - sum_{k<j} L[j,k]*U[k,i]
//
// The two inner sums range over columns k common to row i's (so-far
// computed) entries and row j's entries, found by merging the two
// ascending jptr runs; both rows are fully sorted by construction. A
// pivot |U[j,j]| smaller than spmatrix.Epsilon returns a
// *spmatrix.SingularPivotError for row j; this occurs at the point the
// pivot is computed, not first use.
func (f *ILU) Factorize() error {
	sk := f.sky
	for i := 0; i < sk.rows; i++ {
		lo, hi := sk.rowRange(i)
		var diagSum sp.Real
		for p := lo; p < hi; p++ {
			j := sk.jptr[p]
			lsum, usum := f.innerSums(i, j, p)

			ujj := f.diag[j]
			if math.Abs(ujj) < sp.Epsilon {
				return &sp.SingularPivotError{Row: j}
			}
			lij := (sk.lower[p] - lsum) / ujj
			uji := sk.upper[p] - usum
			f.lower[p] = lij
			f.upper[p] = uji
			diagSum += lij * uji
		}
		f.diag[i] = sk.diag[i] - diagSum
		if math.Abs(f.diag[i]) < sp.Epsilon {
			return &sp.SingularPivotError{Row: sp.Index(i)}
		}
	}
	return nil
}

// innerSums merges row i's already-factored prefix (slots below p, all
// with column < j) against row j's full factored row (all columns < j)
// to accumulate:
//
//	lsum = sum_{k<j} L[i,k]*U[k,j]
//	usum = sum_{k<j} L[j,k]*U[k,i]
func (f *ILU) innerSums(i, j sp.Index, p sp.Index) (lsum, usum sp.Real) {
	sk := f.sky
	pi, piEnd := sk.iptr[i], p
	pj, pjEnd := sk.rowRange(int(j))
	for pi < piEnd && pj < pjEnd {
		ki, kj := sk.jptr[pi], sk.jptr[pj]
		switch {
		case ki < kj:
			pi++
		case ki > kj:
			pj++
		default:
			lsum += f.lower[pi] * f.upper[pj]
			usum += f.lower[pj] * f.upper[pi]
			pi++
			pj++
		}
	}
	return lsum, usum
}

// LowerSolve performs forward substitution x = L^-1*b against the unit
// lower factor: x[i] = b[i] - sum_{p in row i} lower[p]*x[jptr[p]], for
// i = 0..rows-1.
func (f *ILU) LowerSolve(b, x []sp.Real) error {
	sk := f.sky
	if len(b) != sk.rows || len(x) != sk.rows {
		return sp.ErrShapeMismatch
	}
	for i := 0; i < sk.rows; i++ {
		lo, hi := sk.rowRange(i)
		sum := b[i]
		for p := lo; p < hi; p++ {
			sum -= f.lower[p] * x[sk.jptr[p]]
		}
		x[i] = sum
	}
	return nil
}

// UpperSolve performs back substitution x = U^-1*b. Since the upper
// triangle is stored aliased into the lower rows' slots (upper[p] holds
// U[jptr[p], i] for owning row i), the gather described by row i's
// equation is computed as a scatter: processing rows from last to first,
// each row i divides by its own diagonal and then subtracts its
// contribution into every row j = jptr[p] < i that it references,
// exactly as if row j had gathered that term directly. A diagonal smaller
// in magnitude than spmatrix.Epsilon returns a *spmatrix.SingularPivotError
// for that row.
func (f *ILU) UpperSolve(b, x []sp.Real) error {
	sk := f.sky
	if len(b) != sk.rows || len(x) != sk.rows {
		return sp.ErrShapeMismatch
	}
	work := append([]sp.Real(nil), b...)
	for i := sk.rows - 1; i >= 0; i-- {
		if math.Abs(f.diag[i]) < sp.Epsilon {
			return &sp.SingularPivotError{Row: sp.Index(i)}
		}
		x[i] = work[i] / f.diag[i]
		lo, hi := sk.rowRange(i)
		for p := lo; p < hi; p++ {
			j := sk.jptr[p]
			work[j] -= f.upper[p] * x[i]
		}
	}
	return nil
}

// LowerMV computes b = L*x: b[i] = x[i] + sum_{p in row i} lower[p]*x[jptr[p]].
func (f *ILU) LowerMV(x, b []sp.Real) error {
	sk := f.sky
	if len(x) != sk.rows || len(b) != sk.rows {
		return sp.ErrShapeMismatch
	}
	for i := 0; i < sk.rows; i++ {
		lo, hi := sk.rowRange(i)
		sum := x[i]
		for p := lo; p < hi; p++ {
			sum += f.lower[p] * x[sk.jptr[p]]
		}
		b[i] = sum
	}
	return nil
}

// UpperMV computes b = U*x, accumulated with the same scatter pattern as
// UpperSolve: the diagonal contribution is added directly, and each row
// i's stored slots scatter upper[p]*x[i] into the row j = jptr[p] < i
// they represent.
func (f *ILU) UpperMV(x, b []sp.Real) error {
	sk := f.sky
	if len(x) != sk.rows || len(b) != sk.rows {
		return sp.ErrShapeMismatch
	}
	for i := range b {
		b[i] = f.diag[i] * x[i]
	}
	for i := 0; i < sk.rows; i++ {
		lo, hi := sk.rowRange(i)
		for p := lo; p < hi; p++ {
			j := sk.jptr[p]
			b[j] += f.upper[p] * x[i]
		}
	}
	return nil
}
