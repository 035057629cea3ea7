package spmatrix

import (
	"errors"
	"fmt"
)

// Epsilon is the fixed equality tolerance used throughout this module:
// twice machine epsilon for float64. The original C implementation used
// differing epsilons across modules (2*eps in one, max(|a|,|b|)*eps in
// another); this module fixes a single definition everywhere.
const Epsilon Real = 2 * 1.0 / (1 << 52)

// Sentinel errors for programmer-error conditions. The solvers, the
// triangular solves, skyline construction and yale.Permute return them.
// Some entry points panic with them instead of returning them:
// builder.New, builder.Matrix.Add and Get, yale.Matrix.At (index or
// dimension out of range), and yale.Matrix.MulVec and yale.Init2 (shape
// mismatch).
var (
	// ErrIndexOutOfRange is the panic value used when a row or column
	// index falls outside the declared dimensions of a matrix.
	ErrIndexOutOfRange = errors.New("spmatrix: index out of range")

	// ErrShapeMismatch is returned when operand dimensions are incompatible.
	ErrShapeMismatch = errors.New("spmatrix: shape mismatch")

	// ErrFormatMismatch is returned when an operation is given an operand
	// in a storage orientation it does not accept (yale.Permute requires
	// RowMajor input).
	ErrFormatMismatch = errors.New("spmatrix: format mismatch")

	// ErrPortraitNotSymmetric is returned by skyline construction when the
	// source matrix's nonzero portrait is not symmetric, i.e. there exists
	// (i,j) with A[i,j] != 0 but A[j,i] == 0.
	ErrPortraitNotSymmetric = errors.New("spmatrix: matrix portrait is not symmetric")

	// ErrNotOrdered is returned when an operation requires a builder matrix
	// to have been compressed (sorted) first.
	ErrNotOrdered = errors.New("spmatrix: builder matrix is not ordered, call Compress first")
)

// SingularPivotError is returned by ILU(0) factorization and by triangular
// solves when the pivot (diagonal entry) at Row is smaller in magnitude
// than Epsilon.
type SingularPivotError struct {
	Row Index
}

func (e *SingularPivotError) Error() string {
	return fmt.Sprintf("spmatrix: singular pivot at row %d", e.Row)
}

// BreakdownError is returned by CG/PCG when the search direction becomes
// A-conjugate to itself (⟨p, A·p⟩ <= 0), which signals the operator is not
// symmetric positive definite.
type BreakdownError struct {
	Iter  int
	Value Real
}

func (e *BreakdownError) Error() string {
	return fmt.Sprintf("spmatrix: breakdown at iteration %d, value=%v", e.Iter, e.Value)
}

// MaxIterationsError reports that a solver did not converge within the
// iteration budget given by the caller. It is informational: Result still
// holds the best iterate produced, and callers may resume with a fresh
// budget.
type MaxIterationsError struct {
	Iter     int
	Residual Real
}

func (e *MaxIterationsError) Error() string {
	return fmt.Sprintf("spmatrix: iteration limit %d reached, residual=%v", e.Iter, e.Residual)
}
