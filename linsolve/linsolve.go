package linsolve

import sp "github.com/xyuan/libspmatrix"

const defaultTolerance = 1e-8

// Settings controls a Krylov iterative solve.
type Settings struct {
	// Tolerance is the relative residual norm at which convergence is
	// declared: the solve stops once ||r|| <= Tolerance*||b||. Zero
	// selects a default of 1e-8.
	Tolerance float64

	// MaxIterations bounds the number of iterations performed. Zero
	// selects a default of four times the system dimension.
	MaxIterations int
}

func (s Settings) withDefaults(n int) Settings {
	if s.Tolerance == 0 {
		s.Tolerance = defaultTolerance
	}
	if s.MaxIterations == 0 {
		s.MaxIterations = 4 * n
	}
	return s
}

// Result holds the outcome of an iterative solve: the best iterate
// produced, the number of iterations actually performed, and the final
// residual norm. Result is populated even when the accompanying error is
// a breakdown, iteration-limit or singular-pivot error, leaving X usable;
// only the up-front spmatrix.ErrShapeMismatch checks return a nil Result.
type Result struct {
	X            []sp.Real
	Iterations   int
	ResidualNorm sp.Real
}
