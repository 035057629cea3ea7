// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsolve

import (
	"math"

	"gonum.org/v1/gonum/floats"

	sp "github.com/xyuan/libspmatrix"
	"github.com/xyuan/libspmatrix/yale"
)

// CG solves A*x = b for symmetric positive definite A using the
// three-vector conjugate gradient method (Hestenes & Stiefel, 1952),
// starting from x0 (nil is treated as the zero vector). A is not
// checked for symmetric positive definiteness; violating it is
// undefined behavior.
//
// Convergence is declared once ||r|| <= Tolerance*||b||. If the
// iteration budget is exhausted first, CG returns
// *spmatrix.MaxIterationsError together with the best iterate found; a
// non-positive ⟨p, A*p⟩ signals *spmatrix.BreakdownError, which occurs
// only if A is not actually positive definite.
func CG(a *yale.Matrix, b, x0 []sp.Real, settings Settings) (*Result, error) {
	rows, cols := a.Dims()
	if rows != cols || len(b) != rows {
		return nil, sp.ErrShapeMismatch
	}
	n := rows
	settings = settings.withDefaults(n)

	x := make([]sp.Real, n)
	if x0 != nil {
		if len(x0) != n {
			return nil, sp.ErrShapeMismatch
		}
		copy(x, x0)
	}

	bNorm := floats.Norm(b, 2)
	if bNorm == 0 {
		bNorm = 1
	}

	r := make([]sp.Real, n)
	ax := make([]sp.Real, n)
	a.MulVec(x, ax)
	for i := range r {
		r[i] = b[i] - ax[i]
	}

	result := &Result{X: x, ResidualNorm: floats.Norm(r, 2)}
	if result.ResidualNorm <= settings.Tolerance*bNorm {
		return result, nil
	}

	p := append([]sp.Real(nil), r...)
	rho := floats.Dot(r, r)
	q := make([]sp.Real, n)

	for iter := 1; iter <= settings.MaxIterations; iter++ {
		a.MulVec(p, q)
		pq := floats.Dot(p, q)
		if pq <= 0 {
			result.Iterations = iter - 1
			return result, &sp.BreakdownError{Iter: iter, Value: pq}
		}
		alpha := rho / pq
		floats.AddScaled(x, alpha, p)
		floats.AddScaled(r, -alpha, q)

		rhoNew := floats.Dot(r, r)
		result.Iterations = iter
		result.ResidualNorm = math.Sqrt(rhoNew)
		if result.ResidualNorm <= settings.Tolerance*bNorm {
			return result, nil
		}

		beta := rhoNew / rho
		floats.AddScaledTo(p, r, beta, p)
		rho = rhoNew
	}
	return result, &sp.MaxIterationsError{Iter: result.Iterations, Residual: result.ResidualNorm}
}
