// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsolve

import (
	"gonum.org/v1/gonum/floats"

	sp "github.com/xyuan/libspmatrix"
	"github.com/xyuan/libspmatrix/skyline"
	"github.com/xyuan/libspmatrix/yale"
)

// PCG solves A*x = b for symmetric positive definite A using conjugate
// gradient preconditioned by an already-factorized ILU(0) context
// precon. At each iteration the preconditioning step z = M^-1*r, where
// M = L*U, is computed by a forward substitution (precon.LowerSolve)
// followed by a back substitution (precon.UpperSolve); the rest of the
// iteration mirrors CG with rho = <r, z> in place of rho = <r, r>.
//
// Error and convergence semantics otherwise match CG. A
// *spmatrix.SingularPivotError surfacing from the preconditioner solves
// is returned immediately, with the best iterate found so far left in
// the Result.
func PCG(a *yale.Matrix, precon *skyline.ILU, b, x0 []sp.Real, settings Settings) (*Result, error) {
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

	y := make([]sp.Real, n)
	z := make([]sp.Real, n)
	if err := precondition(precon, r, y, z); err != nil {
		return result, err
	}
	p := append([]sp.Real(nil), z...)
	rho := floats.Dot(r, z)
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

		result.Iterations = iter
		result.ResidualNorm = floats.Norm(r, 2)
		if result.ResidualNorm <= settings.Tolerance*bNorm {
			return result, nil
		}

		if err := precondition(precon, r, y, z); err != nil {
			return result, err
		}
		rhoNew := floats.Dot(r, z)
		beta := rhoNew / rho
		floats.AddScaledTo(p, z, beta, p)
		rho = rhoNew
	}
	return result, &sp.MaxIterationsError{Iter: result.Iterations, Residual: result.ResidualNorm}
}

// precondition computes z = U^-1*(L^-1*r), using y as scratch for the
// forward-substitution intermediate.
func precondition(precon *skyline.ILU, r, y, z []sp.Real) error {
	if err := precon.LowerSolve(r, y); err != nil {
		return err
	}
	return precon.UpperSolve(y, z)
}
