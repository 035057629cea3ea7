// Copyright ©2012 Alexey Veretennikov. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package linsolve provides Krylov iterative methods for solving systems of
linear equations

	A * x = b

where A is a symmetric positive definite n×n matrix. Direct methods such
as LU or Cholesky compute an exact solution after a finite number of
steps but cost O(n^3) arithmetic and O(n^2) memory, which is infeasible
for the large sparse systems this library targets. The methods here
instead compute a sequence of increasingly accurate approximations,
stopping once the residual norm falls below a caller-supplied tolerance
relative to the norm of b.

CG is the unpreconditioned conjugate gradient method. PCG applies the
same iteration preconditioned by an ILU(0) factorization from package
skyline, which typically reduces the number of iterations needed for
ill-conditioned systems at the cost of one forward and one back
substitution per iteration.

Unlike a reverse-communication design, both solvers call A and the
preconditioner directly: the system matrix is always a *yale.Matrix and
the preconditioner, when present, is always a *skyline.ILU, so there is
no need to abstract over the operator's representation.

References:
  - Barrett, Richard et al. (1994). Templates for the Solution of Linear
    Systems: Building Blocks for Iterative Methods (2nd ed.).
    Philadelphia, PA: SIAM. http://www.netlib.org/templates/templates.pdf
  - Hestenes, M., and Stiefel, E. (1952). Methods of conjugate gradients
    for solving linear systems. Journal of Research of the National
    Bureau of Standards, 49(6), 409.
*/
package linsolve
