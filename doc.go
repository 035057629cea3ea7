// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spmatrix defines the types, error taxonomy and small primitives
// shared by the builder, yale, skyline and linsolve packages that together
// form the sparse-matrix core: in-memory construction (builder), compressed
// row/column storage and its kernels (yale), a symmetric-portrait profile
// format with ILU(0) factorization (skyline), and Krylov iterative solvers
// (linsolve).
//
// The core is synchronous and single-threaded: every exported kernel is a
// bounded CPU operation (the iterative solvers are bounded by a caller
// supplied iteration limit) and performs no I/O. Distinct matrix values are
// independent and may be used concurrently from separate goroutines; a
// single value must not be mutated concurrently with any other access.
package spmatrix

// Index is a nonnegative row or column identifier.
type Index = int

// Real is the scalar type of matrix and vector entries.
type Real = float64
