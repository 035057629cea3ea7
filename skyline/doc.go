// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package skyline implements the CSLR ("skyline") profile storage format:
// a diagonal vector plus the strict lower and strict upper triangles of a
// symmetric-portrait matrix, column/row-packed so that the lower entry at
// (i, j) and the upper entry at (j, i) share a single slot index. This is
// the substrate for the ILU(0) factorization and its triangular solves.
package skyline
