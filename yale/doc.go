// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yale implements the YALE storage of the sparse-matrix core: the
// standard three-array compressed representation (offsets, indices,
// values) in either row-major (CRS) or column-major (CCS) orientation.
// All numerical kernels — matrix-vector multiplication, transpose,
// permutation and comparison — operate on this format; package skyline
// builds its profile format from a YALE matrix with a symmetric portrait.
package yale

import sp "github.com/xyuan/libspmatrix"

var (
	_ sp.Dumpable = (*Matrix)(nil)
	_ sp.MatVec   = (*Matrix)(nil)
)
