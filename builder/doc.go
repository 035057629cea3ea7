// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package builder implements the BUILDER storage of the sparse-matrix
// core: a row- or column-oriented matrix under construction, where each
// row (RowMajor) or column (ColMajor) is an independently growing sparse
// vector of (index, value) pairs. A Matrix is assembled by repeated calls
// to Add, then sealed with Compress before being handed to package yale
// for conversion to compact storage.
package builder

import sp "github.com/xyuan/libspmatrix"

var _ sp.Dumpable = (*Matrix)(nil)
