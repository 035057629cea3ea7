// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spmatrixio provides plain-text diagnostic output for the
// matrix entities in this module. It is a writer only — no format
// reader is provided, matching this library's scope as a numerical
// core rather than a file-format toolkit.
package spmatrixio
