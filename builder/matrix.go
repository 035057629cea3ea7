package builder

import (
	sp "github.com/xyuan/libspmatrix"
)

// Matrix is the BUILDER storage entity: a row- or column-oriented matrix
// under construction, backed by one indexed vector per principal axis.
// A zero Matrix is not usable; construct with New.
type Matrix struct {
	rows, cols  int
	orientation sp.Orientation
	ordered     bool
	vecs        []vector
}

// New allocates an empty Matrix of the given dimensions and orientation.
// bandwidth is the initial per-row (RowMajor) or per-column (ColMajor)
// capacity hint, not the matrix-theoretic bandwidth.
func New(rows, cols, bandwidth int, orientation sp.Orientation) *Matrix {
	if rows < 0 || cols < 0 {
		panic(sp.ErrIndexOutOfRange)
	}
	n := rows
	if orientation == sp.ColMajor {
		n = cols
	}
	vecs := make([]vector, n)
	for i := range vecs {
		vecs[i] = newVector(bandwidth)
	}
	return &Matrix{
		rows:        rows,
		cols:        cols,
		orientation: orientation,
		ordered:     true, // empty is trivially ordered
		vecs:        vecs,
	}
}

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (rows, cols int) { return m.rows, m.cols }

// Orientation returns the storage orientation.
func (m *Matrix) Orientation() sp.Orientation { return m.orientation }

// Ordered reports whether every indexed vector is currently sorted
// ascending by cross-axis index.
func (m *Matrix) Ordered() bool { return m.ordered }

// NNZ returns the current number of stored entries. Add accumulates into
// an existing slot, so each (i, j) position is counted once.
func (m *Matrix) NNZ() int {
	n := 0
	for i := range m.vecs {
		n += m.vecs[i].used()
	}
	return n
}

func (m *Matrix) principalAndCross(i, j sp.Index) (principal, cross sp.Index) {
	if m.orientation == sp.ColMajor {
		return j, i
	}
	return i, j
}

func (m *Matrix) checkIndex(i, j sp.Index) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(sp.ErrIndexOutOfRange)
	}
}

// Add accumulates v into the stored value at (i, j), creating the entry
// if absent, and returns the resulting stored value. Add sets Ordered to
// false.
func (m *Matrix) Add(i, j sp.Index, v sp.Real) sp.Real {
	m.checkIndex(i, j)
	principal, cross := m.principalAndCross(i, j)
	m.ordered = false
	return m.vecs[principal].add(cross, v)
}

// Get returns the stored value at (i, j) and whether an entry is present.
func (m *Matrix) Get(i, j sp.Index) (sp.Real, bool) {
	m.checkIndex(i, j)
	principal, cross := m.principalAndCross(i, j)
	return m.vecs[principal].get(cross)
}

// Compress sorts every indexed vector ascending by cross-axis index and
// marks the matrix ordered. Reorder is an alias kept for readability at
// call sites that are semantically "prepare for solving" rather than
// "finalize construction".
func (m *Matrix) Compress() {
	if m.ordered {
		return
	}
	for i := range m.vecs {
		m.vecs[i].sort()
	}
	m.ordered = true
}

// Reorder is equivalent to Compress.
func (m *Matrix) Reorder() { m.Compress() }

// Clear zeroes every stored value, preserving the portrait and Ordered state.
func (m *Matrix) Clear() {
	for i := range m.vecs {
		m.vecs[i].clear()
	}
}

// Copy returns a deep copy of m.
func (m *Matrix) Copy() *Matrix {
	out := &Matrix{
		rows:        m.rows,
		cols:        m.cols,
		orientation: m.orientation,
		ordered:     m.ordered,
		vecs:        make([]vector, len(m.vecs)),
	}
	for i := range m.vecs {
		out.vecs[i] = m.vecs[i].clone()
	}
	return out
}

// VectorLen returns the number of principal-axis vectors (rows if
// RowMajor, columns if ColMajor).
func (m *Matrix) VectorLen() int { return len(m.vecs) }

// VectorNNZ returns the number of stored entries in principal-axis vector k.
func (m *Matrix) VectorNNZ(k int) int { return m.vecs[k].used() }

// DoVector calls fn once per stored entry of principal-axis vector k, in
// whatever order the vector currently holds them (ascending if Ordered).
func (m *Matrix) DoVector(k int, fn func(cross sp.Index, value sp.Real)) {
	vec := &m.vecs[k]
	for i, idx := range vec.indices {
		fn(idx, vec.values[i])
	}
}
