package spmatrix

// MatVec is satisfied by a square sparse matrix that can compute A*x
// without exposing its storage representation. yale.Matrix implements
// it; linsolve's CG and PCG consume a *yale.Matrix directly rather than
// this interface, since the core owns its own matrix representation,
// but MatVec remains the shape a caller embedding this library against
// a different operator would implement.
type MatVec interface {
	Dims() (rows, cols int)
	MulVecTo(dst, x []Real)
}

// Dumpable is satisfied by a matrix that can enumerate its stored
// entries for a diagnostic dump (see package spmatrixio). Both
// builder.Matrix and yale.Matrix implement it.
type Dumpable interface {
	Dims() (rows, cols int)
	NNZ() int
	Orientation() Orientation
	Do(fn func(i, j Index, v Real))
}
