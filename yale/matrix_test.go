package yale

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/floats/scalar"

	sp "github.com/xyuan/libspmatrix"
	"github.com/xyuan/libspmatrix/builder"
)

// balandin7x7 builds the 7x7 test matrix used throughout the original
// implementation's test suite:
//
//	9  0  0  3  1  0  1
//	0  11 2  1  0  0  2
//	0  1  10 2  0  0  0
//	0  0  2  9  1  0  0
//	1  0  0  1  12 0  1
//	0  0  0  0  0  8  0
//	2  2  0  0  3  0  8
func balandin7x7(t *testing.T) *Matrix {
	t.Helper()
	b := builder.New(7, 7, 5, sp.RowMajor)
	entries := []struct {
		i, j int
		v    sp.Real
	}{
		{0, 0, 9}, {0, 3, 3}, {0, 4, 1}, {0, 6, 1},
		{1, 1, 11}, {1, 2, 2}, {1, 3, 1}, {1, 6, 2},
		{2, 1, 1}, {2, 2, 10}, {2, 3, 2},
		{3, 2, 2}, {3, 3, 9}, {3, 4, 1},
		{4, 0, 1}, {4, 3, 1}, {4, 4, 12}, {4, 6, 1},
		{5, 5, 8},
		{6, 0, 2}, {6, 1, 2}, {6, 4, 3}, {6, 6, 8},
	}
	for _, e := range entries {
		b.Add(e.i, e.j, e.v)
	}
	b.Compress()
	m, err := NewFromBuilder(b)
	if err != nil {
		t.Fatalf("NewFromBuilder: %v", err)
	}
	return m
}

func TestMulVecCRS(t *testing.T) {
	m := balandin7x7(t)
	b := []sp.Real{1, 2, 3, 4, 3, 2, 1}
	want := []sp.Real{25, 34, 40, 45, 42, 16, 23}
	got := make([]sp.Real, 7)
	m.MulVec(b, got)
	for i := range want {
		if !scalar.EqualWithinAbs(got[i], want[i], 1e-9) {
			t.Errorf("y[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMulVecRoundTripThroughCCS(t *testing.T) {
	m := balandin7x7(t)
	b := []sp.Real{1, 2, 3, 4, 3, 2, 1}
	want := []sp.Real{25, 34, 40, 45, 42, 16, 23}

	ccs := m.ConvertOrientation(sp.ColMajor)
	got := make([]sp.Real, 7)
	ccs.MulVec(b, got)
	for i := range want {
		if !scalar.EqualWithinAbs(got[i], want[i], 1e-9) {
			t.Errorf("ccs y[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	crs := ccs.ConvertOrientation(sp.RowMajor)
	got2 := make([]sp.Real, 7)
	crs.MulVec(b, got2)
	for i := range want {
		if !scalar.EqualWithinAbs(got2[i], want[i], 1e-9) {
			t.Errorf("round-trip y[%d] = %v, want %v", i, got2[i], want[i])
		}
	}
}

func TestAtMatchesDense(t *testing.T) {
	m := balandin7x7(t)
	dense := [7][7]sp.Real{
		{9, 0, 0, 3, 1, 0, 1},
		{0, 11, 2, 1, 0, 0, 2},
		{0, 1, 10, 2, 0, 0, 0},
		{0, 0, 2, 9, 1, 0, 0},
		{1, 0, 0, 1, 12, 0, 1},
		{0, 0, 0, 0, 0, 8, 0},
		{2, 2, 0, 0, 3, 0, 8},
	}
	for i := 0; i < 7; i++ {
		for j := 0; j < 7; j++ {
			if got := m.At(sp.Index(i), sp.Index(j)); got != dense[i][j] {
				t.Errorf("At(%d,%d) = %v, want %v", i, j, got, dense[i][j])
			}
		}
	}
}

func TestAtPanicsOutOfRange(t *testing.T) {
	m := balandin7x7(t)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	m.At(7, 0)
}

func TestTransposeInvolution(t *testing.T) {
	m := balandin7x7(t)
	back := m.Transpose().Transpose()
	if diff := cmp.Diff(m, back, cmp.AllowUnexported(Matrix{})); diff != "" {
		t.Errorf("Transpose().Transpose() mismatch (-want +got):\n%s", diff)
	}
}

func TestTransposeMatchesDenseTranspose(t *testing.T) {
	m := balandin7x7(t)
	tr := m.Transpose()
	for i := 0; i < 7; i++ {
		for j := 0; j < 7; j++ {
			if got, want := tr.At(sp.Index(i), sp.Index(j)), m.At(sp.Index(j), sp.Index(i)); got != want {
				t.Errorf("tr.At(%d,%d) = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestPermuteIdentityCancels(t *testing.T) {
	m := balandin7x7(t)
	id := []sp.Index{0, 1, 2, 3, 4, 5, 6}
	permuted, err := m.Permute(id, id)
	if err != nil {
		t.Fatalf("Permute: %v", err)
	}
	if permuted.Cmp(m) != sp.Equal {
		t.Errorf("identity permutation changed the matrix")
	}
}

func TestPermuteRejectsColMajor(t *testing.T) {
	m := balandin7x7(t).ConvertOrientation(sp.ColMajor)
	id := []sp.Index{0, 1, 2, 3, 4, 5, 6}
	if _, err := m.Permute(id, id); err != sp.ErrFormatMismatch {
		t.Errorf("Permute on ColMajor = %v, want ErrFormatMismatch", err)
	}
}

func TestCmp(t *testing.T) {
	m := balandin7x7(t)
	clone := m.Clone()
	if m.Cmp(m) != sp.Same {
		t.Errorf("Cmp(self) != Same")
	}
	if m.Cmp(clone) != sp.Equal {
		t.Errorf("Cmp(clone) != Equal")
	}
	clone.values[0] += 1e-3
	if m.Cmp(clone) != sp.SamePortrait {
		t.Errorf("Cmp after value perturbation != SamePortrait")
	}
}

func TestPropertiesSymmetric(t *testing.T) {
	b := builder.New(3, 3, 2, sp.RowMajor)
	b.Add(0, 0, 1)
	b.Add(0, 2, -2)
	b.Add(1, 1, 1)
	b.Add(2, 0, -2)
	b.Add(2, 2, 5)
	b.Compress()
	m, err := NewFromBuilder(b)
	if err != nil {
		t.Fatalf("NewFromBuilder: %v", err)
	}
	if got := m.Properties(); got != sp.Symmetric {
		t.Errorf("Properties() = %v, want Symmetric", got)
	}
}

func TestPropertiesGeneral(t *testing.T) {
	m := balandin7x7(t)
	if got := m.Properties(); got != sp.General {
		t.Errorf("Properties() = %v, want General", got)
	}
}

func TestInit2RejectsMismatchedCounts(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Init2(sp.RowMajor, 3, 3, 5, []sp.Index{1, 1})
}
