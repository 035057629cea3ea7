package builder

import (
	"math/rand"
	"testing"

	sp "github.com/xyuan/libspmatrix"
)

func TestAddAccumulates(t *testing.T) {
	m := New(3, 3, 2, sp.RowMajor)
	m.Add(0, 0, 1)
	m.Add(0, 0, 2)
	got, ok := m.Get(0, 0)
	if !ok || got != 3 {
		t.Errorf("Get(0,0) = %v, %v, want 3, true", got, ok)
	}
}

func TestGetAbsent(t *testing.T) {
	m := New(3, 3, 2, sp.RowMajor)
	if _, ok := m.Get(1, 1); ok {
		t.Errorf("Get on empty matrix reported present")
	}
}

func TestNewPanicsOnNegativeDims(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	New(-1, 3, 2, sp.RowMajor)
}

func TestAddPanicsOutOfRange(t *testing.T) {
	m := New(3, 3, 2, sp.RowMajor)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	m.Add(3, 0, 1)
}

func TestCompressOrdersEachVector(t *testing.T) {
	m := New(1, 5, 4, sp.RowMajor)
	for _, j := range []int{3, 1, 4, 0, 2} {
		m.Add(0, sp.Index(j), sp.Real(j))
	}
	if m.Ordered() {
		t.Fatal("matrix reported ordered before Compress")
	}
	m.Compress()
	if !m.Ordered() {
		t.Fatal("matrix not reported ordered after Compress")
	}
	var prev sp.Index = -1
	m.DoVector(0, func(idx sp.Index, v sp.Real) {
		if idx <= prev {
			t.Errorf("index %d out of order after prev %d", idx, prev)
		}
		prev = idx
		if sp.Real(idx) != v {
			t.Errorf("value %v does not match index %v", v, idx)
		}
	})
}

func TestCompressLargeVectorExercisesQuicksortPath(t *testing.T) {
	const n = 200
	m := New(1, n, n, sp.RowMajor)
	perm := rand.New(rand.NewSource(1)).Perm(n)
	for _, j := range perm {
		m.Add(0, sp.Index(j), sp.Real(j))
	}
	m.Compress()
	var prev sp.Index = -1
	count := 0
	m.DoVector(0, func(idx sp.Index, v sp.Real) {
		if idx <= prev {
			t.Errorf("index %d out of order after prev %d", idx, prev)
		}
		prev = idx
		count++
	})
	if count != n {
		t.Errorf("got %d entries, want %d", count, n)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	m := New(2, 2, 2, sp.RowMajor)
	m.Add(0, 0, 1)
	dup := m.Copy()
	dup.Add(0, 0, 5)
	if got, _ := m.Get(0, 0); got != 1 {
		t.Errorf("original mutated by copy: got %v, want 1", got)
	}
	if got, _ := dup.Get(0, 0); got != 6 {
		t.Errorf("copy Get(0,0) = %v, want 6", got)
	}
}

func TestClearPreservesPortrait(t *testing.T) {
	m := New(1, 3, 2, sp.RowMajor)
	m.Add(0, 1, 5)
	m.Clear()
	got, ok := m.Get(0, 1)
	if !ok {
		t.Fatal("Clear removed the entry instead of zeroing it")
	}
	if got != 0 {
		t.Errorf("Get(0,1) after Clear = %v, want 0", got)
	}
}

func TestConvertOrientationPreservesEntries(t *testing.T) {
	m := New(2, 3, 2, sp.RowMajor)
	m.Add(0, 2, 7)
	m.Add(1, 0, 4)
	m.Compress()

	converted := m.Convert(sp.ColMajor)
	if converted.Orientation() != sp.ColMajor {
		t.Fatalf("Convert orientation = %v, want ColMajor", converted.Orientation())
	}
	if got, ok := converted.Get(0, 2); !ok || got != 7 {
		t.Errorf("converted Get(0,2) = %v, %v, want 7, true", got, ok)
	}
	if got, ok := converted.Get(1, 0); !ok || got != 4 {
		t.Errorf("converted Get(1,0) = %v, %v, want 4, true", got, ok)
	}

	back := converted.Convert(sp.RowMajor)
	if got, ok := back.Get(0, 2); !ok || got != 7 {
		t.Errorf("round-trip Get(0,2) = %v, %v, want 7, true", got, ok)
	}
}

func TestConvertSameOrientationIsDeepCopy(t *testing.T) {
	m := New(1, 1, 1, sp.RowMajor)
	m.Add(0, 0, 1)
	dup := m.Convert(sp.RowMajor)
	dup.Add(0, 0, 1)
	if got, _ := m.Get(0, 0); got != 1 {
		t.Errorf("Convert(same orientation) aliased storage")
	}
}

func TestPropertiesSkewSymmetric(t *testing.T) {
	m := New(3, 3, 2, sp.RowMajor)
	m.Add(0, 1, 2)
	m.Add(1, 0, -2)
	m.Add(0, 2, -3)
	m.Add(2, 0, 3)
	if got := m.Properties(); got != sp.SkewSymmetric {
		t.Errorf("Properties() = %v, want SkewSymmetric", got)
	}
}

func TestPropertiesSymmetricPortraitOnly(t *testing.T) {
	m := New(2, 2, 2, sp.RowMajor)
	m.Add(0, 1, 2)
	m.Add(1, 0, 5)
	if got := m.Properties(); got != sp.SymmetricPortrait {
		t.Errorf("Properties() = %v, want SymmetricPortrait", got)
	}
}

func TestDoVisitsEveryEntryRegardlessOfOrientation(t *testing.T) {
	m := New(2, 2, 2, sp.ColMajor)
	m.Add(1, 0, 9)
	seen := map[[2]sp.Index]sp.Real{}
	m.Do(func(i, j sp.Index, v sp.Real) {
		seen[[2]sp.Index{i, j}] = v
	})
	if seen[[2]sp.Index{1, 0}] != 9 {
		t.Errorf("Do missed entry (1,0)")
	}
}
