package spmatrix

import "testing"

func TestPermInverse(t *testing.T) {
	perm := []Index{2, 0, 1}
	pinv := PermInverse(perm)
	want := []Index{1, 2, 0}
	for i, w := range want {
		if pinv[i] != w {
			t.Errorf("pinv[%d] = %d, want %d", i, pinv[i], w)
		}
	}
	for i, p := range perm {
		if pinv[p] != Index(i) {
			t.Errorf("pinv[perm[%d]] = %d, want %d", i, pinv[p], i)
		}
	}
}

func TestPermInverseIdentity(t *testing.T) {
	id := []Index{0, 1, 2, 3}
	pinv := PermInverse(id)
	for i := range id {
		if pinv[i] != Index(i) {
			t.Errorf("pinv[%d] = %d, want %d", i, pinv[i], i)
		}
	}
}
