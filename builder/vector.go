package builder

import sp "github.com/xyuan/libspmatrix"

// vector is a growable sparse (index, value) pair list: the indexed_array
// of the original C implementation. When ordered it is sorted ascending by
// index; when not, indices are still unique within the vector (Add
// accumulates into an existing slot) but may appear in any order.
type vector struct {
	indices []sp.Index
	values  []sp.Real
}

func newVector(bandwidth int) vector {
	return vector{
		indices: make([]sp.Index, 0, bandwidth),
		values:  make([]sp.Real, 0, bandwidth),
	}
}

// used reports the number of stored (index, value) pairs.
func (v *vector) used() int {
	return len(v.indices)
}

// find returns the slot holding idx, or -1 if absent. Since a vector is
// typically tiny (a handful of nonzeros per row/column in a finite-element
// matrix), a linear scan outperforms the bookkeeping of a sorted search
// structure and works regardless of the vector's ordered state.
func (v *vector) find(idx sp.Index) int {
	for k, i := range v.indices {
		if i == idx {
			return k
		}
	}
	return -1
}

// add accumulates value into the slot for idx, appending a new slot if
// idx is not yet present, and returns the resulting stored value.
func (v *vector) add(idx sp.Index, value sp.Real) sp.Real {
	if k := v.find(idx); k >= 0 {
		v.values[k] += value
		return v.values[k]
	}
	v.indices = append(v.indices, idx)
	v.values = append(v.values, value)
	return value
}

// get returns the stored value for idx and whether it is present.
func (v *vector) get(idx sp.Index) (sp.Real, bool) {
	if k := v.find(idx); k >= 0 {
		return v.values[k], true
	}
	return 0, false
}

// clear zeroes every stored value while preserving the portrait (indices
// and used count are untouched).
func (v *vector) clear() {
	for k := range v.values {
		v.values[k] = 0
	}
}

func (v *vector) clone() vector {
	out := vector{
		indices: make([]sp.Index, len(v.indices)),
		values:  make([]sp.Real, len(v.values)),
	}
	copy(out.indices, v.indices)
	copy(out.values, v.values)
	return out
}

// insertionSortCutoff bounds the span length below which insertion sort is
// used directly instead of recursing; indexed vectors in finite-element
// matrices rarely exceed a handful of entries, so most calls never recurse.
const insertionSortCutoff = 12

// sort orders the (indices, values) pair ascending by index in place,
// using a quicksort that falls back to insertion sort on short spans.
func (v *vector) sort() {
	sortPairs(v.indices, v.values)
}

func sortPairs(idx []sp.Index, val []sp.Real) {
	quicksortPairs(idx, val, 0, len(idx)-1)
}

func quicksortPairs(idx []sp.Index, val []sp.Real, l, r int) {
	for r-l+1 > insertionSortCutoff {
		p := partitionPairs(idx, val, l, r)
		// Recurse into the smaller partition, loop over the larger one,
		// bounding stack depth to O(log n).
		if p-l < r-p {
			quicksortPairs(idx, val, l, p-1)
			l = p + 1
		} else {
			quicksortPairs(idx, val, p+1, r)
			r = p - 1
		}
	}
	insertionSortPairs(idx, val, l, r)
}

func partitionPairs(idx []sp.Index, val []sp.Real, l, r int) int {
	mid := l + (r-l)/2
	swapPairs(idx, val, mid, r)
	pivot := idx[r]
	i := l
	for j := l; j < r; j++ {
		if idx[j] < pivot {
			swapPairs(idx, val, i, j)
			i++
		}
	}
	swapPairs(idx, val, i, r)
	return i
}

func insertionSortPairs(idx []sp.Index, val []sp.Real, l, r int) {
	for i := l + 1; i <= r; i++ {
		ki, kv := idx[i], val[i]
		j := i - 1
		for j >= l && idx[j] > ki {
			idx[j+1] = idx[j]
			val[j+1] = val[j]
			j--
		}
		idx[j+1] = ki
		val[j+1] = kv
	}
}

func swapPairs(idx []sp.Index, val []sp.Real, i, j int) {
	idx[i], idx[j] = idx[j], idx[i]
	val[i], val[j] = val[j], val[i]
}
