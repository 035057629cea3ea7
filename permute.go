package spmatrix

// PermInverse computes the inverse of permutation perm (a permutation of
// 0..n-1) in O(n): pinv[perm[i]] = i for every i. This is the primitive the
// original library's file-format readers and reordering drivers use to turn
// a forward permutation into the pinv argument expected by a Yale Permute
// call; the core treats it as a given building block rather than a
// subsystem of its own.
func PermInverse(perm []Index) []Index {
	pinv := make([]Index, len(perm))
	for i, p := range perm {
		pinv[p] = i
	}
	return pinv
}
