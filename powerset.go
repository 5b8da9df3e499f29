package heredity

// subsetIter enumerates every subset of a bitmask universe, from the empty
// set through the universe itself, 2^k subsets in total for a k-bit universe.
// Subsets are produced lazily so the enumeration driver holds one combination
// in flight at a time instead of a materialized powerset.
type subsetIter struct {
	universe uint64
	next     uint64
	done     bool
}

func newSubsetIter(universe uint64) *subsetIter {
	return &subsetIter{universe: universe}
}

// Next returns the next subset mask; ok is false once every subset has been
// produced. Advancing carries only through the bits inside universe, which
// steps through all of its submasks in increasing order.
func (it *subsetIter) Next() (mask uint64, ok bool) {
	if it.done {
		return 0, false
	}
	mask = it.next
	if it.next == it.universe {
		it.done = true
	} else {
		it.next = (it.next - it.universe) & it.universe
	}
	return mask, true
}
