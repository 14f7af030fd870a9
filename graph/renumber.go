package graph

// RenumberMap is the bijection between original vertex ids and the
// compact local numbering of one owned range. Locality-preserving by
// construction: local id i maps to original id lo+i.
// Stable for the lifetime of one computation.
type RenumberMap[V ID] struct {
	lo    V
	count int
}

// NewRenumberMap builds the map for the owned range [lo, hi).
func NewRenumberMap[V ID](lo, hi V) RenumberMap[V] {
	count := int(hi - lo)
	if count < 0 {
		count = 0
	}
	return RenumberMap[V]{lo: lo, count: count}
}

// Count returns the number of owned vertices.
func (m RenumberMap[V]) Count() int { return m.count }

// Range returns the owned original-id range [lo, hi).
func (m RenumberMap[V]) Range() (lo, hi V) { return m.lo, m.lo + V(m.count) }

// Original maps a local id back to its original id.
// The local id must be in [0, Count).
func (m RenumberMap[V]) Original(local int) V { return m.lo + V(local) }

// Local maps an original id to its local id, reporting ownership.
func (m RenumberMap[V]) Local(original V) (int, bool) {
	if original < m.lo || original >= m.lo+V(m.count) {
		return 0, false
	}
	return int(original - m.lo), true
}

// Originals materializes the original ids of the owned range in local
// order, ready for a variable-length gather.
func (m RenumberMap[V]) Originals() []V {
	out := make([]V, m.count)
	for i := range out {
		out[i] = m.lo + V(i)
	}
	return out
}
