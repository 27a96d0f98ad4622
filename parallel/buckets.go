package parallel

import "math"

// NoBucket is returned by NextBucket when the queue is drained, and marks
// vertices that have been popped and not re-inserted.
const NoBucket = uint32(math.MaxUint32)

// Buckets is a lazy bucket priority queue over a fixed universe of
// vertices, keyed by a non-negative priority (here, current degree).
//
// Insertions append; entries invalidated by a later UpdateBucket are
// skipped at pop time by comparing against the vertex's current bucket.
// The same bucket id can be returned by several consecutive NextBucket
// calls as vertices fall back into it.
//
// Buckets is not safe for concurrent mutation; callers batch their
// parallel work and apply moves from one goroutine.
type Buckets[V ~uint32] struct {
	pending [][]V    // pending[k]: vertices believed to be in bucket k
	bucket  []uint32 // current bucket per vertex; NoBucket once popped
	cur     int
}

// NewBuckets builds the queue with vertex v initially in bucket deg[v].
// numBuckets is a capacity hint for the open bucket span; the structure
// grows past it as needed.
//
// Complexity: O(n + max(deg)) time and memory.
func NewBuckets[V ~uint32](deg []uint32, numBuckets int) *Buckets[V] {
	span := numBuckets
	if span < 1 {
		span = 1
	}
	b := &Buckets[V]{
		pending: make([][]V, span),
		bucket:  make([]uint32, len(deg)),
	}
	for v, d := range deg {
		b.grow(int(d))
		b.pending[d] = append(b.pending[d], V(v))
		b.bucket[v] = d
	}

	return b
}

// grow extends the pending span to include bucket k.
func (b *Buckets[V]) grow(k int) {
	for len(b.pending) <= k {
		b.pending = append(b.pending, nil)
	}
}

// NextBucket pops the lowest non-empty bucket and returns its id and live
// vertices. Popped vertices are finished until re-inserted through
// UpdateBucket. A drained queue returns (NoBucket, nil).
//
// Amortized complexity: O(total insertions) across all calls.
func (b *Buckets[V]) NextBucket() (uint32, []V) {
	for b.cur < len(b.pending) {
		slot := b.pending[b.cur]
		if len(slot) == 0 {
			b.cur++

			continue
		}
		// Detach the slot, then keep only entries whose recorded bucket
		// still matches; duplicates collapse because the first hit clears
		// the vertex's bucket.
		b.pending[b.cur] = nil
		live := make([]V, 0, len(slot))
		for _, v := range slot {
			if b.bucket[v] == uint32(b.cur) {
				live = append(live, v)
				b.bucket[v] = NoBucket
			}
		}
		if len(live) == 0 {
			continue
		}

		return uint32(b.cur), live
	}

	return NoBucket, nil
}

// UpdateBucket moves v into bucket k. k must be at least the id returned
// by the most recent NextBucket call; moving a vertex backwards past the
// queue's cursor would lose it.
func (b *Buckets[V]) UpdateBucket(v V, k uint32) {
	b.grow(int(k))
	b.bucket[v] = k
	b.pending[k] = append(b.pending[k], v)
}
