package unionfind

import (
	"sync/atomic"

	"github.com/katalvlaran/parcluster/core"
	"github.com/katalvlaran/parcluster/parallel"
)

// Store is a concurrent disjoint-set forest over ids [0, n).
// The zero value is unusable; construct with New.
type Store struct {
	parents []uint32
}

// New creates a Store of n singleton sets.
//
// Complexity: O(n).
func New(n int) *Store {
	parents := make([]uint32, n)
	for i := range parents {
		parents[i] = uint32(i)
	}

	return &Store{parents: parents}
}

// N returns the universe size.
func (s *Store) N() int { return len(s.parents) }

// Parent returns the current parent slot of a without compressing.
// Mostly useful after Finish, when every slot holds its representative.
func (s *Store) Parent(a core.ID) core.ID {
	return core.ID(atomic.LoadUint32(&s.parents[a]))
}

// FindCompress returns the current representative of a, pointing every
// node on the path from a straight at that representative. Concurrent calls may observe different intermediate parents
// but always agree once the structure is quiescent.
func (s *Store) FindCompress(a core.ID) core.ID {
	j := uint32(a)
	if atomic.LoadUint32(&s.parents[j]) == j {
		return core.ID(j)
	}

	// 1. Chase parents to the current root.
	for {
		p := atomic.LoadUint32(&s.parents[j])
		if p == j {
			break
		}
		j = p
	}

	// 2. Re-walk from a, pointing every node with a larger parent straight
	//    at the root. Chains are strictly decreasing, so "> j" terminates.
	cur := uint32(a)
	for {
		tmp := atomic.LoadUint32(&s.parents[cur])
		if tmp <= j {
			break
		}
		atomic.StoreUint32(&s.parents[cur], j)
		cur = tmp
	}

	return core.ID(j)
}

// Unite merges the sets containing a and b. The root with the higher id
// is linked under the lower; a failed CAS means another goroutine moved a
// root first, so both sides are re-resolved and the link retried.
func (s *Store) Unite(a, b core.ID) {
	u, v := a, b
	for u != v {
		u = s.FindCompress(u)
		v = s.FindCompress(v)
		if u > v {
			if atomic.CompareAndSwapUint32(&s.parents[u], uint32(u), uint32(v)) {
				return
			}
		} else if v > u {
			if atomic.CompareAndSwapUint32(&s.parents[v], uint32(v), uint32(u)) {
				return
			}
		}
	}
}

// Finish compresses every element and returns the final representative
// array. Call only after all concurrent Unite traffic has quiesced.
//
// Complexity: O(n) parallel work.
func (s *Store) Finish() []core.ID {
	n := len(s.parents)
	parallel.For(n, func(i int) {
		s.FindCompress(core.ID(i))
	})
	out := make([]core.ID, n)
	parallel.For(n, func(i int) {
		out[i] = core.ID(atomic.LoadUint32(&s.parents[i]))
	})

	return out
}
