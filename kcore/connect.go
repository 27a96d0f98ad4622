package kcore

import (
	"math"
	"sync/atomic"

	"github.com/katalvlaran/parcluster/core"
	"github.com/katalvlaran/parcluster/unionfind"
)

// noLink marks an empty slot in the efficient hook's links array.
const noLink = uint32(math.MaxUint32)

// ConnectWhilePeeling records merges with one union-find per distinct
// bucket value seen so far. Link traffic is broadcast to every recorded
// level whose core value the linked vertex reaches, so each level's
// union-find holds the connectivity of the ≥-core sub-graph.
//
// Simple and memory-hungry: O(levels · n) state.
type ConnectWhilePeeling struct {
	n      int
	levels []*unionfind.Store
	coreOf []uint32
}

// NewConnectWhilePeeling creates the hook for a graph of n vertices.
func NewConnectWhilePeeling(n int) *ConnectWhilePeeling {
	return &ConnectWhilePeeling{n: n}
}

// Init pushes a fresh union-find for bucket value k. Called between
// rounds, never concurrently with Link.
func (c *ConnectWhilePeeling) Init(k uint32) {
	c.levels = append(c.levels, unionfind.New(c.n))
	c.coreOf = append(c.coreOf, k)
}

// Link unites a and b in every level whose core value b reaches.
// Safe for concurrent use: the level slice is only appended between
// rounds, and Unite is lock-free.
func (c *ConnectWhilePeeling) Link(a, b core.ID, cores CoresFunc) {
	cb := cores(b)
	for idx, uf := range c.levels {
		if cb >= c.coreOf[idx] {
			uf.Unite(a, b)
		}
	}
}

// EfficientConnectWhilePeeling records merges with a single union-find
// plus a links array: linking across different core values parks the
// lower-core vertex in the higher one's slot via compare-and-swap, to be
// stitched into the tree during post-processing.
type EfficientConnectWhilePeeling struct {
	uf    *unionfind.Store
	links []uint32
}

// NewEfficientConnectWhilePeeling creates the hook for n vertices.
func NewEfficientConnectWhilePeeling(n int) *EfficientConnectWhilePeeling {
	links := make([]uint32, n)
	for i := range links {
		links[i] = noLink
	}

	return &EfficientConnectWhilePeeling{uf: unionfind.New(n), links: links}
}

// Init is a no-op; the single union-find spans every level.
func (c *EfficientConnectWhilePeeling) Init(uint32) {}

// Link connects a and b. Equal core values unite directly and re-link any
// parked neighbors against the surviving representative; unequal values
// park the lower-core side in the higher's links slot, displacing an
// older parked vertex of even lower core. The reference recursion is
// expressed as a worklist so depth is bounded regardless of the number
// of distinct core values.
//
// Safe for concurrent use: all slot traffic is CAS, all set traffic is
// the lock-free union-find.
func (c *EfficientConnectWhilePeeling) Link(a, b core.ID, cores CoresFunc) {
	type pair struct{ a, b core.ID }
	work := []pair{{a, b}}
	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]

		x := c.uf.FindCompress(p.a)
		y := c.uf.FindCompress(p.b)
		cx, cy := cores(x), cores(y)
		switch {
		case cx == cy:
			c.uf.Unite(x, y)
			parent := c.uf.FindCompress(x)
			linkX := atomic.LoadUint32(&c.links[x])
			linkY := atomic.LoadUint32(&c.links[y])
			if linkX != noLink && parent != x {
				work = append(work, pair{core.ID(linkX), parent})
			}
			if linkY != noLink && parent != y {
				work = append(work, pair{core.ID(linkY), parent})
			}
		case cx < cy:
			// Park x in y's slot, displacing a lower-core occupant.
			for {
				occupant := atomic.LoadUint32(&c.links[y])
				if occupant == noLink {
					if atomic.CompareAndSwapUint32(&c.links[y], noLink, uint32(x)) {
						break
					}
				} else if cores(core.ID(occupant)) < cx {
					if atomic.CompareAndSwapUint32(&c.links[y], occupant, uint32(x)) {
						if parentY := c.uf.FindCompress(y); parentY != y {
							work = append(work, pair{x, parentY})
						}
						work = append(work, pair{x, core.ID(occupant)})

						break
					}
				} else {
					work = append(work, pair{x, core.ID(occupant)})

					break
				}
			}
		default:
			work = append(work, pair{y, x})
		}
	}
}

// CheckEqualForMerge is the conservative variant of Link: it unites only
// when the two core values are equal, otherwise it follows parked links
// from b while they stay at or above a's core.
func (c *EfficientConnectWhilePeeling) CheckEqualForMerge(a, b core.ID, cores CoresFunc) {
	for {
		if cores(a) == cores(b) {
			c.uf.Unite(a, b)

			return
		}
		parked := atomic.LoadUint32(&c.links[b])
		if parked == noLink || cores(core.ID(parked)) < cores(a) {
			return
		}
		b = core.ID(parked)
	}
}
