package kcore

import (
	"github.com/katalvlaran/parcluster/core"
	"github.com/katalvlaran/parcluster/parallel"
	"github.com/katalvlaran/parcluster/unionfind"
)

// extendTree appends None slots until the tree reaches size, so every
// node id handed out so far has a slot and roots read as None.
func extendTree(tree []core.ID, size int) []core.ID {
	for len(tree) < size {
		tree = append(tree, core.None)
	}

	return tree
}

// Tree post-processes the per-level union-finds into the nd-connectivity
// tree. Levels are walked from the last pushed (highest core) to the
// first, threading each vertex's previous representative to its
// representative at the level; each level appends n node slots.
//
// Complexity: O(levels · n) work.
func (c *ConnectWhilePeeling) Tree() []core.ID {
	n := c.n
	tree := make([]core.ID, n)
	prevParent := make([]core.ID, n)
	parallel.For(n, func(i int) {
		tree[i] = core.None
		prevParent[i] = core.ID(i)
	})
	prevMaxParent := core.ID(n)

	for idx := len(c.levels) - 1; idx >= 0; idx-- {
		tree = extendTree(tree, int(prevMaxParent))
		uf := c.levels[idx]
		parallel.For(n, func(l int) {
			uf.FindCompress(core.ID(l))
		})
		parallel.For(n, func(l int) {
			// Set members share prevParent and write the same node id.
			tree[prevParent[l]] = prevMaxParent + uf.Parent(core.ID(l))
			prevParent[l] = tree[prevParent[l]]
		})
		prevMaxParent += core.ID(n)
	}

	return extendTree(tree, int(prevMaxParent))
}

// Tree post-processes the single union-find and the links array into the
// nd-connectivity tree: vertices sorted by final representative form the
// leaf groups, and parked links stitch each super-node under the node its
// lower-core link first merged into.
//
// Complexity: O(n log n) work.
func (c *EfficientConnectWhilePeeling) Tree() []core.ID {
	n := len(c.links)
	parents := c.uf.Finish()

	// 1. Group vertices by final representative.
	sortedVert := make([]core.ID, n)
	parallel.For(n, func(i int) { sortedVert[i] = core.ID(i) })
	parallel.SampleSort(sortedVert, func(p, q core.ID) bool {
		if parents[p] != parents[q] {
			return parents[p] < parents[q]
		}

		return p < q
	})
	bounds := parallel.BoundaryIndices(n, func(i, j int) bool {
		return parents[sortedVert[i]] == parents[sortedVert[j]]
	})

	// 2. One internal node per representative group.
	tree := make([]core.ID, n)
	parallel.For(n, func(i int) { tree[i] = core.None })
	prevMaxParent := core.ID(n)
	numGroups := len(bounds) - 1
	parallel.For(numGroups, func(i int) {
		for j := bounds[i]; j < bounds[i+1]; j++ {
			tree[sortedVert[j]] = prevMaxParent + core.ID(i)
		}
	})
	prevMaxParent += core.ID(numGroups)
	tree = extendTree(tree, int(prevMaxParent))

	// 3. Stitch super-nodes: a root with a parked link hangs its group's
	//    node under the node its link merged into.
	for i := 0; i < n; i++ {
		parked := c.links[i]
		if parked == noLink {
			continue
		}
		if core.ID(i) == parents[i] {
			tree[tree[i]] = tree[parked]
		}
	}

	return tree
}

// ConnectivityTree builds the nd-connectivity tree post hoc from the
// coreness array alone: vertices are bucketed by descending coreness, a
// single union-find accumulates unions to neighbors that are still
// unpeeled or share the bucket's core, and after each bucket the live
// representatives are compacted into a fresh id level via a prefix sum
// over a bitmask.
//
// Complexity: O(m + levels · n) work.
func ConnectivityTree(g *core.Graph, cores []uint32) []core.ID {
	n := g.N()

	// 1. Bucket vertices by descending coreness.
	sortedVert := make([]core.ID, n)
	parallel.For(n, func(i int) { sortedVert[i] = core.ID(i) })
	parallel.SampleSort(sortedVert, func(p, q core.ID) bool {
		if cores[p] != cores[q] {
			return cores[p] > cores[q]
		}

		return p < q
	})
	bounds := parallel.BoundaryIndices(n, func(i, j int) bool {
		return cores[sortedVert[i]] == cores[sortedVert[j]]
	})

	uf := unionfind.New(n)
	tree := make([]core.ID, n)
	prevParent := make([]core.ID, n)
	parallel.For(n, func(i int) {
		tree[i] = core.None
		prevParent[i] = core.ID(i)
	})
	prevMaxParent := core.ID(n)

	for i := 0; i < len(bounds)-1; i++ {
		start, end := bounds[i], bounds[i+1]
		bucketCore := cores[sortedVert[start]]

		// 2. Union the bucket into everything at or above its core.
		if bucketCore != 0 {
			parallel.For(end-start, func(j int) {
				x := sortedVert[start+j]
				g.MapNeighbors(x, func(_, v core.ID, _ float64) {
					if cores[v] >= bucketCore {
						uf.Unite(x, v)
					}
				})
			})
		}

		tree = extendTree(tree, int(prevMaxParent))
		parallel.For(n, func(l int) {
			uf.FindCompress(core.ID(l))
		})

		// 3. Compact live representatives into a dense id level.
		liveParents := make([]uint32, n)
		parallel.For(n, func(l int) {
			if cores[l] >= bucketCore {
				liveParents[uf.Parent(core.ID(l))] = 1
			}
		})
		levelSize := parallel.ScanInplace(liveParents)

		parallel.For(n, func(l int) {
			if cores[l] >= bucketCore {
				tree[prevParent[l]] = prevMaxParent + core.ID(liveParents[uf.Parent(core.ID(l))])
				prevParent[l] = tree[prevParent[l]]
			}
		})
		prevMaxParent += core.ID(levelSize)
	}

	return extendTree(tree, int(prevMaxParent))
}
