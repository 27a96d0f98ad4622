package affinity

import (
	"github.com/katalvlaran/parcluster/core"
	"github.com/katalvlaran/parcluster/parallel"
	"github.com/katalvlaran/parcluster/unionfind"
)

// selection is one directed heaviest-neighbor pick.
type selection struct {
	src, dst core.ID
}

// NearestNeighborLinkage selects, for every vertex, the incident edge
// maximizing (weight, neighbor id) lexicographically subject to
// weight > threshold; an edge at exactly the threshold is eligible only
// while the vertex has no candidate yet. The selected edges and their
// reverses induce a sub-graph; its connected components become the new
// labeling, with the smallest member vertex id as each cluster's id.
//
// A graph with no admissible selection returns the singleton labeling
// labels[i] = i.
//
// Complexity: O(m + n log n) work (sort-dominated), O(n + m) memory.
func NearestNeighborLinkage(g *core.Graph, threshold float64) []core.ID {
	n := g.N()

	// 1. Independent heaviest-neighbor selection per vertex: the directed
	//    pick and its reverse share one array of 2n slots.
	marked := make([]selection, 2*n)
	parallel.For(n, func(i int) {
		maxWeight := threshold
		maxNeighbor := core.None
		g.MapNeighbors(core.ID(i), func(_, v core.ID, w float64) {
			if w > maxWeight || (w == maxWeight && v > maxNeighbor) ||
				(w == threshold && maxNeighbor == core.None) {
				maxWeight = w
				maxNeighbor = v
			}
		})
		marked[i] = selection{src: core.ID(i), dst: maxNeighbor}
		marked[i+n] = selection{src: maxNeighbor, dst: core.ID(i)}
	})

	// 2. Drop pairs carrying no selection.
	edges := parallel.FilterOut(marked, func(s selection) bool {
		return s.src != core.None && s.dst != core.None
	})

	// 3. No selection anywhere: every vertex is its own cluster.
	if len(edges) == 0 {
		labels := make([]core.ID, n)
		parallel.For(n, func(i int) { labels[i] = core.ID(i) })

		return labels
	}

	// 4. Sort by source and assemble the unweighted selection sub-graph.
	parallel.SampleSort(edges, func(a, b selection) bool {
		if a.src != b.src {
			return a.src < b.src
		}

		return a.dst < b.dst
	})
	sel := selectionGraph(n, edges)

	// 5. Connected components on the selection sub-graph: concurrent
	//    unions over its edges, then a full compression. Representatives
	//    are the smallest vertex id per component.
	uf := unionfind.New(n)
	parallel.For(n, func(i int) {
		sel.MapNeighbors(core.ID(i), func(u, v core.ID, _ float64) {
			uf.Unite(u, v)
		})
	})

	return uf.Finish()
}

// selectionGraph builds the CSR form of the selection sub-graph from
// source-sorted selection pairs. Both directions of every pick are
// already present, so the result is symmetric.
func selectionGraph(n int, edges []selection) *core.Graph {
	offsets := make([]int, n+1)
	for _, e := range edges {
		offsets[e.src+1]++
	}
	for v := 0; v < n; v++ {
		offsets[v+1] += offsets[v]
	}
	targets := make([]core.ID, len(edges))
	parallel.For(len(edges), func(i int) {
		targets[i] = edges[i].dst
	})

	return core.FromCSR(offsets, targets, make([]float64, len(edges)))
}
