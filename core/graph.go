package core

import (
	"math"
	"sort"
)

// Graph is an immutable compressed-sparse-row weighted graph.
//
// offsets has length n+1; targets and weights have length m (undirected
// edges counted twice). Edges incident to vertex v occupy the half-open
// range [offsets[v], offsets[v+1]) and are sorted by target id.
type Graph struct {
	n       int
	offsets []int
	targets []ID
	weights []float64
}

// FromEdges builds a symmetric Graph over n vertices from an undirected
// edge list. Each undirected edge is given once; both directions are
// materialized with the identical weight.
//
// Error Conditions:
//   - ErrVertexRange   : an endpoint is outside [0, n).
//   - ErrSelfLoop      : U == V for some edge.
//   - ErrBadWeight     : a weight is NaN or negative.
//   - ErrDuplicateEdge : the same undirected edge appears twice.
//
// Complexity: O(m log m) time, O(n + m) memory.
func FromEdges(n int, edges []Edge) (*Graph, error) {
	// 1. Validate every input edge before allocating the mirrored list.
	for _, e := range edges {
		if int(e.U) >= n || int(e.V) >= n {
			return nil, ErrVertexRange
		}
		if e.U == e.V {
			return nil, ErrSelfLoop
		}
		if math.IsNaN(e.W) || e.W < 0 {
			return nil, ErrBadWeight
		}
	}

	// 2. Materialize both directions of each undirected edge.
	type half struct {
		src, dst ID
		w        float64
	}
	halves := make([]half, 0, 2*len(edges))
	for _, e := range edges {
		halves = append(halves, half{e.U, e.V, e.W}, half{e.V, e.U, e.W})
	}

	// 3. Sort by (src, dst) to obtain per-vertex adjacency runs.
	sort.Slice(halves, func(i, j int) bool {
		if halves[i].src != halves[j].src {
			return halves[i].src < halves[j].src
		}

		return halves[i].dst < halves[j].dst
	})

	// 4. Reject duplicates: two identical (src, dst) pairs mean the same
	//    undirected edge was supplied twice.
	for i := 1; i < len(halves); i++ {
		if halves[i].src == halves[i-1].src && halves[i].dst == halves[i-1].dst {
			return nil, ErrDuplicateEdge
		}
	}

	// 5. Assemble the CSR arrays.
	targets := make([]ID, len(halves))
	weights := make([]float64, len(halves))
	offsets := make([]int, n+1)
	for i, h := range halves {
		targets[i] = h.dst
		weights[i] = h.w
		offsets[h.src+1]++
	}
	for v := 0; v < n; v++ {
		offsets[v+1] += offsets[v]
	}

	return &Graph{n: n, offsets: offsets, targets: targets, weights: weights}, nil
}

// FromCSR wraps already-assembled CSR arrays without validation. The caller
// guarantees symmetry, per-vertex target ordering, and offset consistency;
// violating those invariants is a programmer error.
//
// Complexity: O(1).
func FromCSR(offsets []int, targets []ID, weights []float64) *Graph {
	return &Graph{
		n:       len(offsets) - 1,
		offsets: offsets,
		targets: targets,
		weights: weights,
	}
}

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

// M returns the number of stored directed half-edges (undirected edges
// counted twice).
func (g *Graph) M() int { return len(g.targets) }

// Degree returns the number of edges incident to v.
func (g *Graph) Degree(v ID) int {
	return g.offsets[v+1] - g.offsets[v]
}

// Neighbors returns the target and weight slices of v's adjacency run.
// The returned slices alias the graph's buffers and must not be modified.
func (g *Graph) Neighbors(v ID) ([]ID, []float64) {
	lo, hi := g.offsets[v], g.offsets[v+1]

	return g.targets[lo:hi], g.weights[lo:hi]
}

// MapNeighbors invokes f(v, u, w) for every edge (v, u, w) incident to v,
// in ascending order of u.
//
// Complexity: O(deg(v)).
func (g *Graph) MapNeighbors(v ID, f func(src, dst ID, w float64)) {
	lo, hi := g.offsets[v], g.offsets[v+1]
	for i := lo; i < hi; i++ {
		f(v, g.targets[i], g.weights[i])
	}
}

// ReduceNeighbors folds combine over mapF applied to every edge incident
// to v, starting from identity. combine must be associative; the fold
// shape is unspecified.
//
// Complexity: O(deg(v)).
func (g *Graph) ReduceNeighbors(v ID, mapF func(src, dst ID, w float64) float64, combine func(a, b float64) float64, identity float64) float64 {
	acc := identity
	lo, hi := g.offsets[v], g.offsets[v+1]
	for i := lo; i < hi; i++ {
		acc = combine(acc, mapF(v, g.targets[i], g.weights[i]))
	}

	return acc
}

// WeightedDegree returns the sum of weights of edges incident to v.
//
// Complexity: O(deg(v)).
func (g *Graph) WeightedDegree(v ID) float64 {
	var acc float64
	lo, hi := g.offsets[v], g.offsets[v+1]
	for i := lo; i < hi; i++ {
		acc += g.weights[i]
	}

	return acc
}

// CheckSymmetric verifies that every stored edge (u,v,w) has its mirror
// (v,u,w) with the identical weight. Intended for debug validation of
// graphs assembled through FromCSR.
//
// Returns ErrAsymmetric on the first violation, nil otherwise.
//
// Complexity: O(m log d) time via binary search over adjacency runs.
func (g *Graph) CheckSymmetric() error {
	for v := ID(0); int(v) < g.n; v++ {
		lo, hi := g.offsets[v], g.offsets[v+1]
		for i := lo; i < hi; i++ {
			u, w := g.targets[i], g.weights[i]
			if !g.hasEdge(u, v, w) {
				return ErrAsymmetric
			}
		}
	}

	return nil
}

// hasEdge reports whether the exact edge (u,v,w) is stored, by binary
// search over u's sorted adjacency run.
func (g *Graph) hasEdge(u, v ID, w float64) bool {
	lo, hi := g.offsets[u], g.offsets[u+1]
	run := g.targets[lo:hi]
	j := sort.Search(len(run), func(i int) bool { return run[i] >= v })
	if j == len(run) || run[j] != v {
		return false
	}

	return g.weights[lo+j] == w
}
