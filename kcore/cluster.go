package kcore

import (
	"github.com/katalvlaran/parcluster/core"
	"github.com/katalvlaran/parcluster/parallel"
	"github.com/katalvlaran/parcluster/unionfind"
)

// Cluster computes the flat k-core clustering: the connected components
// of the sub-graph induced by vertices with coreness ≥ opts.Threshold.
// Below-threshold vertices are omitted, so a graph with no qualifying
// vertex yields an empty clustering. Members of each cluster appear in
// ascending vertex order.
//
// Complexity: O(m + n log n) work.
func Cluster(g *core.Graph, opts Options) core.Clustering {
	n := g.N()
	cores, _ := Peel(g, opts.NumBuckets, nil)

	// 1. Unite across every edge whose endpoints both qualify.
	components := unionfind.New(n)
	parallel.For(n, func(i int) {
		g.MapNeighbors(core.ID(i), func(u, v core.ID, _ float64) {
			if cores[u] >= opts.Threshold && cores[v] >= opts.Threshold {
				components.Unite(u, v)
			}
		})
	})
	labels := components.Finish()

	// 2. Restrict to qualifying vertices and group by representative.
	qualifying := parallel.PackIndex[core.ID](n, func(i int) bool {
		return cores[i] >= opts.Threshold
	})
	if len(qualifying) == 0 {
		return nil
	}
	parallel.SampleSort(qualifying, func(a, b core.ID) bool {
		if labels[a] != labels[b] {
			return labels[a] < labels[b]
		}

		return a < b
	})
	bounds := parallel.BoundaryIndices(len(qualifying), func(i, j int) bool {
		return labels[qualifying[i]] == labels[qualifying[j]]
	})

	clusters := make(core.Clustering, len(bounds)-1)
	parallel.For(len(bounds)-1, func(i int) {
		lo, hi := bounds[i], bounds[i+1]
		cluster := make([]core.ID, hi-lo)
		copy(cluster, qualifying[lo:hi])
		clusters[i] = cluster
	})

	return clusters
}

// HierarchicalCluster builds the nd-connectivity tree of g with the
// configured construction variant. See the package documentation for the
// tree encoding; the three variants agree up to renaming of internal
// node ids.
//
// Complexity: see Peel, Tree and ConnectivityTree.
func HierarchicalCluster(g *core.Graph, opts Options) []core.ID {
	switch opts.ConnectivityMethod {
	case ConnectivityInline:
		hook := NewConnectWhilePeeling(g.N())
		Peel(g, opts.NumBuckets, hook)

		return hook.Tree()
	case ConnectivityEfficientInline:
		hook := NewEfficientConnectWhilePeeling(g.N())
		Peel(g, opts.NumBuckets, hook)

		return hook.Tree()
	default:
		cores, _ := Peel(g, opts.NumBuckets, nil)

		return ConnectivityTree(g, cores)
	}
}
