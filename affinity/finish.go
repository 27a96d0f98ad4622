package affinity

import (
	"github.com/katalvlaran/parcluster/core"
	"github.com/katalvlaran/parcluster/parallel"
)

// FindFinishedClusters evaluates the active-cluster conditions against
// the current labeling, emits every finished cluster, and retires its
// vertices by overwriting their labels with None so later rounds ignore
// them.
//
// A cluster stays active if any condition is satisfied (every bound the
// condition specifies holds); it is finished when no condition is. With
// no conditions configured, nothing is ever finished and the labeling is
// left untouched.
//
// The labels slice is mutated in place; writes target disjoint indices,
// one writer per vertex.
//
// Complexity: O(m + n log n) work per call.
func FindFinishedClusters(g *core.Graph, opts Options, labels []core.ID) core.Clustering {
	if len(opts.ActiveClusterConditions) == 0 {
		return nil
	}
	n := g.N()
	numCompressed := NumCompressedVertices(labels)

	stats := ComputeClusterStats(g, labels, numCompressed)

	// 1. A cluster is finished iff no condition is satisfied.
	finished := make([]bool, numCompressed)
	parallel.For(int(numCompressed), func(i int) {
		finished[i] = true
		for _, cond := range opts.ActiveClusterConditions {
			satisfied := true
			if cond.MinDensity != nil && stats[i].Density < *cond.MinDensity {
				satisfied = false
			}
			if cond.MinConductance != nil && stats[i].Conductance < *cond.MinConductance {
				satisfied = false
			}
			if satisfied {
				finished[i] = false

				break
			}
		}
	})

	// 2. Mark the member vertices of finished clusters.
	finishedVertex := make([]bool, n)
	parallel.For(n, func(i int) {
		finishedVertex[i] = labels[i] != core.None && finished[labels[i]]
	})

	// 3. Group the finished vertices into the emitted clustering.
	clusters := computeClusters(labels, finishedVertex)

	// 4. Retire finished vertices from further rounds.
	parallel.For(n, func(i int) {
		if labels[i] != core.None && finished[labels[i]] {
			labels[i] = core.None
		}
	})

	return clusters
}

// computeClusters packs the finished vertices and groups them by label.
// Members of each emitted cluster appear in ascending vertex order.
func computeClusters(labels []core.ID, finishedVertex []bool) core.Clustering {
	packed := parallel.PackIndex[core.ID](len(labels), func(i int) bool {
		return finishedVertex[i]
	})
	if len(packed) == 0 {
		return nil
	}

	// Group by label: sort (label, vertex) and split on label runs.
	parallel.SampleSort(packed, func(a, b core.ID) bool {
		if labels[a] != labels[b] {
			return labels[a] < labels[b]
		}

		return a < b
	})
	bounds := parallel.BoundaryIndices(len(packed), func(i, j int) bool {
		return labels[packed[i]] == labels[packed[j]]
	})

	clusters := make(core.Clustering, len(bounds)-1)
	parallel.For(len(bounds)-1, func(i int) {
		lo, hi := bounds[i], bounds[i+1]
		cluster := make([]core.ID, hi-lo)
		copy(cluster, packed[lo:hi])
		clusters[i] = cluster
	})

	return clusters
}
