package affinity

import (
	"github.com/katalvlaran/parcluster/core"
	"github.com/katalvlaran/parcluster/parallel"
)

// conductanceEpsilon guards the conductance denominator: below it the
// measure is defined as 1.0.
const conductanceEpsilon = 1e-6

// vertexStats is one vertex's contribution to its cluster's statistics.
type vertexStats struct {
	cluster core.ID
	volume  float64
	intra   float64
	inter   float64
}

// ComputeClusterStats aggregates density and conductance per cluster of
// the labeling. numCompressed bounds the cluster id space (see
// NumCompressedVertices); ids without members keep zero Stats.
//
// Per vertex: volume is the weighted degree; intra counts each in-cluster
// edge once (v ≤ u side only); inter counts edges leaving the cluster,
// including edges to None-labeled vertices. None-labeled vertices
// contribute only to the global graph volume.
//
// Algorithmic shape: parallel per-vertex pass, sample sort by cluster id,
// boundary-index runs, parallel reduce within each run.
//
// Complexity: O(m + n log n) work, O(n) memory.
func ComputeClusterStats(g *core.Graph, labels []core.ID, numCompressed core.ID) []Stats {
	n := g.N()

	// 1. Per-vertex contributions in parallel.
	perVertex := make([]vertexStats, n)
	parallel.For(n, func(i int) {
		c := labels[i]
		volume := g.WeightedDegree(core.ID(i))
		if c == core.None {
			perVertex[i] = vertexStats{cluster: c, volume: volume}

			return
		}
		var intra, inter float64
		g.MapNeighbors(core.ID(i), func(_, v core.ID, w float64) {
			if labels[v] == c {
				if v <= core.ID(i) {
					intra += w
				}
			} else {
				inter += w
			}
		})
		perVertex[i] = vertexStats{cluster: c, volume: volume, intra: intra, inter: inter}
	})

	// 2. Total graph volume across every vertex, None included.
	graphVolume := parallel.Reduce(perVertex, func(a, b vertexStats) vertexStats {
		return vertexStats{volume: a.volume + b.volume}
	}, vertexStats{}).volume

	// 3. Sort by cluster id; equal ids form runs.
	parallel.SampleSort(perVertex, func(a, b vertexStats) bool {
		return a.cluster < b.cluster
	})
	bounds := parallel.BoundaryIndices(n, func(i, j int) bool {
		return perVertex[i].cluster == perVertex[j].cluster
	})

	// 4. Reduce each run into its cluster's aggregate.
	aggregate := make([]Stats, numCompressed)
	parallel.For(len(bounds)-1, func(i int) {
		lo, hi := bounds[i], bounds[i+1]
		cluster := perVertex[lo].cluster
		if cluster == core.None {
			return
		}
		sum := parallel.Reduce(perVertex[lo:hi], func(a, b vertexStats) vertexStats {
			return vertexStats{
				volume: a.volume + b.volume,
				intra:  a.intra + b.intra,
				inter:  a.inter + b.inter,
			}
		}, vertexStats{})

		size := hi - lo
		density := 0.0
		if size >= 2 {
			density = sum.intra / (float64(size) * float64(size-1) / 2)
		}
		conductance := 1.0
		if denom := min(sum.volume, graphVolume-sum.volume); denom >= conductanceEpsilon {
			conductance = sum.inter / denom
		}
		aggregate[cluster] = Stats{Density: density, Conductance: conductance}
	})

	return aggregate
}
