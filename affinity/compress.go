package affinity

import (
	"github.com/katalvlaran/parcluster/core"
	"github.com/katalvlaran/parcluster/parallel"
)

// contribution is one surviving half-edge mapped into compressed id space.
type contribution struct {
	c1, c2 core.ID
	w      float64
}

// CompressGraph contracts g along labels into a smaller symmetric graph.
//
// For each compressed vertex c, the new node weight is the sum of the
// original node weights of its members (all ones when nodeWeights is
// empty). Every original edge whose endpoints carry distinct non-None
// labels contributes its (optionally pre-scaled) weight to the compressed
// edge between the two labels; contributions collapsing onto the same
// edge are combined by the aggregation mode, and the two rescaling modes
// divide the aggregate by a factor of the compressed node weights.
//
// Error Conditions:
//   - ErrUnimplemented      : aggregation == Percentile.
//   - ErrUnknownAggregation : aggregation outside the enumeration.
//
// Vertices labeled None are skipped entirely. Symmetry of the result
// follows from the symmetry of g.
//
// Complexity: O(m log m) work (sort-dominated), O(n' + m) memory.
func CompressGraph(g *core.Graph, nodeWeights []uint32, labels []core.ID, aggregation EdgeAggregation) (*core.Graph, []uint32, error) {
	// 1. Refuse the unimplemented and the unknown up front.
	switch aggregation {
	case Max, Sum, DefaultAverage, CutSparsity:
	case Percentile:
		return nil, nil, ErrUnimplemented
	default:
		return nil, nil, ErrUnknownAggregation
	}

	n := g.N()
	numCompressed := int(NumCompressedVertices(labels))

	// 2. Compressed node weights: sum member weights per cluster.
	compressedWeights := make([]uint32, numCompressed)
	for i := 0; i < n; i++ {
		c := labels[i]
		if c == core.None {
			continue
		}
		if len(nodeWeights) == 0 {
			compressedWeights[c]++
		} else {
			compressedWeights[c] += nodeWeights[i]
		}
	}

	// 3. Pre-scale over original endpoints; identity unless original node
	//    weights were supplied and the mode rescales.
	scale := func(u, v core.ID, w float64) float64 { return w }
	if len(nodeWeights) != 0 {
		switch aggregation {
		case DefaultAverage:
			scale = func(u, v core.ID, w float64) float64 {
				return w * float64(nodeWeights[u]) * float64(nodeWeights[v])
			}
		case CutSparsity:
			scale = func(u, v core.ID, w float64) float64 {
				m := nodeWeights[u]
				if nodeWeights[v] < m {
					m = nodeWeights[v]
				}

				return w * float64(m)
			}
		}
	}

	combine := func(a, b float64) float64 { return a + b }
	if aggregation == Max {
		combine = func(a, b float64) float64 {
			if a > b {
				return a
			}

			return b
		}
	}

	// 4. Gather surviving half-edge contributions: per-vertex counts, an
	//    exclusive scan for slots, then a parallel scatter.
	counts := make([]int, n)
	parallel.For(n, func(i int) {
		c := labels[i]
		if c == core.None {
			return
		}
		cnt := 0
		g.MapNeighbors(core.ID(i), func(_, v core.ID, _ float64) {
			if cv := labels[v]; cv != core.None && cv != c {
				cnt++
			}
		})
		counts[i] = cnt
	})
	total := parallel.ScanInplace(counts)
	contribs := make([]contribution, total)
	parallel.For(n, func(i int) {
		c := labels[i]
		if c == core.None {
			return
		}
		at := counts[i]
		g.MapNeighbors(core.ID(i), func(u, v core.ID, w float64) {
			cv := labels[v]
			if cv == core.None || cv == c {
				return
			}
			contribs[at] = contribution{c1: c, c2: cv, w: scale(u, v, w)}
			at++
		})
	})

	// 5. Sort by compressed endpoint pair; equal pairs form runs.
	parallel.SampleSort(contribs, func(a, b contribution) bool {
		if a.c1 != b.c1 {
			return a.c1 < b.c1
		}
		if a.c2 != b.c2 {
			return a.c2 < b.c2
		}

		return a.w < b.w
	})
	bounds := parallel.BoundaryIndices(len(contribs), func(i, j int) bool {
		return contribs[i].c1 == contribs[j].c1 && contribs[i].c2 == contribs[j].c2
	})

	// 6. Aggregate each run into one compressed edge. Runs arrive in
	//    (c1, c2) order, which is exactly CSR order.
	numEdges := len(bounds) - 1
	srcs := make([]core.ID, numEdges)
	targets := make([]core.ID, numEdges)
	weights := make([]float64, numEdges)
	parallel.For(numEdges, func(i int) {
		lo, hi := bounds[i], bounds[i+1]
		acc := contribs[lo].w
		for j := lo + 1; j < hi; j++ {
			acc = combine(acc, contribs[j].w)
		}
		srcs[i] = contribs[lo].c1
		targets[i] = contribs[lo].c2
		weights[i] = acc
	})

	offsets := make([]int, numCompressed+1)
	for _, s := range srcs {
		offsets[s+1]++
	}
	for v := 0; v < numCompressed; v++ {
		offsets[v+1] += offsets[v]
	}

	// 7. Post-aggregation rescale, only for the two scaled modes.
	if aggregation == DefaultAverage || aggregation == CutSparsity {
		parallel.For(numCompressed, func(c int) {
			for j := offsets[c]; j < offsets[c+1]; j++ {
				var factor float64
				if aggregation == DefaultAverage {
					factor = float64(compressedWeights[c]) * float64(compressedWeights[targets[j]])
				} else {
					m := compressedWeights[c]
					if compressedWeights[targets[j]] < m {
						m = compressedWeights[targets[j]]
					}
					factor = float64(m)
				}
				weights[j] /= factor
			}
		})
	}

	return core.FromCSR(offsets, targets, weights), compressedWeights, nil
}
