package kcore

import (
	"sync/atomic"

	"github.com/katalvlaran/parcluster/core"
	"github.com/katalvlaran/parcluster/parallel"
)

// Peel runs bucket-based parallel peeling over g and returns the
// coreness of every vertex (the final degree array) together with the
// peeling statistics. Coreness uses unweighted degree.
//
// Per round: the lowest non-empty bucket k is popped, its vertices form
// the active set and finish at coreness k; edges from the active set
// atomically decrement still-live neighbors' degrees, and each moved
// neighbor re-enters the queue at max(newDegree, k). With a non-nil hook,
// Init(k) fires on bucket change (k ≠ 0) before the round's Link calls.
//
// Complexity: O(n + m) work across all rounds plus bucket maintenance;
// O(n) memory beyond the graph.
func Peel(g *core.Graph, numBuckets int, hook ConnectHook) ([]uint32, PeelStats) {
	n := g.N()
	stats := PeelStats{}
	if n == 0 {
		return nil, stats
	}

	// 1. Degrees seed both the coreness array and the bucket queue.
	degrees := make([]uint32, n)
	parallel.For(n, func(i int) {
		degrees[i] = uint32(g.Degree(core.ID(i)))
	})
	buckets := parallel.NewBuckets[core.ID](degrees, numBuckets)

	removed := make([]uint32, n) // per-round atomic histogram
	inline := hook != nil
	var prevBucket uint32
	finished := 0
	for finished < n {
		k, active := buckets.NextBucket()
		if active == nil {
			break
		}
		finished += len(active)
		if k > stats.KMax {
			stats.KMax = k
		}

		if inline && prevBucket != k && k != 0 {
			hook.Init(k)
		}

		cores := func(a core.ID) uint32 {
			if degrees[a] > k {
				return uint32(n) + 1
			}

			return degrees[a]
		}

		// 2. Link pass: edges from the active set to neighbors that have
		//    already peeled or peel this round.
		if inline {
			parallel.For(len(active), func(i int) {
				u := active[i]
				g.MapNeighbors(u, func(_, v core.ID, _ float64) {
					if u != v && degrees[v] <= k {
						hook.Link(u, v, cores)
					}
				})
			})
		}

		// 3. Flatten the active set's neighbor lists so the histogram and
		//    the move application can walk them independently.
		counts := make([]int, len(active))
		parallel.For(len(active), func(i int) {
			counts[i] = g.Degree(active[i])
		})
		totalNeighbors := parallel.ScanInplace(counts)
		candidates := make([]core.ID, totalNeighbors)
		parallel.For(len(active), func(i int) {
			at := counts[i]
			g.MapNeighbors(active[i], func(_, v core.ID, _ float64) {
				candidates[at] = v
				at++
			})
		})

		// 4. Atomic histogram: one removed-edge count per live neighbor.
		//    degrees is stable during the round; only removed is contended.
		parallel.For(len(candidates), func(i int) {
			if v := candidates[i]; degrees[v] > k {
				atomic.AddUint32(&removed[v], 1)
			}
		})

		// 5. Apply the moves. Duplicate candidates collapse because the
		//    histogram slot is consumed on first visit.
		for _, v := range candidates {
			r := removed[v]
			if r == 0 {
				continue
			}
			removed[v] = 0
			if deg := degrees[v]; deg > k {
				newDeg := deg - r
				if newDeg < k {
					newDeg = k
				}
				degrees[v] = newDeg
				buckets.UpdateBucket(v, newDeg)
			}
		}

		stats.Rounds++
		prevBucket = k
	}

	return degrees, stats
}

// Coreness returns the coreness of every vertex of g.
//
// Complexity: see Peel.
func Coreness(g *core.Graph, opts Options) []uint32 {
	cores, _ := Peel(g, opts.NumBuckets, nil)

	return cores
}
