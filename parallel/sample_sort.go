package parallel

import (
	"sort"
	"sync"
)

// sortCut is the input size below which SampleSort degenerates to a
// sequential sort; splitter selection needs enough elements per chunk to
// balance the buckets.
const sortCut = 1 << 12

// SampleSort sorts items in place by the supplied strict-weak comparator.
// The sort is not stable: ties must be broken inside less itself whenever
// downstream code depends on a total order.
//
// Algorithm: sort P chunks independently, select P−1 splitters from an
// oversampled, sorted sample, partition every chunk by binary search, and
// sort the resulting buckets in parallel.
//
// Complexity: O(n log n) work, O(n) extra memory.
func SampleSort[T any](items []T, less func(a, b T) bool) {
	n := len(items)
	w := workers()
	if n < sortCut || w == 1 {
		sort.Slice(items, func(i, j int) bool { return less(items[i], items[j]) })

		return
	}

	// 1. Sort each chunk independently.
	bounds := chunkBounds(n, w)
	c := len(bounds)
	var wg sync.WaitGroup
	for _, b := range bounds {
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			run := items[lo:hi]
			sort.Slice(run, func(i, j int) bool { return less(run[i], run[j]) })
		}(b[0], b[1])
	}
	wg.Wait()

	// 2. Oversample c elements per chunk and pick every c-th of the sorted
	//    sample as a splitter.
	samples := make([]T, 0, c*c)
	for _, b := range bounds {
		lo, size := b[0], b[1]-b[0]
		for s := 0; s < c; s++ {
			samples = append(samples, items[lo+s*size/c])
		}
	}
	sort.Slice(samples, func(i, j int) bool { return less(samples[i], samples[j]) })
	splitters := make([]T, c-1)
	for i := 1; i < c; i++ {
		splitters[i-1] = samples[i*c]
	}

	// 3. Partition every sorted chunk by the splitters: cuts[ch][b] is the
	//    first position in chunk ch belonging to bucket b or later.
	cuts := make([][]int, c)
	for ch, b := range bounds {
		wg.Add(1)
		go func(ch, lo, hi int) {
			defer wg.Done()
			run := items[lo:hi]
			cut := make([]int, c+1)
			for b := 0; b < c-1; b++ {
				cut[b+1] = sort.Search(len(run), func(i int) bool { return !less(run[i], splitters[b]) })
			}
			cut[c] = len(run)
			cuts[ch] = cut
		}(ch, b[0], b[1])
	}
	wg.Wait()

	// 4. Lay out buckets in scratch: bucket b holds, chunk by chunk, every
	//    element in [cuts[ch][b], cuts[ch][b+1]).
	scratch := make([]T, n)
	starts := make([]int, c+1)
	pos := 0
	for b := 0; b < c; b++ {
		starts[b] = pos
		for ch := 0; ch < c; ch++ {
			pos += cuts[ch][b+1] - cuts[ch][b]
		}
	}
	starts[c] = n

	for b := 0; b < c; b++ {
		wg.Add(1)
		go func(b int) {
			defer wg.Done()
			dst := starts[b]
			for ch := 0; ch < c; ch++ {
				lo := bounds[ch][0] + cuts[ch][b]
				hi := bounds[ch][0] + cuts[ch][b+1]
				dst += copy(scratch[dst:], items[lo:hi])
			}
			// 5. Sort the assembled bucket.
			run := scratch[starts[b]:dst]
			sort.Slice(run, func(i, j int) bool { return less(run[i], run[j]) })
		}(b)
	}
	wg.Wait()

	copy(items, scratch)
}
