package affinity

import (
	"github.com/katalvlaran/parcluster/core"
	"github.com/katalvlaran/parcluster/parallel"
)

// DenseLabels renumbers the non-None cluster ids of labels into the
// dense space [0, k), preserving their relative order, and returns the
// new labeling together with k. None entries stay None.
//
// Linkage hands out representative vertex ids as cluster ids, so the id
// space it produces is sparse; compressing through DenseLabels keeps the
// next round's graph at exactly one vertex per surviving cluster.
//
// Complexity: O(n) parallel work.
func DenseLabels(labels []core.ID) ([]core.ID, core.ID) {
	out := make([]core.ID, len(labels))
	bound := NumCompressedVertices(labels)
	if bound == 0 {
		parallel.For(len(labels), func(i int) { out[i] = core.None })

		return out, 0
	}

	// Bitmask of used ids, compacted by an exclusive prefix sum.
	used := make([]uint32, bound)
	parallel.For(len(labels), func(i int) {
		if labels[i] != core.None {
			used[labels[i]] = 1
		}
	})
	k := parallel.ScanInplace(used)

	parallel.For(len(labels), func(i int) {
		if labels[i] == core.None {
			out[i] = core.None
		} else {
			out[i] = core.ID(used[labels[i]])
		}
	})

	return out, core.ID(k)
}
