package parallel_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/parcluster/parallel"
	"github.com/stretchr/testify/assert"
)

// TestFor_CoversEveryIndex marks every index once, above and below the
// sequential threshold.
func TestFor_CoversEveryIndex(t *testing.T) {
	for _, n := range []int{0, 1, 100, 1 << 14} {
		hits := make([]int, n)
		parallel.For(n, func(i int) { hits[i]++ })
		for i, h := range hits {
			if h != 1 {
				t.Fatalf("n=%d: index %d visited %d times", n, i, h)
			}
		}
	}
}

// TestReduce_SumMatchesSequential compares the parallel tree fold against
// a straight loop on a large input.
func TestReduce_SumMatchesSequential(t *testing.T) {
	n := 1 << 15
	items := make([]int64, n)
	var want int64
	for i := range items {
		items[i] = int64(i % 97)
		want += items[i]
	}
	got := parallel.Reduce(items, func(a, b int64) int64 { return a + b }, 0)
	assert.Equal(t, want, got)
}

// TestReduce_EmptyReturnsIdentity covers the identity contract.
func TestReduce_EmptyReturnsIdentity(t *testing.T) {
	got := parallel.Reduce(nil, func(a, b int) int { return a + b }, 42)
	assert.Equal(t, 42, got)
}

// TestFilterOut_KeepsOriginalOrder retains even values of a large input
// and checks both membership and order.
func TestFilterOut_KeepsOriginalOrder(t *testing.T) {
	n := 1 << 14
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	got := parallel.FilterOut(items, func(x int) bool { return x%2 == 0 })
	assert.Len(t, got, n/2)
	for i, x := range got {
		assert.Equal(t, 2*i, x)
	}
}

// TestPackIndex_MatchesPredicate packs multiples of three as uint32.
func TestPackIndex_MatchesPredicate(t *testing.T) {
	got := parallel.PackIndex[uint32](10, func(i int) bool { return i%3 == 0 })
	assert.Equal(t, []uint32{0, 3, 6, 9}, got)

	assert.Empty(t, parallel.PackIndex[uint32](0, func(int) bool { return true }))
}

// TestScanInplace_ExclusivePrefixSum checks the exclusive semantics and
// the returned total, sequentially and with the parallel path.
func TestScanInplace_ExclusivePrefixSum(t *testing.T) {
	items := []int{3, 1, 4, 1, 5}
	total := parallel.ScanInplace(items)
	assert.Equal(t, 14, total)
	assert.Equal(t, []int{0, 3, 4, 8, 9}, items)

	n := 1 << 15
	big := make([]uint32, n)
	for i := range big {
		big[i] = uint32(i % 7)
	}
	want := make([]uint32, n)
	var run uint32
	for i := range big {
		want[i] = run
		run += big[i]
	}
	gotTotal := parallel.ScanInplace(big)
	assert.Equal(t, run, gotTotal)
	assert.Equal(t, want, big)
}

// TestBoundaryIndices_RunBounds splits a sorted key sequence into its
// equivalence-class runs.
func TestBoundaryIndices_RunBounds(t *testing.T) {
	keys := []int{1, 1, 2, 2, 2, 5, 9, 9}
	got := parallel.BoundaryIndices(len(keys), func(i, j int) bool {
		return keys[i] == keys[j]
	})
	assert.Equal(t, []int{0, 2, 5, 6, 8}, got)

	assert.Equal(t, []int{0}, parallel.BoundaryIndices(0, func(i, j int) bool { return true }))
}

// TestBoundaryIndices_Random cross-checks run bounds on random sorted
// data: consecutive bound pairs must enclose maximal equal runs.
func TestBoundaryIndices_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := 1 << 13
	keys := make([]int, n)
	k := 0
	for i := range keys {
		if rng.Intn(3) == 0 {
			k++
		}
		keys[i] = k
	}
	bounds := parallel.BoundaryIndices(n, func(i, j int) bool { return keys[i] == keys[j] })
	assert.Equal(t, 0, bounds[0])
	assert.Equal(t, n, bounds[len(bounds)-1])
	for b := 0; b < len(bounds)-1; b++ {
		lo, hi := bounds[b], bounds[b+1]
		for i := lo + 1; i < hi; i++ {
			assert.Equal(t, keys[lo], keys[i])
		}
		if hi < n {
			assert.NotEqual(t, keys[lo], keys[hi])
		}
	}
}
