package affinity_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/parcluster/affinity"
	"github.com/katalvlaran/parcluster/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompressGraph_TwoPairsSum replays the two-disjoint-pairs scenario:
// after linkage and dense relabeling, SUM compression yields two
// vertices, no edges, and node weights [2, 2].
func TestCompressGraph_TwoPairsSum(t *testing.T) {
	g := mustGraph(t, 4, []core.Edge{
		{U: 0, V: 1, W: 2.0},
		{U: 2, V: 3, W: 2.0},
	})
	labels := affinity.NearestNeighborLinkage(g, 0.0)
	dense, k := affinity.DenseLabels(labels)
	require.Equal(t, core.ID(2), k)
	require.Equal(t, []core.ID{0, 0, 1, 1}, dense)

	compressed, weights, err := affinity.CompressGraph(g, nil, dense, affinity.Sum)
	require.NoError(t, err)
	assert.Equal(t, 2, compressed.N())
	assert.Equal(t, 0, compressed.M())
	assert.Equal(t, []uint32{2, 2}, weights)
}

// TestCompressGraph_SingletonIdentity: compressing along the identity
// labeling reproduces the graph and all-ones node weights, for both an
// unscaled and a rescaled mode.
func TestCompressGraph_SingletonIdentity(t *testing.T) {
	g := mustGraph(t, 4, []core.Edge{
		{U: 0, V: 1, W: 1.5},
		{U: 1, V: 2, W: 2.5},
		{U: 2, V: 3, W: 0.5},
		{U: 0, V: 3, W: 4.0},
	})
	labels := []core.ID{0, 1, 2, 3}

	for _, mode := range []affinity.EdgeAggregation{affinity.Sum, affinity.DefaultAverage} {
		compressed, weights, err := affinity.CompressGraph(g, nil, labels, mode)
		require.NoError(t, err, mode)
		assert.Equal(t, []uint32{1, 1, 1, 1}, weights, mode)
		require.Equal(t, g.N(), compressed.N(), mode)
		require.Equal(t, g.M(), compressed.M(), mode)
		for v := core.ID(0); int(v) < g.N(); v++ {
			wantT, wantW := g.Neighbors(v)
			gotT, gotW := compressed.Neighbors(v)
			assert.Equal(t, wantT, gotT, mode)
			assert.Equal(t, wantW, gotW, mode)
		}
	}
}

// TestCompressGraph_SumAggregatesParallelEdges: a 4-cycle contracted to
// two clusters folds its two crossing edges into one compressed edge.
func TestCompressGraph_SumAggregatesParallelEdges(t *testing.T) {
	// 0–1 and 2–3 are intra; 1–2 and 3–0 cross.
	g := mustGraph(t, 4, []core.Edge{
		{U: 0, V: 1, W: 1.0},
		{U: 1, V: 2, W: 2.0},
		{U: 2, V: 3, W: 1.0},
		{U: 3, V: 0, W: 3.0},
	})
	labels := []core.ID{0, 0, 1, 1}

	compressed, weights, err := affinity.CompressGraph(g, nil, labels, affinity.Sum)
	require.NoError(t, err)
	assert.Equal(t, []uint32{2, 2}, weights)
	require.Equal(t, 2, compressed.N())

	targets, ws := compressed.Neighbors(0)
	assert.Equal(t, []core.ID{1}, targets)
	assert.Equal(t, []float64{5.0}, ws)
	assert.NoError(t, compressed.CheckSymmetric())
}

// TestCompressGraph_MaxKeepsHeaviest: MAX keeps the heavier of the two
// crossing edges.
func TestCompressGraph_MaxKeepsHeaviest(t *testing.T) {
	g := mustGraph(t, 4, []core.Edge{
		{U: 0, V: 1, W: 1.0},
		{U: 1, V: 2, W: 2.0},
		{U: 2, V: 3, W: 1.0},
		{U: 3, V: 0, W: 3.0},
	})
	labels := []core.ID{0, 0, 1, 1}

	compressed, _, err := affinity.CompressGraph(g, nil, labels, affinity.Max)
	require.NoError(t, err)
	_, ws := compressed.Neighbors(0)
	assert.Equal(t, []float64{3.0}, ws)
}

// TestCompressGraph_DefaultAverageRescales: with explicit node weights,
// contributions are pre-scaled by the endpoint weight product and the
// aggregate divided by the compressed weight product.
func TestCompressGraph_DefaultAverageRescales(t *testing.T) {
	g := mustGraph(t, 4, []core.Edge{
		{U: 0, V: 1, W: 1.0},
		{U: 1, V: 2, W: 2.0},
		{U: 2, V: 3, W: 1.0},
		{U: 3, V: 0, W: 3.0},
	})
	labels := []core.ID{0, 0, 1, 1}
	nodeWeights := []uint32{1, 2, 3, 4}

	compressed, weights, err := affinity.CompressGraph(g, nodeWeights, labels, affinity.DefaultAverage)
	require.NoError(t, err)
	assert.Equal(t, []uint32{3, 7}, weights)

	// Crossing contributions: (1,2): 2·2·3 = 12; (3,0): 3·4·1 = 12.
	// Aggregate 24, rescaled by 3·7 = 21.
	_, ws := compressed.Neighbors(0)
	require.Len(t, ws, 1)
	assert.InDelta(t, 24.0/21.0, ws[0], 1e-12)
}

// TestCompressGraph_CutSparsityRescales mirrors the average test for the
// min-based scaling.
func TestCompressGraph_CutSparsityRescales(t *testing.T) {
	g := mustGraph(t, 4, []core.Edge{
		{U: 1, V: 2, W: 2.0},
		{U: 0, V: 1, W: 1.0},
		{U: 2, V: 3, W: 1.0},
	})
	labels := []core.ID{0, 0, 1, 1}
	nodeWeights := []uint32{1, 2, 3, 4}

	compressed, weights, err := affinity.CompressGraph(g, nodeWeights, labels, affinity.CutSparsity)
	require.NoError(t, err)
	assert.Equal(t, []uint32{3, 7}, weights)

	// One crossing edge (1,2): pre-scaled 2·min(2,3) = 4; rescaled by
	// min(3,7) = 3.
	_, ws := compressed.Neighbors(0)
	require.Len(t, ws, 1)
	assert.InDelta(t, 4.0/3.0, ws[0], 1e-12)
}

// TestCompressGraph_SkipsNoneVertices: retired vertices contribute
// neither node weight nor edges.
func TestCompressGraph_SkipsNoneVertices(t *testing.T) {
	g := mustGraph(t, 3, []core.Edge{
		{U: 0, V: 1, W: 1.0},
		{U: 1, V: 2, W: 1.0},
	})
	labels := []core.ID{0, 0, core.None}

	compressed, weights, err := affinity.CompressGraph(g, nil, labels, affinity.Sum)
	require.NoError(t, err)
	assert.Equal(t, 1, compressed.N())
	assert.Equal(t, 0, compressed.M())
	assert.Equal(t, []uint32{2}, weights)
}

// TestCompressGraph_Errors: the unimplemented and the unknown mode.
func TestCompressGraph_Errors(t *testing.T) {
	g := mustGraph(t, 2, []core.Edge{{U: 0, V: 1, W: 1.0}})
	labels := []core.ID{0, 1}

	_, _, err := affinity.CompressGraph(g, nil, labels, affinity.Percentile)
	assert.ErrorIs(t, err, affinity.ErrUnimplemented)

	_, _, err = affinity.CompressGraph(g, nil, labels, affinity.EdgeAggregation(99))
	assert.ErrorIs(t, err, affinity.ErrUnknownAggregation)
}

// TestCompressGraph_Invariants: on a random graph with a random
// labeling, the compressed graph stays symmetric and node weight is
// conserved across compression.
func TestCompressGraph_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	const n = 60
	var edges []core.Edge
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Intn(5) == 0 {
				edges = append(edges, core.Edge{U: core.ID(u), V: core.ID(v), W: float64(1+rng.Intn(9)) / 2})
			}
		}
	}
	g := mustGraph(t, n, edges)

	labels := make([]core.ID, n)
	for i := range labels {
		if rng.Intn(10) == 0 {
			labels[i] = core.None
		} else {
			labels[i] = core.ID(rng.Intn(8))
		}
	}

	var activeWeight uint32
	for _, l := range labels {
		if l != core.None {
			activeWeight++
		}
	}

	for _, mode := range []affinity.EdgeAggregation{affinity.Max, affinity.Sum, affinity.DefaultAverage, affinity.CutSparsity} {
		compressed, weights, err := affinity.CompressGraph(g, nil, labels, mode)
		require.NoError(t, err, mode)
		assert.NoError(t, compressed.CheckSymmetric(), mode)

		var total uint32
		for _, w := range weights {
			total += w
		}
		assert.Equal(t, activeWeight, total, "node weight conservation under %v", mode)
	}
}
