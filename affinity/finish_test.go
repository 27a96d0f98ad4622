package affinity_test

import (
	"testing"

	"github.com/katalvlaran/parcluster/affinity"
	"github.com/katalvlaran/parcluster/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFindFinishedClusters_NoConditions: nothing finishes and the
// labeling is untouched.
func TestFindFinishedClusters_NoConditions(t *testing.T) {
	g := mustGraph(t, 4, nil)
	labels := []core.ID{0, 1, 2, 3}

	clusters := affinity.FindFinishedClusters(g, affinity.DefaultOptions(), labels)
	assert.Empty(t, clusters)
	assert.Equal(t, []core.ID{0, 1, 2, 3}, labels)
}

// TestFindFinishedClusters_UnsatisfiedConditionFinishes: a density bound
// above the triangle's density finishes the cluster, emits it, and
// retires its vertices.
func TestFindFinishedClusters_UnsatisfiedConditionFinishes(t *testing.T) {
	g := mustGraph(t, 3, []core.Edge{
		{U: 0, V: 1, W: 1.0},
		{U: 1, V: 2, W: 1.0},
		{U: 0, V: 2, W: 0.5},
	})
	labels := []core.ID{0, 0, 0}
	opts := affinity.DefaultOptions()
	affinity.WithActiveClusterCondition(affinity.ActiveClusterCondition{
		MinDensity: affinity.Float64(0.9), // triangle density ≈ 0.833
	})(&opts)

	clusters := affinity.FindFinishedClusters(g, opts, labels)
	require.Len(t, clusters, 1)
	assert.Equal(t, []core.ID{0, 1, 2}, clusters[0])
	assert.Equal(t, []core.ID{core.None, core.None, core.None}, labels)
}

// TestFindFinishedClusters_SatisfiedConditionStaysActive: a bound the
// cluster clears keeps it in play.
func TestFindFinishedClusters_SatisfiedConditionStaysActive(t *testing.T) {
	g := mustGraph(t, 3, []core.Edge{
		{U: 0, V: 1, W: 1.0},
		{U: 1, V: 2, W: 1.0},
		{U: 0, V: 2, W: 0.5},
	})
	labels := []core.ID{0, 0, 0}
	opts := affinity.DefaultOptions()
	affinity.WithActiveClusterCondition(affinity.ActiveClusterCondition{
		MinDensity: affinity.Float64(0.5),
	})(&opts)

	clusters := affinity.FindFinishedClusters(g, opts, labels)
	assert.Empty(t, clusters)
	assert.Equal(t, []core.ID{0, 0, 0}, labels)
}

// TestFindFinishedClusters_AnyConditionKeepsActive: finished means no
// condition is satisfied, so one passing condition among failing ones is
// enough to stay active.
func TestFindFinishedClusters_AnyConditionKeepsActive(t *testing.T) {
	g := mustGraph(t, 3, []core.Edge{
		{U: 0, V: 1, W: 1.0},
		{U: 1, V: 2, W: 1.0},
		{U: 0, V: 2, W: 0.5},
	})
	labels := []core.ID{0, 0, 0}
	opts := affinity.DefaultOptions()
	affinity.WithActiveClusterCondition(affinity.ActiveClusterCondition{
		MinDensity: affinity.Float64(0.99), // fails
	})(&opts)
	affinity.WithActiveClusterCondition(affinity.ActiveClusterCondition{
		MinConductance: affinity.Float64(0.5), // conductance 1.0 passes
	})(&opts)

	clusters := affinity.FindFinishedClusters(g, opts, labels)
	assert.Empty(t, clusters)
	assert.Equal(t, []core.ID{0, 0, 0}, labels)
}

// TestFindFinishedClusters_BothBoundsMustHold: a single condition with
// two bounds is satisfied only when both hold.
func TestFindFinishedClusters_BothBoundsMustHold(t *testing.T) {
	g := mustGraph(t, 3, []core.Edge{
		{U: 0, V: 1, W: 1.0},
		{U: 1, V: 2, W: 1.0},
		{U: 0, V: 2, W: 0.5},
	})
	labels := []core.ID{0, 0, 0}
	opts := affinity.DefaultOptions()
	affinity.WithActiveClusterCondition(affinity.ActiveClusterCondition{
		MinDensity:     affinity.Float64(0.5), // holds
		MinConductance: affinity.Float64(2.0), // cannot hold
	})(&opts)

	clusters := affinity.FindFinishedClusters(g, opts, labels)
	require.Len(t, clusters, 1)
	assert.Equal(t, []core.ID{0, 1, 2}, clusters[0])
}

// TestFindFinishedClusters_MixedClusters: one finishing cluster is
// emitted while the other keeps its labels; retired vertices never
// reappear.
func TestFindFinishedClusters_MixedClusters(t *testing.T) {
	// A heavy pair and a light pair, disconnected.
	g := mustGraph(t, 5, []core.Edge{
		{U: 0, V: 1, W: 4.0},
		{U: 2, V: 3, W: 0.5},
	})
	labels := []core.ID{0, 0, 2, 2, core.None}
	opts := affinity.DefaultOptions()
	affinity.WithActiveClusterCondition(affinity.ActiveClusterCondition{
		MinDensity: affinity.Float64(1.0), // pair {0,1}: density 4; pair {2,3}: 0.5
	})(&opts)

	clusters := affinity.FindFinishedClusters(g, opts, labels)
	require.Len(t, clusters, 1)
	assert.Equal(t, []core.ID{2, 3}, clusters[0])
	assert.Equal(t, []core.ID{0, 0, core.None, core.None, core.None}, labels)
}
