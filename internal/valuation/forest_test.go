package valuation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homeverse/server/internal/models"
)

// stepData has a price that depends only on feature 0
func stepData() ([]models.FeatureVector, []float64) {
	var x []models.FeatureVector
	var y []float64
	for i := 0; i < 40; i++ {
		var fv models.FeatureVector
		fv[0] = float64(i % 2)
		fv[1] = 7
		x = append(x, fv)
		y = append(y, 10*float64(i%2))
	}
	return x, y
}

func TestBuildTree_PerfectSplit(t *testing.T) {
	x, y := stepData()
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}

	tree := buildTree(x, y, idx, 5, 2)
	assert.Equal(t, 0.0, tree.predict(models.FeatureVector{0}))
	assert.Equal(t, 10.0, tree.predict(models.FeatureVector{1}))

	imp, ok := tree.normalizedImportance()
	require.True(t, ok)
	assert.Equal(t, 1.0, imp[0])
	for i := 1; i < models.FeatureCount; i++ {
		assert.Zero(t, imp[i])
	}
}

func TestBuildTree_ConstantTarget(t *testing.T) {
	x := []models.FeatureVector{{1}, {2}, {3}}
	y := []float64{5, 5, 5}

	tree := buildTree(x, y, []int{0, 1, 2}, 5, 2)
	assert.Len(t, tree.nodes, 1)
	assert.Equal(t, 5.0, tree.predict(models.FeatureVector{9}))

	_, ok := tree.normalizedImportance()
	assert.False(t, ok)
}

func TestBuildTree_DepthLimit(t *testing.T) {
	x, y := stepData()
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}

	tree := buildTree(x, y, idx, 0, 2)
	assert.Len(t, tree.nodes, 1)
	assert.Equal(t, 5.0, tree.predict(models.FeatureVector{1}))
}

func TestFitForest(t *testing.T) {
	x, y := stepData()

	forest, err := FitForest(context.Background(), x, y, ForestOptions{Trees: 8, MaxDepth: 4, Seed: 1, Workers: 3})
	require.NoError(t, err)

	assert.InDelta(t, 0, forest.Predict(models.FeatureVector{0}), 1e-9)
	assert.InDelta(t, 10, forest.Predict(models.FeatureVector{1}), 1e-9)
	assert.InDelta(t, 1.0, forest.Importance()[0], 1e-9)
}

func TestFitForest_WorkerCountDoesNotChangeResult(t *testing.T) {
	x := make([]models.FeatureVector, 60)
	y := make([]float64, 60)
	for i := range x {
		x[i] = models.FeatureVector{float64(i % 6), float64(i % 5), float64(i)}
		y[i] = float64(i*i%17) + float64(i%6)*3
	}

	one, err := FitForest(context.Background(), x, y, ForestOptions{Trees: 12, MaxDepth: 6, Seed: 9, Workers: 1})
	require.NoError(t, err)
	many, err := FitForest(context.Background(), x, y, ForestOptions{Trees: 12, MaxDepth: 6, Seed: 9, Workers: 8})
	require.NoError(t, err)

	for _, fv := range x {
		assert.Equal(t, one.Predict(fv), many.Predict(fv))
	}
	assert.Equal(t, one.Importance(), many.Importance())
}

func TestFitForest_Errors(t *testing.T) {
	_, err := FitForest(context.Background(), nil, nil, ForestOptions{Trees: 1})
	assert.ErrorIs(t, err, ErrEmptyDataset)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	x, y := stepData()
	_, err = FitForest(ctx, x, y, ForestOptions{Trees: 4, MaxDepth: 2, Workers: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAverageImportance_NoSplits(t *testing.T) {
	trees := []*regressionTree{{}, {}}
	imp := averageImportance(trees)
	for _, v := range imp {
		assert.InDelta(t, 1.0/float64(models.FeatureCount), v, 1e-12)
	}
}
