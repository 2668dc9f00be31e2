package valuation

import (
	"sort"

	"homeverse/server/internal/models"
)

type treeNode struct {
	Feature   int
	Threshold float64
	Left      int
	Right     int
	Value     float64
	Leaf      bool
}

// regressionTree is a CART tree split on squared error
type regressionTree struct {
	nodes []treeNode
	// Total squared-error decrease attributed to each feature
	importance models.FeatureVector
}

type treeBuilder struct {
	x               []models.FeatureVector
	y               []float64
	maxDepth        int
	minSamplesSplit int
	tree            *regressionTree
}

func buildTree(x []models.FeatureVector, y []float64, idx []int, maxDepth, minSamplesSplit int) *regressionTree {
	b := &treeBuilder{
		x:               x,
		y:               y,
		maxDepth:        maxDepth,
		minSamplesSplit: minSamplesSplit,
		tree:            &regressionTree{},
	}
	b.grow(idx, 0)
	return b.tree
}

func (b *treeBuilder) grow(idx []int, depth int) int {
	mean, sse := b.meanSSE(idx)
	id := len(b.tree.nodes)
	b.tree.nodes = append(b.tree.nodes, treeNode{Leaf: true, Value: mean})

	if depth >= b.maxDepth || len(idx) < b.minSamplesSplit || sse <= 0 {
		return id
	}

	feature, threshold, ok := b.bestSplit(idx)
	if !ok {
		return id
	}

	left := make([]int, 0, len(idx))
	right := make([]int, 0, len(idx))
	for _, i := range idx {
		if b.x[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return id
	}

	_, leftSSE := b.meanSSE(left)
	_, rightSSE := b.meanSSE(right)
	if decrease := sse - leftSSE - rightSSE; decrease > 0 {
		b.tree.importance[feature] += decrease
	}

	l := b.grow(left, depth+1)
	r := b.grow(right, depth+1)
	b.tree.nodes[id] = treeNode{Feature: feature, Threshold: threshold, Left: l, Right: r}
	return id
}

func (b *treeBuilder) meanSSE(idx []int) (float64, float64) {
	if len(idx) == 0 {
		return 0, 0
	}
	sum := 0.0
	for _, i := range idx {
		sum += b.y[i]
	}
	mean := sum / float64(len(idx))
	sse := 0.0
	for _, i := range idx {
		d := b.y[i] - mean
		sse += d * d
	}
	return mean, sse
}

// bestSplit scans every feature and returns the threshold that maximizes
// sumL²/nL + sumR²/nR, which is equivalent to minimizing the children's
// squared error. Features are scanned in order and only a strictly better
// split replaces the current one, so results are deterministic.
func (b *treeBuilder) bestSplit(idx []int) (int, float64, bool) {
	n := len(idx)
	total := 0.0
	for _, i := range idx {
		total += b.y[i]
	}

	sorted := make([]int, n)
	bestFeature, bestThreshold := -1, 0.0
	bestProxy := 0.0

	for f := 0; f < models.FeatureCount; f++ {
		copy(sorted, idx)
		sort.SliceStable(sorted, func(a, c int) bool {
			return b.x[sorted[a]][f] < b.x[sorted[c]][f]
		})

		leftSum := 0.0
		for k := 0; k < n-1; k++ {
			leftSum += b.y[sorted[k]]
			cur, next := b.x[sorted[k]][f], b.x[sorted[k+1]][f]
			if cur == next {
				continue
			}
			nl := float64(k + 1)
			nr := float64(n - k - 1)
			rightSum := total - leftSum
			proxy := leftSum*leftSum/nl + rightSum*rightSum/nr
			if bestFeature == -1 || proxy > bestProxy {
				bestFeature = f
				bestProxy = proxy
				bestThreshold = cur + (next-cur)/2
			}
		}
	}

	return bestFeature, bestThreshold, bestFeature != -1
}

func (t *regressionTree) predict(x models.FeatureVector) float64 {
	i := 0
	for {
		node := t.nodes[i]
		if node.Leaf {
			return node.Value
		}
		if x[node.Feature] <= node.Threshold {
			i = node.Left
		} else {
			i = node.Right
		}
	}
}

// normalizedImportance returns the tree's importances scaled to sum to 1, or
// false for a tree that never split.
func (t *regressionTree) normalizedImportance() (models.FeatureVector, bool) {
	var out models.FeatureVector
	sum := 0.0
	for _, v := range t.importance {
		sum += v
	}
	if sum <= 0 {
		return out, false
	}
	for i, v := range t.importance {
		out[i] = v / sum
	}
	return out, true
}
