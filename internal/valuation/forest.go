package valuation

import (
	"context"
	"errors"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"homeverse/server/internal/models"
)

var ErrEmptyDataset = errors.New("training dataset is empty")

// ForestOptions configures the bagged tree ensemble
type ForestOptions struct {
	Trees           int
	MaxDepth        int
	MinSamplesSplit int
	Seed            int64
	Workers         int
}

// Forest is an ensemble of regression trees, each fitted on a bootstrap sample
type Forest struct {
	trees      []*regressionTree
	importance models.FeatureVector
}

// FitForest builds the ensemble. Bootstrap seeds are drawn from opts.Seed before
// any tree is built, so the fitted forest does not depend on worker scheduling.
func FitForest(ctx context.Context, x []models.FeatureVector, y []float64, opts ForestOptions) (*Forest, error) {
	n := len(x)
	if n == 0 || len(y) != n {
		return nil, ErrEmptyDataset
	}
	if opts.Trees <= 0 {
		opts.Trees = 1
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = 1
	}
	if opts.MinSamplesSplit < 2 {
		opts.MinSamplesSplit = 2
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}

	master := rand.New(rand.NewSource(opts.Seed))
	seeds := make([]int64, opts.Trees)
	for i := range seeds {
		seeds[i] = master.Int63()
	}

	trees := make([]*regressionTree, opts.Trees)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for t := range trees {
		t := t
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewSource(seeds[t]))
			idx := make([]int, n)
			for i := range idx {
				idx[i] = rng.Intn(n)
			}
			trees[t] = buildTree(x, y, idx, opts.MaxDepth, opts.MinSamplesSplit)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	f := &Forest{trees: trees}
	f.importance = averageImportance(trees)
	return f, nil
}

func (f *Forest) Predict(x models.FeatureVector) float64 {
	sum := 0.0
	for _, t := range f.trees {
		sum += t.predict(x)
	}
	return sum / float64(len(f.trees))
}

// Importance returns the mean decrease in impurity per feature, summing to 1
func (f *Forest) Importance() models.FeatureVector {
	return f.importance
}

func averageImportance(trees []*regressionTree) models.FeatureVector {
	var out models.FeatureVector
	counted := 0
	for _, t := range trees {
		imp, ok := t.normalizedImportance()
		if !ok {
			continue
		}
		for i, v := range imp {
			out[i] += v
		}
		counted++
	}

	sum := 0.0
	for _, v := range out {
		sum += v
	}
	if counted == 0 || sum <= 0 {
		// No tree ever split: nothing distinguishes the features
		for i := range out {
			out[i] = 1 / float64(models.FeatureCount)
		}
		return out
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}
