// Package sampling partitions the videos of a dataset for k-fold
// cross-validation.
package sampling

import (
	"math/rand"
	"slices"

	"github.com/video699/research-dataset/dataset"
)

// Default parameters of the published evaluation protocol.
const (
	DefaultFolds       = 17
	DefaultSeed  int64 = 12345
)

// Sample returns a deterministically shuffled copy of videos truncated to
// the largest length divisible by folds, so the result splits into folds
// equal parts. The same videos, folds and seed always produce the same
// sequence; callers must not rely on which fold a particular video lands
// in beyond that determinism.
//
// The input slice is not modified. A folds value below one yields nil.
func Sample(videos []*dataset.Video, folds int, seed int64) []*dataset.Video {
	if folds < 1 {
		return nil
	}
	sample := slices.Clone(videos)
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(sample), func(i, j int) {
		sample[i], sample[j] = sample[j], sample[i]
	})
	return sample[:len(sample)-len(sample)%folds]
}
