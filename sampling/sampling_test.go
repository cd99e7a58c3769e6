package sampling

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/video699/research-dataset/dataset"
)

func makeVideos(n int) []*dataset.Video {
	videos := make([]*dataset.Video, n)
	for i := range videos {
		videos[i] = &dataset.Video{URI: fmt.Sprintf("video-%d", i)}
	}
	return videos
}

func TestSampleLength(t *testing.T) {
	tests := []struct {
		videos int
		folds  int
		want   int
	}{
		{20, 17, 17},
		{20, 5, 20},
		{20, 7, 14},
		{17, 17, 17},
		{16, 17, 0},
		{0, 17, 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d videos %d folds", tt.videos, tt.folds), func(t *testing.T) {
			got := Sample(makeVideos(tt.videos), tt.folds, DefaultSeed)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestSampleDeterministic(t *testing.T) {
	videos := makeVideos(20)

	first := Sample(videos, DefaultFolds, DefaultSeed)
	second := Sample(videos, DefaultFolds, DefaultSeed)
	require.Len(t, first, 17)
	assert.Equal(t, first, second, "same input and seed must yield an identical sequence")
}

func TestSampleIsPermutationPrefix(t *testing.T) {
	videos := makeVideos(20)
	sampled := Sample(videos, DefaultFolds, DefaultSeed)

	seen := make(map[*dataset.Video]bool)
	for _, v := range sampled {
		assert.False(t, seen[v], "video sampled twice")
		seen[v] = true
		assert.Contains(t, videos, v)
	}
}

func TestSampleSeedVariation(t *testing.T) {
	videos := makeVideos(20)

	a := Sample(videos, DefaultFolds, 1)
	b := Sample(videos, DefaultFolds, 2)
	require.Len(t, a, 17)
	require.Len(t, b, 17)
	assert.NotEqual(t, a, b, "different seeds should permute 20 videos differently")
}

func TestSampleDoesNotMutateInput(t *testing.T) {
	videos := makeVideos(20)
	original := make([]*dataset.Video, len(videos))
	copy(original, videos)

	Sample(videos, DefaultFolds, DefaultSeed)
	assert.Equal(t, original, videos)
}

func TestSampleInvalidFolds(t *testing.T) {
	assert.Nil(t, Sample(makeVideos(5), 0, DefaultSeed))
	assert.Nil(t, Sample(makeVideos(5), -1, DefaultSeed))
}
