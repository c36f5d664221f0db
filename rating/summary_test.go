package rating_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/ninebox-rating/common"
	"github.com/uyouii/ninebox-rating/model"
	"github.com/uyouii/ninebox-rating/rating"
)

func sampleOf(values ...float64) *model.RatingSample {
	return &model.RatingSample{Values: values}
}

func TestSummarize_SmallSample(t *testing.T) {
	stats, err := rating.Summarize(testContext(t), sampleOf(1, 1, 2, 2, 3))
	require.NoError(t, err)

	assert.Equal(t, 5, stats.Count)
	assert.InDelta(t, 1.8, stats.Mean, 1e-12)
	assert.InDelta(t, 2.0, stats.Median, 1e-12)
	assert.InDelta(t, 0.748, stats.StdDev, 1e-3)
	assert.InDelta(t, math.Sqrt(0.56), stats.StdDev, 1e-12)
	assert.Equal(t, 1.0, stats.Min)
	assert.Equal(t, 3.0, stats.Max)
}

func TestSummarize_ClosedForm(t *testing.T) {
	values := []float64{4, 4, 1, 2, 3, 2, 1, 2, 4, 3, 2, 5, 3, 4, 3, 3, 5, 9, 1, 4, 3, 3, 5, 2, 4, 1, 5}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))
	squares := 0.0
	for _, v := range values {
		squares += (v - mean) * (v - mean)
	}
	std := math.Sqrt(squares / float64(len(values)))

	stats, err := rating.Summarize(testContext(t), sampleOf(values...))
	require.NoError(t, err)

	assert.Equal(t, 27, stats.Count)
	assert.InDelta(t, mean, stats.Mean, 1e-12)
	assert.InDelta(t, std, stats.StdDev, 1e-12)
	assert.InDelta(t, 3.26, stats.Mean, 5e-3)
	assert.InDelta(t, 1.69, stats.StdDev, 5e-3)
	assert.Equal(t, 3.0, stats.Median)
	assert.Equal(t, 1.0, stats.Min)
	assert.Equal(t, 9.0, stats.Max)
}

func TestSummarize_DoesNotReorderSample(t *testing.T) {
	sample := sampleOf(3, 1, 2)
	_, err := rating.Summarize(testContext(t), sample)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, sample.Values)
}

func TestSummarize_Empty(t *testing.T) {
	_, err := rating.Summarize(testContext(t), sampleOf())
	assert.ErrorIs(t, err, common.ErrorEmptySample)

	_, err = rating.Summarize(testContext(t), nil)
	assert.ErrorIs(t, err, common.ErrorEmptySample)
}

func TestMedian(t *testing.T) {
	cases := []struct {
		name     string
		sorted   []float64
		expected float64
	}{
		{name: "odd picks middle", sorted: []float64{1, 2, 7}, expected: 2},
		{name: "even averages central pair", sorted: []float64{1, 2, 3, 9}, expected: 2.5},
		{name: "single", sorted: []float64{4}, expected: 4},
		{name: "pair", sorted: []float64{4, 5}, expected: 4.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, rating.Median(tc.sorted))
		})
	}
}
