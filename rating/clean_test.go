package rating_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/ninebox-rating/common"
	"github.com/uyouii/ninebox-rating/model"
	"github.com/uyouii/ninebox-rating/rating"
	"github.com/uyouii/ninebox-rating/utils"
	"go.uber.org/zap/zaptest"
)

func testContext(t *testing.T) context.Context {
	return utils.WithLogger(context.Background(), zaptest.NewLogger(t))
}

func TestParseResponse(t *testing.T) {
	cases := []struct {
		name     string
		token    string
		expected model.Response
		err      error
	}{
		{name: "integer", token: "4", expected: model.Rating(4)},
		{name: "padded", token: " 9 ", expected: model.Rating(9)},
		{name: "decimal", token: "2.5", expected: model.Rating(2.5)},
		{name: "sentinel", token: "NA", expected: model.NotApplicable()},
		{name: "sentinel lower case", token: "na", expected: model.NotApplicable()},
		{name: "garbage", token: "four", err: common.ErrorInvalidRating},
		{name: "empty", token: "", err: common.ErrorInvalidRating},
		{name: "not a number", token: "NaN", err: common.ErrorInvalidRating},
		{name: "infinite", token: "+Inf", err: common.ErrorInvalidRating},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := rating.ParseResponse(tc.token)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestParseResponses_ReportsIndex(t *testing.T) {
	_, err := rating.ParseResponses([]string{"1", "NA", "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorInvalidRating)
	assert.Contains(t, err.Error(), "response 2")
}

func TestClean(t *testing.T) {
	ctx := testContext(t)

	cases := []struct {
		name     string
		tokens   []string
		expected []float64
		dropped  int
	}{
		{name: "no sentinel", tokens: []string{"1", "1", "2", "2", "3"}, expected: []float64{1, 1, 2, 2, 3}},
		{name: "sentinels removed, order kept", tokens: []string{"5", "NA", "1", "NA", "3"},
			expected: []float64{5, 1, 3}, dropped: 2},
		{name: "single rating", tokens: []string{"NA", "9"}, expected: []float64{9}, dropped: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			responses, err := rating.ParseResponses(tc.tokens)
			require.NoError(t, err)

			sample, err := rating.Clean(ctx, responses)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, sample.Values)
			assert.Equal(t, tc.dropped, sample.Dropped)
			assert.Equal(t, len(tc.tokens)-tc.dropped, sample.Len())
		})
	}
}

func TestClean_EmptySample(t *testing.T) {
	ctx := testContext(t)

	responses, err := rating.ParseResponses([]string{"NA", "NA"})
	require.NoError(t, err)

	sample, err := rating.Clean(ctx, responses)
	assert.ErrorIs(t, err, common.ErrorEmptySample)
	assert.Nil(t, sample)

	_, err = rating.Clean(ctx, nil)
	assert.ErrorIs(t, err, common.ErrorEmptySample)
}

func TestClean_RejectsNonFinite(t *testing.T) {
	ctx := testContext(t)

	_, err := rating.Clean(ctx, []model.Response{model.Rating(1), model.Rating(math.Inf(1))})
	assert.ErrorIs(t, err, common.ErrorInvalidRating)
}
