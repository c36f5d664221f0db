package rating

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/uyouii/ninebox-rating/common"
	"github.com/uyouii/ninebox-rating/model"
	"github.com/uyouii/ninebox-rating/utils"
	"go.uber.org/zap"
)

// ParseResponse reads one text token, "NA" in any case is the non-applicable marker.
func ParseResponse(token string) (model.Response, error) {
	token = strings.TrimSpace(token)
	if strings.EqualFold(token, NotApplicableToken) {
		return model.NotApplicable(), nil
	}

	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return model.Response{}, fmt.Errorf("%w: %q", common.ErrorInvalidRating, token)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return model.Response{}, fmt.Errorf("%w: %q is not finite", common.ErrorInvalidRating, token)
	}
	return model.Rating(value), nil
}

func ParseResponses(tokens []string) ([]model.Response, error) {
	res := make([]model.Response, 0, len(tokens))
	for i, token := range tokens {
		response, err := ParseResponse(token)
		if err != nil {
			return nil, fmt.Errorf("response %d: %w", i, err)
		}
		res = append(res, response)
	}
	return res, nil
}

// Clean drops the non-applicable responses and keeps the order of the rest.
func Clean(ctx context.Context, responses []model.Response) (*model.RatingSample, error) {
	logger := utils.GetLogger(ctx)

	sample := &model.RatingSample{
		Values: make([]float64, 0, len(responses)),
	}

	for i, response := range responses {
		if response.NotApplicable {
			sample.Dropped++
			continue
		}
		if math.IsNaN(response.Value) || math.IsInf(response.Value, 0) {
			logger.Error("rating is not finite", zap.Int("index", i), zap.Float64("value", response.Value))
			return nil, fmt.Errorf("response %d: %w", i, common.ErrorInvalidRating)
		}
		sample.Values = append(sample.Values, response.Value)
	}

	if sample.IsEmpty() {
		logger.Error("no rating left after cleaning", zap.Int("responses", len(responses)),
			zap.Int("dropped", sample.Dropped))
		return nil, common.ErrorEmptySample
	}

	if sample.Dropped > 0 {
		logger.Info("dropped non-applicable responses", zap.Int("dropped", sample.Dropped),
			zap.Int("kept", sample.Len()))
	}
	return sample, nil
}
