package main

import (
	"context"
	"os"

	"github.com/uyouii/ninebox-rating/rating"
	"github.com/uyouii/ninebox-rating/utils"
	"go.uber.org/zap"
)

// 9 box rating column, one answer per respondent. "NA" marks a missing answer.
var nineBoxRatings = []string{
	"4", "4", "1", "2", "3", "2", "1", "2", "4", "3", "2", "5", "3", "4",
	"3", "3", "5", "9", "1", "4", "3", "3", "5", "2", "4", "1", "5",
}

func main() {
	ctx := context.Background()
	logger := utils.GetLogger(ctx)
	defer logger.Sync()

	responses, err := rating.ParseResponses(nineBoxRatings)
	if err != nil {
		logger.Fatal("parse ratings failed", zap.Error(err))
	}

	if _, err := rating.GenerateDefaultReport(ctx, responses, os.Stdout); err != nil {
		logger.Fatal("generate rating report failed", zap.Error(err))
	}
}
