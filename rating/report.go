package rating

import (
	"context"
	"fmt"
	"io"

	"github.com/uyouii/ninebox-rating/model"
	"github.com/uyouii/ninebox-rating/render"
	"github.com/uyouii/ninebox-rating/utils"
	"go.uber.org/zap"
)

// Analyze runs the numeric part of the report: clean, summarize and tabulate.
func Analyze(ctx context.Context, responses []model.Response) (*model.RatingReport, error) {
	logger := utils.GetLogger(ctx)

	sample, err := Clean(ctx, responses)
	if err != nil {
		return nil, err
	}

	stats, err := Summarize(ctx, sample)
	if err != nil {
		logger.Error("Summarize failed", zap.Error(err))
		return nil, err
	}

	return &model.RatingReport{
		Sample:     sample,
		Statistics: stats,
		Frequency:  Tabulate(sample),
	}, nil
}

// FigureData collects what the charts need from an analyzed report.
func FigureData(ctx context.Context, report *model.RatingReport) *render.FigureData {
	return &render.FigureData{
		Statistics:   report.Statistics,
		Frequency:    report.Frequency,
		Bins:         DensityHistogram(ctx, report.Sample),
		Curve:        NormalCurve(report.Statistics),
		ScaledCounts: ScaledNormalCounts(report.Statistics),
	}
}

// GenerateReport analyzes responses, writes the figure to outputPath and prints the console
// report to out. An empty sample stops it before anything is rendered.
func GenerateReport(ctx context.Context, responses []model.Response, outputPath string,
	out io.Writer) (report *model.RatingReport, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("GenerateReport recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()))
			report, err = nil, fmt.Errorf("generate report: %v", r)
		}
	}()

	report, err = Analyze(ctx, responses)
	if err != nil {
		return nil, err
	}
	report.OutputPath = outputPath

	if err := render.Render(ctx, outputPath, FigureData(ctx, report)); err != nil {
		logger.Error("render figure failed", zap.String("path", outputPath), zap.Error(err))
		return nil, err
	}

	if err := WriteConsoleReport(out, report); err != nil {
		logger.Error("WriteConsoleReport failed", zap.Error(err))
		return nil, err
	}

	logger.Info("rating report done", zap.String("debug", report.Sample.DebugString()))
	return report, nil
}

// GenerateDefaultReport writes the figure to OutputPath.
func GenerateDefaultReport(ctx context.Context, responses []model.Response, out io.Writer) (*model.RatingReport, error) {
	return GenerateReport(ctx, responses, getOutputPath(), out)
}
