package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/uyouii/ninebox-rating/common"
	"github.com/uyouii/ninebox-rating/model"
	"github.com/uyouii/ninebox-rating/utils"
	chart "github.com/wcharczuk/go-chart/v2"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
)

// FigureData is everything both charts draw. Curve and ScaledCounts may be empty when the
// sample has no spread.
type FigureData struct {
	Statistics   *model.SummaryStatistics
	Frequency    *model.FrequencyTable
	Bins         []model.HistogramBin
	Curve        []model.Density
	ScaledCounts []model.Density
}

func (d *FigureData) validate() error {
	if d == nil || d.Statistics == nil || d.Frequency == nil {
		return fmt.Errorf("%w: figure data is incomplete", common.ErrorInvalidValue)
	}
	if d.Statistics.Count == 0 {
		return common.ErrorEmptySample
	}
	return nil
}

func renderPanel(c chart.Chart) (image.Image, error) {
	var buf bytes.Buffer
	if err := c.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render %q: %w", c.Title, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", c.Title, err)
	}
	return img, nil
}

// Figure renders the histogram chart above the frequency chart and trims the surrounding
// whitespace.
func Figure(ctx context.Context, data *FigureData) (image.Image, error) {
	logger := utils.GetLogger(ctx)

	if err := data.validate(); err != nil {
		logger.Error("invalid figure data", zap.Error(err))
		return nil, err
	}
	if len(data.Curve) == 0 || len(data.ScaledCounts) == 0 {
		logger.Warn("normal curve is undefined, drawing without it",
			zap.Float64("stddev", data.Statistics.StdDev))
	}

	panels := []chart.Chart{histogramChart(data), frequencyChart(data)}

	width, height := getPanelWidth(), getPanelHeight()
	figure := image.NewRGBA(image.Rect(0, 0, width, height*len(panels)))
	draw.Draw(figure, figure.Bounds(), image.NewUniform(ColorBackground), image.Point{}, draw.Src)

	for i, panel := range panels {
		img, err := renderPanel(panel)
		if err != nil {
			logger.Error("render panel failed", zap.Int("panel", i), zap.Error(err))
			return nil, err
		}
		dst := image.Rect(0, i*height, width, (i+1)*height)
		draw.Draw(figure, dst, img, img.Bounds().Min, draw.Over)
	}

	return TrimWhitespace(figure, ColorBackground, pixels(TrimPadInch*72)), nil
}

// TrimWhitespace crops img to the pixels that differ from background, keeping pad pixels
// around them where the image allows. An image of pure background is returned unchanged.
func TrimWhitespace(img image.Image, background color.Color, pad int) image.Image {
	bounds := img.Bounds()
	br, bg, bb, ba := background.RGBA()

	content := image.Rectangle{}
	found := false
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if r == br && g == bg && b == bb && a == ba {
				continue
			}
			pixel := image.Rect(x, y, x+1, y+1)
			if !found {
				content, found = pixel, true
				continue
			}
			content = content.Union(pixel)
		}
	}
	if !found {
		return img
	}

	crop := image.Rect(content.Min.X-pad, content.Min.Y-pad, content.Max.X+pad, content.Max.Y+pad).
		Intersect(bounds)
	res := image.NewRGBA(image.Rect(0, 0, crop.Dx(), crop.Dy()))
	draw.Copy(res, image.Point{}, img, crop, draw.Src, nil)
	return res
}

// WriteFigure encodes img as PNG at path.
func WriteFigure(ctx context.Context, path string, img image.Image) (err error) {
	logger := utils.GetLogger(ctx)

	f, err := os.Create(path)
	if err != nil {
		logger.Error("create output file failed", zap.String("path", path), zap.Error(err))
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	encoder := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err = encoder.Encode(f, img); err != nil {
		logger.Error("encode figure failed", zap.String("path", path), zap.Error(err))
		return err
	}

	logger.Info("figure written", zap.String("path", path),
		zap.Int("width", img.Bounds().Dx()), zap.Int("height", img.Bounds().Dy()))
	return nil
}

// Render builds the figure and writes it to path.
func Render(ctx context.Context, path string, data *FigureData) error {
	img, err := Figure(ctx, data)
	if err != nil {
		return err
	}
	return WriteFigure(ctx, path, img)
}
