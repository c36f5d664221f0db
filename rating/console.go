package rating

import (
	"fmt"
	"io"
	"strconv"

	"github.com/uyouii/ninebox-rating/model"
)

func FormatRating(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// WriteConsoleReport prints the confirmation line, the statistics summary and the
// per-rating breakdown in ascending rating order.
func WriteConsoleReport(w io.Writer, report *model.RatingReport) error {
	if report == nil || report.Statistics == nil || report.Frequency == nil {
		return fmt.Errorf("incomplete report")
	}
	stats := report.Statistics

	p := &consolePrinter{w: w}
	p.printf("Plot saved as '%s'\n", report.OutputPath)
	p.printf("\nStatistics Summary:\n")
	p.printf("  Sample Size: %d\n", stats.Count)
	if report.Sample != nil && report.Sample.Dropped > 0 {
		p.printf("  Excluded %d non-applicable responses\n", report.Sample.Dropped)
	}
	p.printf("  Mean: %.2f\n", stats.Mean)
	p.printf("  Median: %.2f\n", stats.Median)
	p.printf("  Standard Deviation: %.2f\n", stats.StdDev)
	p.printf("  Range: %.2f - %.2f\n", stats.Min, stats.Max)

	p.printf("\nRating Distribution:\n")
	for _, entry := range report.Frequency.Entries {
		p.printf("  Rating %s: %d people (%.1f%%)\n", FormatRating(entry.Rating), entry.Count, entry.Percent)
	}
	return p.err
}

// consolePrinter keeps the first write error and skips everything after it.
type consolePrinter struct {
	w   io.Writer
	err error
}

func (p *consolePrinter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
