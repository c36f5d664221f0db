package rating_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/ninebox-rating/model"
	"github.com/uyouii/ninebox-rating/rating"
)

func smallReport(t *testing.T, tokens ...string) *model.RatingReport {
	responses, err := rating.ParseResponses(tokens)
	require.NoError(t, err)
	report, err := rating.Analyze(testContext(t), responses)
	require.NoError(t, err)
	report.OutputPath = "out.png"
	return report
}

func TestWriteConsoleReport(t *testing.T) {
	report := smallReport(t, "3", "1", "NA", "2", "1", "2")

	var buf bytes.Buffer
	require.NoError(t, rating.WriteConsoleReport(&buf, report))

	expected := `Plot saved as 'out.png'

Statistics Summary:
  Sample Size: 5
  Excluded 1 non-applicable responses
  Mean: 1.80
  Median: 2.00
  Standard Deviation: 0.75
  Range: 1.00 - 3.00

Rating Distribution:
  Rating 1: 2 people (40.0%)
  Rating 2: 2 people (40.0%)
  Rating 3: 1 people (20.0%)
`
	assert.Equal(t, expected, buf.String())
}

func TestWriteConsoleReport_NoDroppedLine(t *testing.T) {
	report := smallReport(t, "1", "1", "2", "2", "3")

	var buf bytes.Buffer
	require.NoError(t, rating.WriteConsoleReport(&buf, report))
	assert.NotContains(t, buf.String(), "Excluded")
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("closed")
}

func TestWriteConsoleReport_Errors(t *testing.T) {
	assert.Error(t, rating.WriteConsoleReport(&bytes.Buffer{}, nil))
	assert.Error(t, rating.WriteConsoleReport(&bytes.Buffer{}, &model.RatingReport{}))

	report := smallReport(t, "1", "2")
	assert.EqualError(t, rating.WriteConsoleReport(failingWriter{}, report), "closed")
}

func TestFormatRating(t *testing.T) {
	assert.Equal(t, "9", rating.FormatRating(9))
	assert.Equal(t, "2.5", rating.FormatRating(2.5))
}
