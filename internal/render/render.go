// Package render writes a finished word-length analysis.
//
// The text format is the stable, line-oriented summary:
//
//	Word count = 9
//	Average word length = 4.556
//	Number of words of length 1 is 1
//	...
//	The most frequently occurring word length is 2, for word lengths of 4 & 5
//
// JSON and YAML carry the same figures as a document, and the chart format
// follows the text summary with an ASCII plot of the distribution.
package render

import (
	"fmt"
	"io"
	"strings"

	wmerrors "github.com/conneroisu/wordmetrics/internal/errors"
	"github.com/conneroisu/wordmetrics/internal/metrics"
)

// Unavailable is written when there is nothing to summarise.
const Unavailable = "Word count metrics are unavailable.\n"

// Format names a renderer.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatChart Format = "chart"
)

// Formats lists every supported Format.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatChart}

// Renderer writes a summary of m to w. m may be nil or empty. Write
// failures are reported as render failures.
type Renderer interface {
	Render(w io.Writer, m *metrics.WordLengths) error
}

// Options tunes renderers that have layout knobs.
type Options struct {
	ChartHeight int
	ChartWidth  int
}

// New returns the renderer for format.
func New(format string, opts Options) (Renderer, error) {
	switch Format(strings.ToLower(strings.TrimSpace(format))) {
	case "", FormatText:
		return Text{}, nil
	case FormatJSON:
		return JSON{}, nil
	case FormatYAML:
		return YAML{}, nil
	case FormatChart:
		return Chart{Height: opts.ChartHeight, Width: opts.ChartWidth}, nil
	default:
		return nil, wmerrors.NewValidationError(wmerrors.ErrCodeUnsupportedFormat,
			fmt.Sprintf("unsupported format: %s (supported: text, json, yaml, chart)", format))
	}
}
