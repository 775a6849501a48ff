package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	wmerrors "github.com/conneroisu/wordmetrics/internal/errors"
	"github.com/conneroisu/wordmetrics/internal/metrics"
)

// Chart defaults.
const (
	DefaultChartHeight = 10
	minChartHeight     = 3
	minChartWidth      = 20
)

var chartTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#7D56F4"))

// Chart renders the text summary followed by a plot of word count per
// length. Lengths with no words plot as zero so the x axis is contiguous.
type Chart struct {
	Height int
	// Width of the plot area. Zero sizes the plot to the data.
	Width int
}

// Render implements Renderer.
func (c Chart) Render(w io.Writer, m *metrics.WordLengths) error {
	bw := bufio.NewWriter(w)
	writeText(bw, m)

	if m.HasData() {
		bw.WriteByte('\n')
		bw.WriteString(chartTitleStyle.Render("Word length distribution"))
		bw.WriteByte('\n')
		bw.WriteString(c.plot(m.FrequencySnapshot()))
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return wmerrors.NewRenderFailure(err)
	}
	return nil
}

func (c Chart) plot(freq metrics.Frequencies) string {
	lengths := freq.Lengths()
	longest := lengths[len(lengths)-1]

	data := make([]float64, longest)
	freq.Each(func(length int, count int64) bool {
		data[length-1] = float64(count)
		return true
	})

	height := c.Height
	if height <= 0 {
		height = DefaultChartHeight
	}
	height = max(height, minChartHeight)

	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Precision(0),
		asciigraph.Caption(fmt.Sprintf("words per length, lengths 1..%d", longest)),
	}
	if c.Width > 0 {
		opts = append(opts, asciigraph.Width(max(c.Width, minChartWidth)))
	}

	return asciigraph.Plot(data, opts...)
}
