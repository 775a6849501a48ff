package render

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	wmerrors "github.com/conneroisu/wordmetrics/internal/errors"
	"github.com/conneroisu/wordmetrics/internal/metrics"
)

// Text renders the line-oriented summary.
type Text struct{}

// Render implements Renderer.
func (Text) Render(w io.Writer, m *metrics.WordLengths) error {
	bw := bufio.NewWriter(w)
	writeText(bw, m)
	if err := bw.Flush(); err != nil {
		return wmerrors.NewRenderFailure(err)
	}
	return nil
}

// writeText buffers the summary. Errors surface on Flush.
func writeText(bw *bufio.Writer, m *metrics.WordLengths) {
	if !m.HasData() {
		bw.WriteString(Unavailable)
		return
	}

	bw.WriteString("Word count = ")
	bw.WriteString(strconv.FormatInt(m.TotalWordCount(), 10))
	bw.WriteByte('\n')

	bw.WriteString("Average word length = ")
	bw.WriteString(FormatAverage(m.AverageWordLength()))
	bw.WriteByte('\n')

	m.FrequencySnapshot().Each(func(length int, count int64) bool {
		bw.WriteString("Number of words of length ")
		bw.WriteString(strconv.Itoa(length))
		bw.WriteString(" is ")
		bw.WriteString(strconv.FormatInt(count, 10))
		bw.WriteByte('\n')
		return true
	})

	highest, _ := m.HighestFrequency()
	bw.WriteString("The most frequently occurring word length is ")
	bw.WriteString(strconv.FormatInt(highest, 10))
	bw.WriteString(", for word lengths of ")
	bw.WriteString(joinLengths(m.LengthsWithFrequency(highest)))
	bw.WriteByte('\n')
}

// FormatAverage prints v with at most three decimals and no trailing zeros.
// Ties round to even.
func FormatAverage(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func joinLengths(lengths []int) string {
	parts := make([]string, len(lengths))
	for i, l := range lengths {
		parts[i] = strconv.Itoa(l)
	}
	return strings.Join(parts, " & ")
}
