package counter

import (
	"context"
	"io"

	"github.com/conneroisu/wordmetrics/internal/metrics"
	"github.com/conneroisu/wordmetrics/internal/source"
)

// Sequential processes lines one at a time on the calling goroutine.
type Sequential struct{}

// Name implements Strategy.
func (Sequential) Name() string { return string(KindSequential) }

// Count implements Strategy.
func (Sequential) Count(ctx context.Context, lines source.LineReader, m *metrics.WordLengths) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := lines.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		registerLine(line, m)
	}
}
