package counter

import (
	"context"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/conneroisu/wordmetrics/internal/metrics"
	"github.com/conneroisu/wordmetrics/internal/source"
)

// BulkParallel reads the whole input into memory and then splits the lines
// across a pool of workers. Memory use is proportional to the input.
type BulkParallel struct {
	// Workers sizes the pool. Zero means runtime.GOMAXPROCS(0).
	Workers int
}

// Name implements Strategy.
func (*BulkParallel) Name() string { return string(KindParallel) }

func (b *BulkParallel) workers() int {
	if b.Workers > 0 {
		return b.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Count implements Strategy.
func (b *BulkParallel) Count(ctx context.Context, lines source.LineReader, m *metrics.WordLengths) error {
	all, err := readAll(ctx, lines)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		return nil
	}

	workers := b.workers()
	if workers > len(all) {
		workers = len(all)
	}
	chunk := (len(all) + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < len(all); start += chunk {
		end := min(start+chunk, len(all))
		part := all[start:end]

		g.Go(func() error {
			for i, line := range part {
				// Poll cancellation every 1024 lines.
				if i%1024 == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				registerLine(line, m)
			}
			return nil
		})
	}

	return g.Wait()
}

func readAll(ctx context.Context, lines source.LineReader) ([]string, error) {
	var all []string
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line, err := lines.ReadLine()
		if err == io.EOF {
			return all, nil
		}
		if err != nil {
			return nil, err
		}
		all = append(all, line)
	}
}
