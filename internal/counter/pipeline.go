package counter

import (
	"context"
	"io"
	"sync"

	"github.com/conneroisu/wordmetrics/internal/metrics"
	"github.com/conneroisu/wordmetrics/internal/source"
)

// Pipeline defaults.
const (
	DefaultWorkers       = 3
	DefaultQueueCapacity = 100
)

// Pipeline is a bounded producer/consumer. The calling goroutine reads
// lines and pushes them onto a queue of QueueCapacity slots; Workers
// consumers pop and count them. A full queue blocks the producer, so at most
// QueueCapacity lines are buffered at any time. Closing the queue after the
// last line is the only completion signal the consumers need.
type Pipeline struct {
	Workers       int
	QueueCapacity int
}

// Name implements Strategy.
func (*Pipeline) Name() string { return string(KindPipeline) }

func (p *Pipeline) workers() int {
	if p.Workers > 0 {
		return p.Workers
	}
	return DefaultWorkers
}

func (p *Pipeline) capacity() int {
	if p.QueueCapacity > 0 {
		return p.QueueCapacity
	}
	return DefaultQueueCapacity
}

// Count implements Strategy. Consumers are running before the first line is
// produced, and every consumer has exited by the time Count returns, on
// both the success and the failure path.
func (p *Pipeline) Count(ctx context.Context, lines source.LineReader, m *metrics.WordLengths) error {
	queue := make(chan string, p.capacity())

	var wg sync.WaitGroup
	for i := 0; i < p.workers(); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for line := range queue {
				registerLine(line, m)
			}
		}()
	}

	err := produce(ctx, lines, queue)
	close(queue)
	wg.Wait()

	return err
}

func produce(ctx context.Context, lines source.LineReader, queue chan<- string) error {
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

		select {
		case queue <- line:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
