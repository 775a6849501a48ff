// Package counter feeds lines of text through the tokenizer into a
// metrics.WordLengths using one of a fixed set of execution strategies.
//
// Every strategy produces the same totals for the same input. They differ
// only in how the work is spread over goroutines:
//
//	sequential  one goroutine reads, splits and registers each line
//	parallel    all lines are read into memory, then split across workers
//	pipeline    a producer feeds a bounded queue drained by N consumers
package counter

import (
	"context"
	"fmt"
	"strings"

	wmerrors "github.com/conneroisu/wordmetrics/internal/errors"
	"github.com/conneroisu/wordmetrics/internal/metrics"
	"github.com/conneroisu/wordmetrics/internal/source"
	"github.com/conneroisu/wordmetrics/internal/tokenizer"
)

// Strategy counts the words of every line produced by lines into m.
//
// Count returns once every line has been registered, the reader has
// failed, or ctx is done. m must not be read until Count returns.
type Strategy interface {
	Name() string
	Count(ctx context.Context, lines source.LineReader, m *metrics.WordLengths) error
}

// Kind names a strategy.
type Kind string

const (
	KindAuto       Kind = "auto"
	KindSequential Kind = "sequential"
	KindParallel   Kind = "parallel"
	KindPipeline   Kind = "pipeline"
)

// Kinds lists every accepted Kind.
var Kinds = []Kind{KindAuto, KindSequential, KindParallel, KindPipeline}

// ParseKind accepts a kind name case-insensitively. Empty means auto.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	if k == "" {
		return KindAuto, nil
	}
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", wmerrors.NewValidationError(wmerrors.ErrCodeInvalidInput,
		fmt.Sprintf("unknown strategy %q (supported: auto, sequential, parallel, pipeline)", name))
}

// Options selects and sizes a strategy.
type Options struct {
	Kind Kind
	// Threads chooses between sequential (<= 1) and pipeline (> 1) when
	// Kind is auto, and sizes the pipeline's consumer pool.
	Threads int
	// QueueSize is the pipeline queue capacity.
	QueueSize int
	// ParallelWorkers sizes the parallel strategy. Zero means GOMAXPROCS.
	ParallelWorkers int
}

// New returns the strategy described by opts.
func New(opts Options) (Strategy, error) {
	switch opts.Kind {
	case "", KindAuto:
		if opts.Threads <= 1 {
			return Sequential{}, nil
		}
		return &Pipeline{Workers: opts.Threads, QueueCapacity: opts.QueueSize}, nil
	case KindSequential:
		return Sequential{}, nil
	case KindParallel:
		if opts.ParallelWorkers < 0 {
			return nil, wmerrors.NewValidationError(wmerrors.ErrCodeInvalidInput,
				"parallel workers must not be negative")
		}
		return &BulkParallel{Workers: opts.ParallelWorkers}, nil
	case KindPipeline:
		return &Pipeline{Workers: opts.Threads, QueueCapacity: opts.QueueSize}, nil
	default:
		return nil, wmerrors.NewValidationError(wmerrors.ErrCodeInvalidInput,
			fmt.Sprintf("unknown strategy %q", opts.Kind))
	}
}

// registerLine is the unit of work shared by every strategy.
func registerLine(line string, m *metrics.WordLengths) {
	tokenizer.Each(line, m.RegisterWordOccurrence)
}
