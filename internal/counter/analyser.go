package counter

import (
	"context"
	"time"

	"github.com/google/uuid"

	wmerrors "github.com/conneroisu/wordmetrics/internal/errors"
	"github.com/conneroisu/wordmetrics/internal/logging"
	"github.com/conneroisu/wordmetrics/internal/metrics"
	"github.com/conneroisu/wordmetrics/internal/source"
)

// Analyser opens a source and runs a strategy over it.
type Analyser struct {
	strategy Strategy
	open     source.Opener
	logger   logging.Logger
}

// NewAnalyser creates an analyser. A nil opener opens locators with default
// source options, and a nil logger discards records.
func NewAnalyser(strategy Strategy, open source.Opener, logger logging.Logger) *Analyser {
	if open == nil {
		open = source.NewOpener(source.Options{})
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Analyser{
		strategy: strategy,
		open:     open,
		logger:   logger.WithComponent("analyser"),
	}
}

// Strategy returns the strategy the analyser runs.
func (a *Analyser) Strategy() Strategy {
	return a.strategy
}

// Analyse counts the words behind locator into a fresh aggregator.
//
// An empty locator fails with an invalid-input error before anything is
// opened. Any failure to open or read the source fails with a read-failure
// error naming the locator, and no partial aggregator is returned.
func (a *Analyser) Analyse(ctx context.Context, locator string) (*metrics.WordLengths, error) {
	if locator == "" {
		return nil, wmerrors.NewInvalidInput()
	}

	log := a.logger.With("run_id", uuid.New().String(), "source", locator, "strategy", a.strategy.Name())
	start := time.Now()

	src, err := a.open(ctx, locator)
	if err != nil {
		log.Debug(ctx, "open failed", "error", err.Error(), "error_type", wmerrors.GetErrorType(err))
		return nil, wmerrors.NewReadFailure(locator, err)
	}
	defer src.Close()

	m := metrics.New()
	if err := a.strategy.Count(ctx, src, m); err != nil {
		log.Debug(ctx, "count failed", "error", err.Error(), "error_type", wmerrors.GetErrorType(err))
		return nil, wmerrors.NewReadFailure(locator, err)
	}

	log.Info(ctx, "analysis complete",
		"words", m.TotalWordCount(),
		"characters", m.TotalCharacterCount(),
		"duration", time.Since(start))

	return m, nil
}
