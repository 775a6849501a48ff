package config

import (
	"io"
	"strings"

	"github.com/conneroisu/wordmetrics/internal/counter"
	"github.com/conneroisu/wordmetrics/internal/logging"
	"github.com/conneroisu/wordmetrics/internal/render"
	"github.com/conneroisu/wordmetrics/internal/source"
)

// StrategyOptions converts the analysis section. Load has already
// validated the strategy name.
func (c *Config) StrategyOptions() counter.Options {
	kind, _ := counter.ParseKind(c.Analysis.Strategy)
	return counter.Options{
		Kind:            kind,
		Threads:         c.Analysis.Threads,
		QueueSize:       c.Analysis.QueueSize,
		ParallelWorkers: c.Analysis.ParallelWorkers,
	}
}

// SourceOptions converts the source section.
func (c *Config) SourceOptions() source.Options {
	return source.Options{
		Encoding: strings.ToLower(c.Source.Encoding),
		Markup:   c.Source.Markup,
		Timeout:  c.Source.Timeout,
	}
}

// RenderOptions converts the output section.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		ChartHeight: c.Output.ChartHeight,
		ChartWidth:  c.Output.ChartWidth,
	}
}

// LoggerConfig converts the log section, writing to out.
func (c *Config) LoggerConfig(out io.Writer) *logging.LoggerConfig {
	level, _ := logging.ParseLevel(c.Log.Level)
	return &logging.LoggerConfig{
		Level:  level,
		Format: c.Log.Format,
		Output: out,
	}
}
