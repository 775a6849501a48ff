package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/conneroisu/wordmetrics/internal/counter"
	wmerrors "github.com/conneroisu/wordmetrics/internal/errors"
	"github.com/conneroisu/wordmetrics/internal/logging"
	"github.com/conneroisu/wordmetrics/internal/render"
	"github.com/conneroisu/wordmetrics/internal/source"
)

// validateConfig validates configuration values. Failures are config errors
// whose message names the offending key.
func validateConfig(config *Config) error {
	if err := validateAnalysisConfig(&config.Analysis); err != nil {
		return err
	}
	if err := validateSourceConfig(&config.Source); err != nil {
		return err
	}
	if err := validateOutputConfig(&config.Output); err != nil {
		return err
	}
	return validateLogConfig(&config.Log)
}

func invalid(format string, args ...interface{}) error {
	return wmerrors.NewConfigError(wmerrors.ErrCodeConfigInvalid, fmt.Sprintf(format, args...))
}

func validateAnalysisConfig(config *AnalysisConfig) error {
	if config.Threads < 1 {
		return invalid("analysis.threads must be at least 1, got %d", config.Threads)
	}
	if config.QueueSize < 1 {
		return invalid("analysis.queue_size must be at least 1, got %d", config.QueueSize)
	}
	if config.ParallelWorkers < 0 {
		return invalid("analysis.parallel_workers must not be negative, got %d", config.ParallelWorkers)
	}
	if _, err := counter.ParseKind(config.Strategy); err != nil {
		return invalid("analysis.strategy: %s", wmerrors.UserMessage(err))
	}
	return nil
}

func validateSourceConfig(config *SourceConfig) error {
	if !slices.Contains(source.Encodings, strings.ToLower(config.Encoding)) {
		return invalid("source.encoding %q is not supported (supported: %s)",
			config.Encoding, strings.Join(source.Encodings, ", "))
	}
	switch config.Markup {
	case source.MarkupText, source.MarkupHTML:
	default:
		return invalid("source.markup %q is not supported (supported: text, html)", config.Markup)
	}
	if config.Timeout <= 0 {
		return invalid("source.timeout must be positive, got %s", config.Timeout)
	}
	return nil
}

func validateOutputConfig(config *OutputConfig) error {
	if !slices.Contains(render.Formats, render.Format(strings.ToLower(config.Format))) {
		return invalid("output.format %q is not supported (supported: text, json, yaml, chart)", config.Format)
	}
	if config.ChartHeight < 0 || config.ChartWidth < 0 {
		return invalid("output chart dimensions must not be negative")
	}
	return nil
}

func validateLogConfig(config *LogConfig) error {
	if _, ok := logging.ParseLevel(config.Level); !ok {
		return invalid("log.level %q is unknown (supported: debug, info, warn, error)", config.Level)
	}
	switch config.Format {
	case "text", "json":
	default:
		return invalid("log.format %q is unknown (supported: text, json)", config.Format)
	}
	return nil
}
