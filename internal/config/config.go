// Package config provides configuration management for wordmetrics using
// Viper for loading from files, environment variables and command-line
// flags.
//
// Keys are grouped by section (analysis, source, output, log). Every key can
// be overridden with a WORDMETRICS_<SECTION>_<KEY> environment variable, and
// a .env file in the working directory is loaded into the environment
// before Viper reads it.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	wmerrors "github.com/conneroisu/wordmetrics/internal/errors"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "WORDMETRICS"

type Config struct {
	Analysis AnalysisConfig `mapstructure:"analysis" yaml:"analysis" json:"analysis"`
	Source   SourceConfig   `mapstructure:"source" yaml:"source" json:"source"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output" json:"output"`
	Log      LogConfig      `mapstructure:"log" yaml:"log" json:"log"`
}

type AnalysisConfig struct {
	Threads         int    `mapstructure:"threads" yaml:"threads" json:"threads"`
	QueueSize       int    `mapstructure:"queue_size" yaml:"queue_size" json:"queue_size"`
	Strategy        string `mapstructure:"strategy" yaml:"strategy" json:"strategy"`
	ParallelWorkers int    `mapstructure:"parallel_workers" yaml:"parallel_workers" json:"parallel_workers"`
}

type SourceConfig struct {
	Encoding string        `mapstructure:"encoding" yaml:"encoding" json:"encoding"`
	Markup   string        `mapstructure:"markup" yaml:"markup" json:"markup"`
	Timeout  time.Duration `mapstructure:"timeout" yaml:"timeout" json:"timeout"`
}

type OutputConfig struct {
	Format      string `mapstructure:"format" yaml:"format" json:"format"`
	ChartHeight int    `mapstructure:"chart_height" yaml:"chart_height" json:"chart_height"`
	ChartWidth  int    `mapstructure:"chart_width" yaml:"chart_width" json:"chart_width"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// Defaults.
const (
	DefaultThreads     = 1
	DefaultQueueSize   = 100
	DefaultStrategy    = "auto"
	DefaultEncoding    = "utf8"
	DefaultMarkup      = "text"
	DefaultTimeout     = 30 * time.Second
	DefaultFormat      = "text"
	DefaultChartHeight = 10
	DefaultLogLevel    = "warn"
	DefaultLogFormat   = "text"
)

// SetDefaults registers every default with Viper so that environment
// overrides are visible to Unmarshal even when no config file sets the key.
func SetDefaults() {
	viper.SetDefault("analysis.threads", DefaultThreads)
	viper.SetDefault("analysis.queue_size", DefaultQueueSize)
	viper.SetDefault("analysis.strategy", DefaultStrategy)
	viper.SetDefault("analysis.parallel_workers", 0)
	viper.SetDefault("source.encoding", DefaultEncoding)
	viper.SetDefault("source.markup", DefaultMarkup)
	viper.SetDefault("source.timeout", DefaultTimeout)
	viper.SetDefault("output.format", DefaultFormat)
	viper.SetDefault("output.chart_height", DefaultChartHeight)
	viper.SetDefault("output.chart_width", 0)
	viper.SetDefault("log.level", DefaultLogLevel)
	viper.SetDefault("log.format", DefaultLogFormat)
}

// LoadDotEnv loads the first existing file among paths into the process
// environment. Variables that are already set win over the file.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return wmerrors.WrapConfig(err, wmerrors.ErrCodeConfigInvalid, "cannot load "+path)
		}
		return nil
	}
	return nil
}

func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, wmerrors.WrapConfig(err, wmerrors.ErrCodeConfigInvalid, "invalid configuration")
	}

	applyDefaults(&config)

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// applyDefaults fills values that were left unset, for callers that skip
// SetDefaults.
func applyDefaults(config *Config) {
	if !viper.IsSet("analysis.threads") && config.Analysis.Threads == 0 {
		config.Analysis.Threads = DefaultThreads
	}
	if !viper.IsSet("analysis.queue_size") && config.Analysis.QueueSize == 0 {
		config.Analysis.QueueSize = DefaultQueueSize
	}
	if config.Analysis.Strategy == "" {
		config.Analysis.Strategy = DefaultStrategy
	}
	if config.Source.Encoding == "" {
		config.Source.Encoding = DefaultEncoding
	}
	if config.Source.Markup == "" {
		config.Source.Markup = DefaultMarkup
	}
	if !viper.IsSet("source.timeout") && config.Source.Timeout == 0 {
		config.Source.Timeout = DefaultTimeout
	}
	if config.Output.Format == "" {
		config.Output.Format = DefaultFormat
	}
	if config.Output.ChartHeight == 0 {
		config.Output.ChartHeight = DefaultChartHeight
	}
	if config.Log.Level == "" {
		config.Log.Level = DefaultLogLevel
	}
	if config.Log.Format == "" {
		config.Log.Format = DefaultLogFormat
	}
}

func envKeyReplacer() *strings.Replacer {
	return strings.NewReplacer(".", "_")
}

// BindEnvironment enables WORDMETRICS_ overrides for every key.
func BindEnvironment() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(envKeyReplacer())
}
