// Package cmd provides the wordmetrics command-line interface.
//
// Configuration is resolved from several sources, highest priority first:
//  1. Command-line flags (--threads, --format, ...)
//  2. WORDMETRICS_<SECTION>_<KEY> environment variables, which may also be
//     supplied through a .env file in the working directory
//  3. The configuration file: --config, else WORDMETRICS_CONFIG_FILE, else
//     .wordmetrics.yml in the working directory
//  4. Built-in defaults
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/wordmetrics/internal/config"
	"github.com/conneroisu/wordmetrics/internal/counter"
	wmerrors "github.com/conneroisu/wordmetrics/internal/errors"
	"github.com/conneroisu/wordmetrics/internal/logging"
	"github.com/conneroisu/wordmetrics/internal/render"
	"github.com/conneroisu/wordmetrics/internal/source"
)

var (
	cfgFile   string
	configErr error
)

// rootCmd analyses a single source when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "wordmetrics [source]",
	Short: "Word length frequency analysis for text files and URLs",
	Long: `wordmetrics counts the words in a text source and reports how word
lengths are distributed: the total word count, the average word length, the
number of words of each length and the most frequent length(s).

The source is a file path, a file:// URI or an http(s):// URL.

Words are separated by whitespace and the characters ! ? : ;. A comma or
period separates words unless it sits between two digits, so 350,000.56
counts as a single word of length 10.

Examples:
  wordmetrics book.txt                      # Sequential analysis
  wordmetrics -t 4 -q 500 book.txt          # 4 consumers, queue of 500 lines
  wordmetrics --strategy parallel book.txt  # Load everything, then fan out
  wordmetrics --html https://example.com    # Count the visible text of a page
  wordmetrics -f json book.txt              # Machine-readable report`,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return configErr
	},
	RunE: runAnalyse,
}

// Execute runs the root command. SIGINT and SIGTERM cancel the running
// analysis.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

// FailureMessage formats err for the user.
func FailureMessage(err error) string {
	return "Failed. " + wmerrors.UserMessage(err)
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is .wordmetrics.yml, can also use WORDMETRICS_CONFIG_FILE env var)")
	flags.IntP("threads", "t", config.DefaultThreads, "number of consumer goroutines; 1 analyses sequentially")
	flags.IntP("queue-size", "q", config.DefaultQueueSize, "capacity of the line queue used when threads > 1")
	flags.StringP("strategy", "s", config.DefaultStrategy, "execution strategy (auto, sequential, parallel, pipeline)")
	flags.Int("workers", 0, "worker count for the parallel strategy (0 = number of CPUs)")
	flags.StringP("encoding", "e", config.DefaultEncoding, "source encoding (utf8, cp437, cp850, iso-8859-1)")
	flags.Bool("html", false, "treat the source as HTML and count only its visible text")
	flags.Duration("timeout", config.DefaultTimeout, "timeout for fetching remote sources")
	flags.StringP("format", "f", config.DefaultFormat, "output format (text, json, yaml, chart)")
	flags.Int("chart-height", config.DefaultChartHeight, "height of the chart format's plot")
	flags.StringP("log-level", "l", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	flags.String("log-format", config.DefaultLogFormat, "log format (text, json)")
}

// flagKeys maps persistent flags onto configuration keys.
var flagKeys = map[string]string{
	"threads":      "analysis.threads",
	"queue-size":   "analysis.queue_size",
	"strategy":     "analysis.strategy",
	"workers":      "analysis.parallel_workers",
	"encoding":     "source.encoding",
	"timeout":      "source.timeout",
	"format":       "output.format",
	"chart-height": "output.chart_height",
	"log-level":    "log.level",
	"log-format":   "log.format",
}

// initConfig initializes the configuration system.
//
// Configuration file priority (highest to lowest):
//  1. --config flag
//  2. WORDMETRICS_CONFIG_FILE environment variable
//  3. .wordmetrics.yml in the current directory
//
// A missing default file is not an error; an explicitly named file that
// cannot be read is reported before the command runs.
func initConfig() {
	configErr = nil

	if err := config.LoadDotEnv(".env"); err != nil {
		configErr = err
		return
	}

	explicit := true
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("WORDMETRICS_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		explicit = false
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".wordmetrics")
	}

	config.SetDefaults()
	config.BindEnvironment()

	flags := rootCmd.PersistentFlags()
	for name, key := range flagKeys {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			configErr = err
			return
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || explicit {
			configErr = wmerrors.WrapConfig(err, wmerrors.ErrCodeConfigInvalid,
				"cannot read config file")
		}
		return
	}
	fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
}

// loadRuntime resolves configuration and applies flags that do not map
// one-to-one onto a configuration key.
func loadRuntime(cmd *cobra.Command) (*config.Config, logging.Logger, error) {
	if html, _ := cmd.Flags().GetBool("html"); html {
		viper.Set("source.markup", source.MarkupHTML)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	logger := logging.NewLogger(cfg.LoggerConfig(cmd.ErrOrStderr()))
	return cfg, logger, nil
}

func newAnalyser(cfg *config.Config, logger logging.Logger) (*counter.Analyser, error) {
	strategy, err := counter.New(cfg.StrategyOptions())
	if err != nil {
		return nil, err
	}
	return counter.NewAnalyser(strategy, source.NewOpener(cfg.SourceOptions()), logger), nil
}

func runAnalyse(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	renderer, err := render.New(cfg.Output.Format, cfg.RenderOptions())
	if err != nil {
		return err
	}

	analyser, err := newAnalyser(cfg, logger)
	if err != nil {
		return err
	}

	var locator string
	if len(args) > 0 {
		locator = args[0]
	}

	ctx := cmd.Context()
	m, err := analyser.Analyse(ctx, locator)
	if err != nil {
		logger.Debug(ctx, "analysis failed", "error", err.Error())
		return err
	}

	return renderer.Render(cmd.OutOrStdout(), m)
}
