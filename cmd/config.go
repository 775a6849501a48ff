package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/wordmetrics/internal/config"
	wmerrors "github.com/conneroisu/wordmetrics/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and create wordmetrics configuration",
	Long: `Inspect and create wordmetrics configuration.

Examples:
  wordmetrics config show               # Resolved configuration as YAML
  wordmetrics config show --format json # Resolved configuration as JSON
  wordmetrics config init               # Write .wordmetrics.yml with defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration",
	Long: `Display the configuration after the config file, environment variables,
command-line flags and defaults have all been applied.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with the default values",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var (
	configShowFormat string
	configInitOutput string
	configInitForce  bool
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)

	configShowCmd.Flags().StringVar(&configShowFormat, "format", "yaml", "output format (yaml, json)")
	configInitCmd.Flags().StringVarP(&configInitOutput, "output", "o", ".wordmetrics.yml", "file to write")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing file")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	return writeConfig(cmd, cfg, configShowFormat)
}

func writeConfig(cmd *cobra.Command, cfg *config.Config, format string) error {
	out := cmd.OutOrStdout()

	switch format {
	case "yaml":
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(cfg); err != nil {
			return err
		}
		return encoder.Close()
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(cfg)
	default:
		return wmerrors.NewValidationError(wmerrors.ErrCodeUnsupportedFormat,
			fmt.Sprintf("unsupported format: %s (supported: yaml, json)", format))
	}
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(configInitOutput); err == nil && !configInitForce {
		return wmerrors.NewValidationError(wmerrors.ErrCodeConfigInvalid,
			configInitOutput+" already exists (use --force to overwrite)")
	}

	cfg := &config.Config{
		Analysis: config.AnalysisConfig{
			Threads:   config.DefaultThreads,
			QueueSize: config.DefaultQueueSize,
			Strategy:  config.DefaultStrategy,
		},
		Source: config.SourceConfig{
			Encoding: config.DefaultEncoding,
			Markup:   config.DefaultMarkup,
			Timeout:  config.DefaultTimeout,
		},
		Output: config.OutputConfig{
			Format:      config.DefaultFormat,
			ChartHeight: config.DefaultChartHeight,
		},
		Log: config.LogConfig{
			Level:  config.DefaultLogLevel,
			Format: config.DefaultLogFormat,
		},
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(configInitOutput, data, 0644); err != nil {
		return wmerrors.WrapIO(err, wmerrors.ErrCodeInternalError, "cannot write "+configInitOutput)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configInitOutput)
	return nil
}
