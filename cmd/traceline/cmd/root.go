package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/traceline/traceline-go/internal/config"
	"github.com/traceline/traceline-go/internal/logger"
)

var (
	// Version is set at build time
	Version = "0.1.0"

	// Global flags
	output  string
	verbose bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "traceline",
	Short: "Traceline CLI - X-Ray format trace identifier toolkit",
	Long: `Traceline CLI generates, inspects, and validates X-Ray format trace
identifiers and their propagation headers.

Commands:
  create   - Generate new trace identifiers
  inspect  - Decode an identifier or propagation header
  validate - Check identifiers for well-formedness

Example:
  traceline create -n 3
  traceline create --header --sampled
  traceline inspect 1-5759e988-bd862e3fe1be46a994272793
  traceline validate < ids.txt`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		if output != "" {
			if output != "text" && output != "json" {
				return fmt.Errorf("unsupported output format %q", output)
			}
			cfg.Output = output
		}

		level := cfg.Log.Level
		if verbose {
			level = "debug"
		}
		if err := logger.Init(logger.Config{Level: level, Format: cfg.Log.Format}); err != nil {
			return err
		}

		logger.Debug("configuration loaded",
			zap.String("output", cfg.Output),
			zap.String("header_name", cfg.HeaderName),
		)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: text or json (default from TRACELINE_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(validateCmd)
}

// Execute runs the CLI
func Execute() error {
	defer func() { _ = logger.Sync() }()
	return rootCmd.Execute()
}

// emit writes text or JSON to stdout depending on the configured format.
func emit(cmd *cobra.Command, text string, v any) error {
	if cfg.Output == "json" {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
