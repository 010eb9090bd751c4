// Package main provides the CLI entry point for perfdata.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alantehealth/perfdata/pkg/perfdata"
	"github.com/alantehealth/perfdata/pkg/perfdata/config"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type flags struct {
	outputDir string
	baseDir   string
	logLevel  string
	logFormat string
	verify    bool
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var fl flags

	rootCmd := &cobra.Command{
		Use:   "perfdata [workbook.xlsx]",
		Short: "Convert the performance workbook to JSON",
		Long: `perfdata reads the Performance_Metrics, Program_Outcomes and
Utilization Log sheets from the performance workbook and writes
performance_metrics.json, program_outcomes.json and utilization_log.json
for the dashboard.`,
		Args:    cobra.MaximumNArgs(1),
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, fl, stdout)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SilenceUsage = true

	rootCmd.Flags().StringVarP(&fl.outputDir, "output", "o", "", "Output directory (default: <base-dir>/data)")
	rootCmd.Flags().StringVar(&fl.baseDir, "base-dir", "", "Directory holding the workbook and data/ (default: .)")
	rootCmd.Flags().StringVar(&fl.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&fl.logFormat, "log-format", "", "Log format: console, json")
	rootCmd.Flags().BoolVar(&fl.verify, "verify", true, "Read output files back and check them after writing")

	return rootCmd
}

func run(cmd *cobra.Command, args []string, fl flags, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Flags given on the command line win over the environment.
	if len(args) == 1 {
		cfg.WorkbookPath = args[0]
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputDir = fl.outputDir
	}
	if cmd.Flags().Changed("base-dir") {
		cfg.BaseDir = fl.baseDir
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = fl.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = fl.logFormat
	}
	if cmd.Flags().Changed("verify") {
		cfg.Verify = fl.verify
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	opts := cfg.Options()
	opts.Logger = logger

	result, err := perfdata.Convert(opts)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	fmt.Fprintln(stdout, "Wrote JSON files to", result.OutputDir)
	return nil
}
