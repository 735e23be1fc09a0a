// Package main provides the CLI entry point for heatchart.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/meltlab/heatchart-go/pkg/heatchart"
	"github.com/meltlab/heatchart-go/pkg/heatchart/output"
	"github.com/meltlab/heatchart-go/pkg/heatchart/transform"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// runFlags holds the flags of the run command.
type runFlags struct {
	limsRoot    string
	outRoot     string
	input       string
	sheet       string
	alloyCodes  []string
	elements    []string
	targets     []string
	label       string
	begLabel    string
	endLabel    string
	saveTable   bool
	saveCharts  bool
	tableFormat string
	heatPolicy  string
	sentinel    string
	sortMode    string
	dpi         float64
	summaryPath string
	pretty      bool
	logLevel    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "heatchart",
		Short: "Chart LIMS chemistry reports by heat",
		Long: `heatchart pivots LIMS chemistry reports into one row per melt,
marks target heats, and renders per-element beginning/end scatter charts.`,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newRunCmd(), newDiscoverCmd())
	return rootCmd
}

func newRunCmd() *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Pivot, label and chart one or more alloy codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}

	defaults := heatchart.DefaultOptions()
	cmd.Flags().StringVar(&f.limsRoot, "lims-root", ".", "Folder holding {code}V.csv reports")
	cmd.Flags().StringVar(&f.outRoot, "out-root", ".", "Folder receiving {code}V output folders")
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "Report path (only with a single alloy code)")
	cmd.Flags().StringVar(&f.sheet, "sheet", "", "Worksheet of xlsx reports (default: first sheet)")
	cmd.Flags().StringSliceVarP(&f.alloyCodes, "alloy", "a", nil, "Alloy codes to process")
	cmd.Flags().StringSliceVarP(&f.elements, "elements", "e", heatchart.DefaultElements, "Elements to chart")
	cmd.Flags().StringSliceVarP(&f.targets, "targets", "t", nil, "Target melt ids")
	cmd.Flags().StringVarP(&f.label, "label", "l", defaults.Label, "Name of the target column")
	cmd.Flags().StringVar(&f.begLabel, "beg", defaults.Positions.Beginning, "Beginning position label")
	cmd.Flags().StringVar(&f.endLabel, "end", defaults.Positions.End, "End position label")
	cmd.Flags().BoolVar(&f.saveTable, "save-table", false, "Write the labeled table")
	cmd.Flags().BoolVar(&f.saveCharts, "save-charts", true, "Save charts as PNG (false: write each chart to a heatchart-*.png temp file, left in place, and log its path)")
	cmd.Flags().StringVar(&f.tableFormat, "table-format", string(defaults.TableFormat), "Labeled table format: csv, xlsx")
	cmd.Flags().StringVar(&f.heatPolicy, "heat-policy", string(defaults.HeatNumberPolicy), "Melt ids without heat number: fail, exclude, sentinel")
	cmd.Flags().StringVar(&f.sentinel, "sentinel", "", "Heat number used by the sentinel policy")
	cmd.Flags().StringVar(&f.sortMode, "sort", string(defaults.SortMode), "Heat number ordering: lexical, numeric")
	cmd.Flags().Float64Var(&f.dpi, "dpi", defaults.DPI, "Chart resolution")
	cmd.Flags().StringVar(&f.summaryPath, "summary", "", "Write a JSON run summary to this path (- for stdout)")
	cmd.Flags().BoolVar(&f.pretty, "pretty", false, "Pretty-print the JSON summary")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	cmd.MarkFlagRequired("alloy")

	return cmd
}

func run(cmd *cobra.Command, f *runFlags) error {
	logger, err := newLogger(f.logLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	jobs, err := buildJobs(f, logger)
	if err != nil {
		return err
	}

	summary, runErr := heatchart.RunAll(context.Background(), jobs)

	if f.summaryPath != "" {
		jsonData, err := output.ToJSON(summary, f.pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if f.summaryPath == "-" {
			fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
		} else if err := os.WriteFile(f.summaryPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}

	return runErr
}

// buildJobs validates the flags and returns one job per alloy code.
func buildJobs(f *runFlags, logger *zap.Logger) ([]heatchart.Job, error) {
	if len(f.alloyCodes) == 0 {
		return nil, fmt.Errorf("at least one alloy code is required")
	}
	if f.input != "" && len(f.alloyCodes) > 1 {
		return nil, fmt.Errorf("--input can only be used with a single alloy code")
	}

	policy, err := transform.ParseHeatNumberPolicy(f.heatPolicy)
	if err != nil {
		return nil, err
	}
	sortMode, err := transform.ParseSortMode(f.sortMode)
	if err != nil {
		return nil, err
	}
	format, err := output.ParseFormat(f.tableFormat)
	if err != nil {
		return nil, err
	}

	opts := heatchart.DefaultOptions()
	opts.Label = f.label
	opts.Sheet = f.sheet
	opts.Positions = transform.Positions{Beginning: f.begLabel, End: f.endLabel}
	opts.HeatNumberPolicy = policy
	opts.HeatNumberSentinel = f.sentinel
	opts.SortMode = sortMode
	opts.TableFormat = format
	opts.SaveTable = &f.saveTable
	opts.SaveCharts = &f.saveCharts
	opts.DPI = f.dpi
	opts.Logger = logger

	jobs := make([]heatchart.Job, 0, len(f.alloyCodes))
	for _, code := range f.alloyCodes {
		job := heatchart.NewJob(code, f.limsRoot, f.outRoot, f.targets, opts)
		job.Elements = f.elements
		if f.input != "" {
			job.Input = f.input
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func newDiscoverCmd() *cobra.Command {
	var pattern, logLevel string
	cmd := &cobra.Command{
		Use:   "discover [root]",
		Short: "List report files matching a name pattern",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			logger, err := newLogger(logLevel)
			if err != nil {
				return err
			}
			defer logger.Sync()

			files, err := heatchart.Find(root, pattern, logger)
			if err != nil {
				return fmt.Errorf("discovery failed: %w", err)
			}
			for _, file := range files {
				fmt.Fprintln(cmd.OutOrStdout(), file)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "*V.csv", "Shell pattern matched against file names")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	return cmd
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %s", level)
	}
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.DisableStacktrace = true
	return config.Build()
}
