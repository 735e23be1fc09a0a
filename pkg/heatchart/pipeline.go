package heatchart

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/meltlab/heatchart-go/pkg/heatchart/models"
	"github.com/meltlab/heatchart-go/pkg/heatchart/output"
	"github.com/meltlab/heatchart-go/pkg/heatchart/parser"
	"github.com/meltlab/heatchart-go/pkg/heatchart/render"
	"github.com/meltlab/heatchart-go/pkg/heatchart/transform"
	"go.uber.org/zap"
)

// ElementResult describes what one WrapUp call produced.
type ElementResult struct {
	// AlloyCode is the alloy code used for naming.
	AlloyCode string
	// Rows is the number of melts in the labeled table.
	Rows int
	// Targets is the number of melts labeled as targets.
	Targets int
	// Files lists the files written.
	Files []string
	// Omitted lists positions whose series were left out of the chart.
	Omitted []string
}

// WrapUp loads the report of job, pivots and labels it, and renders the chart
// of one element. Load and pivot failures are returned as *StageError;
// labeling, persistence and rendering problems are logged.
func WrapUp(ctx context.Context, job Job, element string) (*ElementResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts := job.Options

	report, err := parser.LoadReport(job.Input, opts.loadOptions())
	if err != nil {
		return nil, NewStageError(job.AlloyCode, element, StageLoad, err)
	}

	alloyCode := job.AlloyCode
	if alloyCode == "" {
		alloyCode = report.AlloyCode()
	}
	logger := opts.logger().With(zap.String("alloy_code", alloyCode), zap.String("element", element))

	table, err := transform.Pivot(report, opts.pivotOptions(job.Elements))
	if err != nil {
		return nil, NewStageError(alloyCode, element, StagePivot, err)
	}

	label := opts.label()
	labeled := transform.Label(table, job.Targets, label, logger)
	result := &ElementResult{
		AlloyCode: alloyCode,
		Rows:      len(labeled.Rows),
		Targets:   labeled.Targets(),
	}

	saveTable, saveCharts := opts.ShouldSaveTable(), opts.ShouldSaveCharts()
	if saveTable || saveCharts {
		ensureDir(job.OutputDir, logger)
	}

	if saveTable {
		path := filepath.Join(job.OutputDir, output.TableFileName(alloyCode, label, opts.TableFormat))
		if err := output.WriteTable(labeled, path, opts.TableFormat); err != nil {
			logger.Warn("Cannot write labeled table", zap.String("path", path), zap.Error(err))
		} else {
			result.Files = append(result.Files, path)
		}
	}

	c := render.BuildChart(labeled, element, alloyCode, opts.Positions, logger)
	result.Omitted = c.Omitted

	r := opts.renderer()
	r.Logger = logger
	if saveCharts {
		path, err := r.Save(c, job.OutputDir, label)
		if err != nil {
			logger.Warn("Cannot save chart", zap.Error(err))
		} else if path != "" {
			result.Files = append(result.Files, path)
		}
	} else if err := r.Show(c); err != nil {
		logger.Warn("Cannot show chart", zap.Error(err))
	}

	return result, nil
}

// RunBatch runs WrapUp for every element of job, in order.
// The first fatal error stops the batch and is recorded in the summary.
func RunBatch(ctx context.Context, job Job) (*models.BatchSummary, error) {
	logger := job.Options.logger()
	summary := &models.BatchSummary{
		AlloyCode: job.AlloyCode,
		Input:     job.Input,
		OutputDir: job.OutputDir,
	}

	seen := make(map[string]bool)
	for _, element := range job.Elements {
		res, err := WrapUp(ctx, job, element)
		if err != nil {
			summary.Error = err.Error()
			return summary, err
		}

		summary.AlloyCode = res.AlloyCode
		summary.Rows = res.Rows
		summary.Targets = res.Targets
		for _, f := range res.Files {
			if !seen[f] {
				seen[f] = true
				summary.Files = append(summary.Files, f)
			}
		}
		if len(res.Omitted) > 0 {
			if summary.Omitted == nil {
				summary.Omitted = make(map[string][]string)
			}
			summary.Omitted[element] = res.Omitted
		}
	}

	logger.Info("Batch complete",
		zap.String("alloy_code", summary.AlloyCode),
		zap.Int("rows", summary.Rows),
		zap.Int("targets", summary.Targets),
		zap.Int("files", len(summary.Files)))
	return summary, nil
}

// RunAll runs every job as its own batch. A failed batch does not stop the
// remaining ones; all failures are joined into the returned error.
func RunAll(ctx context.Context, jobs []Job) (*models.RunSummary, error) {
	run := &models.RunSummary{Batches: make(map[string]models.BatchSummary)}

	var errs []error
	for _, job := range jobs {
		summary, err := RunBatch(ctx, job)
		if summary != nil {
			key := job.AlloyCode
			if key == "" {
				key = summary.AlloyCode
			}
			run.Batches[key] = *summary
		}
		if err != nil {
			job.Options.logger().Error("Batch failed", zap.String("alloy_code", job.AlloyCode), zap.Error(err))
			errs = append(errs, err)
			if ctx.Err() != nil {
				break
			}
		}
	}

	return run, errors.Join(errs...)
}

func ensureDir(dir string, logger *zap.Logger) {
	if dir == "" {
		return
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Warn("Cannot create output directory", zap.String("path", dir), zap.Error(err))
	}
}
