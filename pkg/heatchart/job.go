package heatchart

import (
	"path/filepath"
)

// Job describes one alloy-code batch.
type Job struct {
	// AlloyCode is used for file naming and chart titles.
	AlloyCode string
	// Input is the report path.
	Input string
	// OutputDir receives charts and tables. It is created if missing.
	OutputDir string
	// Elements lists the elements to pivot and chart.
	Elements []string
	// Targets lists the target melt ids.
	Targets []string
	// Options configures the pipeline.
	Options Options
}

// NewJob builds a job using the LIMS folder conventions: the report is read from
// "{limsRoot}/{code}V.csv" and outputs go to "{outRoot}/{code}V".
func NewJob(alloyCode, limsRoot, outRoot string, targets []string, opts Options) Job {
	folder := alloyCode + "V"
	return Job{
		AlloyCode: alloyCode,
		Input:     filepath.Join(limsRoot, folder+".csv"),
		OutputDir: filepath.Join(outRoot, folder),
		Elements:  append([]string(nil), DefaultElements...),
		Targets:   targets,
		Options:   opts,
	}
}
