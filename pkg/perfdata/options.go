// Package perfdata converts the performance workbook into JSON files for the
// dashboard.
package perfdata

import (
	"path/filepath"

	"go.uber.org/zap"
)

const (
	// DefaultWorkbookName is the workbook file expected in the base directory.
	DefaultWorkbookName = "Alante Performance Data.xlsx"
	// DefaultOutputDirName is the output directory under the base directory.
	DefaultOutputDirName = "data"
)

// Sheet names read from the workbook.
const (
	SheetPerformanceMetrics = "Performance_Metrics"
	SheetProgramOutcomes    = "Program_Outcomes"
	SheetUtilizationLog     = "Utilization Log"
)

// SheetFile maps a worksheet to its output file.
type SheetFile struct {
	Sheet string
	File  string
}

// Sheets lists the converted worksheets in output order.
var Sheets = []SheetFile{
	{Sheet: SheetPerformanceMetrics, File: "performance_metrics.json"},
	{Sheet: SheetProgramOutcomes, File: "program_outcomes.json"},
	{Sheet: SheetUtilizationLog, File: "utilization_log.json"},
}

// SheetNames returns the names in Sheets.
func SheetNames() []string {
	names := make([]string, len(Sheets))
	for i, s := range Sheets {
		names[i] = s.Sheet
	}
	return names
}

func fileFor(sheet string) string {
	for _, s := range Sheets {
		if s.Sheet == sheet {
			return s.File
		}
	}
	return ""
}

// Options configures a conversion run.
type Options struct {
	// WorkbookPath is the xlsx file to read.
	WorkbookPath string
	// OutputDir receives the JSON files. It is created if missing.
	OutputDir string
	// Verify reads every file back after writing and checks it.
	Verify bool
	// Logger receives progress logs. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns options rooted at the current directory.
func DefaultOptions() Options {
	return OptionsForBase(".")
}

// OptionsForBase returns options for the default workbook and output
// directory under baseDir.
func OptionsForBase(baseDir string) Options {
	return Options{
		WorkbookPath: filepath.Join(baseDir, DefaultWorkbookName),
		OutputDir:    filepath.Join(baseDir, DefaultOutputDirName),
		Verify:       true,
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
