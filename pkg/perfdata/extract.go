package perfdata

import (
	"errors"
	"os"

	"github.com/alantehealth/perfdata/pkg/perfdata/models"
	"github.com/alantehealth/perfdata/pkg/perfdata/output"
	"github.com/alantehealth/perfdata/pkg/perfdata/parser"
	"github.com/alantehealth/perfdata/pkg/perfdata/transform"
	"github.com/alantehealth/perfdata/pkg/perfdata/verify"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Load reads the named sheets from the workbook at path. Every sheet must be
// present; the workbook is closed before Load returns.
func Load(path string, sheetNames []string, logger *zap.Logger) (map[string]*models.Dataset, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, NewConversionError(ErrSourceNotFound, StageOpen, "", path, err)
		}
		return nil, NewConversionError(ErrMalformedSource, StageOpen, "", path, err)
	}

	f, err := parser.OpenWorkbook(path)
	if err != nil {
		return nil, NewConversionError(ErrMalformedSource, StageOpen, "", path, err)
	}
	defer f.Close()
	logger.Info("Opened workbook", zap.String("path", path), zap.Strings("sheets", f.GetSheetList()))

	datasets := make(map[string]*models.Dataset, len(sheetNames))
	for _, sheetName := range sheetNames {
		ds, err := parser.LoadSheet(f, sheetName)
		if err != nil {
			kind := ErrMalformedSource
			if errors.Is(err, parser.ErrSheetNotFound) {
				kind = ErrSourceNotFound
			}
			return nil, NewConversionError(kind, StageLoad, sheetName, path, err)
		}
		blank := 0
		for _, row := range ds.Rows {
			if row.IsBlank() {
				blank++
			}
		}
		logger.Debug("Loaded sheet",
			zap.String("sheet", sheetName),
			zap.Int("rows", len(ds.Rows)),
			zap.Int("blank_rows", blank),
			zap.Strings("columns", ds.Columns))
		datasets[sheetName] = ds
	}

	return datasets, nil
}

// Convert runs the whole pipeline: load the three sheets, trim strings,
// split the utilization log's Programs column and write one JSON file per
// sheet. A failure stops the run; files already written stay on disk.
func Convert(opts Options) (*models.Result, error) {
	runID := uuid.NewString()
	logger := opts.logger().With(zap.String("run_id", runID))

	datasets, err := Load(opts.WorkbookPath, SheetNames(), logger)
	if err != nil {
		return nil, err
	}

	result := &models.Result{
		RunID:     runID,
		Workbook:  opts.WorkbookPath,
		OutputDir: opts.OutputDir,
	}

	targets := make([]output.Target, 0, len(Sheets))
	for _, s := range Sheets {
		ds := datasets[s.Sheet]
		trimmed := transform.CleanStrings(ds)
		result.CellsTrimmed += trimmed
		logger.Debug("Cleaned strings", zap.String("sheet", s.Sheet), zap.Int("cells_trimmed", trimmed))

		if s.Sheet == SheetUtilizationLog {
			if added := transform.ApplyProgramsColumn(ds); added {
				logger.Warn("Sheet has no Programs column, adding empty lists", zap.String("sheet", s.Sheet))
			}
		}
		targets = append(targets, output.Target{File: s.File, Dataset: ds})
	}

	files, err := output.WriteOutputs(opts.OutputDir, targets, logger)
	result.Files = files
	if err != nil {
		var targetErr *output.TargetError
		if errors.As(err, &targetErr) {
			return result, NewConversionError(ErrWriteFailure, StageWrite, targetErr.Target.Dataset.Name, opts.OutputDir, targetErr.Err)
		}
		return result, NewConversionError(ErrWriteFailure, StageWrite, "", opts.OutputDir, err)
	}

	if opts.Verify {
		v := verify.NewVerifier(opts.OutputDir, logger).
			WithListColumn(fileFor(SheetUtilizationLog), transform.ProgramsColumn)
		if _, err := v.Files(targets); err != nil {
			return result, NewConversionError(ErrWriteFailure, StageVerify, "", opts.OutputDir, err)
		}
	}

	logger.Info("Conversion complete",
		zap.String("output_dir", opts.OutputDir),
		zap.Int("files", len(files)),
		zap.Int("cells_trimmed", result.CellsTrimmed))
	return result, nil
}
