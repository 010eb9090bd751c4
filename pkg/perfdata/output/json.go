// Package output serializes datasets to JSON files.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alantehealth/perfdata/pkg/perfdata/models"
	"go.uber.org/zap"
)

// Indent is the indentation used for every output file.
const Indent = "  "

// Target pairs a dataset with the file name it is written to.
type Target struct {
	File    string
	Dataset *models.Dataset
}

// DatasetToJSON renders a dataset as an indented JSON array of objects with
// no trailing newline.
func DatasetToJSON(ds *models.Dataset) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(ds); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// EnsureOutputDir creates dir and any missing parents.
func EnsureOutputDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// WriteDataset writes ds to dir/file, replacing any existing file.
func WriteDataset(dir, file string, ds *models.Dataset) (models.FileResult, error) {
	data, err := DatasetToJSON(ds)
	if err != nil {
		return models.FileResult{}, fmt.Errorf("encode %s: %w", ds.Name, err)
	}

	path := filepath.Join(dir, file)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return models.FileResult{}, err
	}

	return models.FileResult{
		Sheet:   ds.Name,
		Path:    path,
		Rows:    len(ds.Rows),
		Columns: append([]string(nil), ds.Columns...),
		Bytes:   len(data),
	}, nil
}

// WriteOutputs creates dir and writes every target in order. It stops at the
// first failure; files already written are left in place.
func WriteOutputs(dir string, targets []Target, logger *zap.Logger) ([]models.FileResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := EnsureOutputDir(dir); err != nil {
		return nil, err
	}

	results := make([]models.FileResult, 0, len(targets))
	for _, t := range targets {
		res, err := WriteDataset(dir, t.File, t.Dataset)
		if err != nil {
			return results, &TargetError{Target: t, Err: err}
		}
		logger.Info("Wrote dataset",
			zap.String("sheet", res.Sheet),
			zap.String("path", res.Path),
			zap.Int("rows", res.Rows),
			zap.Int("bytes", res.Bytes))
		results = append(results, res)
	}
	return results, nil
}

// TargetError reports which target failed to write.
type TargetError struct {
	Target Target
	Err    error
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Target.File, e.Err)
}

func (e *TargetError) Unwrap() error {
	return e.Err
}
