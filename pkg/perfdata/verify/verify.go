// Package verify reads written JSON files back and checks them against the
// datasets they were produced from.
package verify

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alantehealth/perfdata/pkg/perfdata/models"
	"github.com/alantehealth/perfdata/pkg/perfdata/output"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// Report holds the outcome of checking one file.
type Report struct {
	File          string
	ExpectedRows  int
	ActualRows    int
	RowCountOK    bool
	KeyMismatches []KeyMismatch
	ListColumnOK  bool
}

// KeyMismatch describes an object whose keys differ from the dataset columns.
type KeyMismatch struct {
	Row      int
	Expected []string
	Actual   []string
}

// OK reports whether the file matched its dataset.
func (r Report) OK() bool {
	return r.RowCountOK && len(r.KeyMismatches) == 0 && r.ListColumnOK
}

// Verifier checks output files in a directory.
type Verifier struct {
	dir         string
	logger      *zap.Logger
	listColumns map[string]string
}

// NewVerifier creates a verifier for files under dir.
func NewVerifier(dir string, logger *zap.Logger) *Verifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Verifier{dir: dir, logger: logger, listColumns: make(map[string]string)}
}

// WithListColumn additionally requires column to hold an array in every
// object of the named file.
func (v *Verifier) WithListColumn(file, column string) *Verifier {
	v.listColumns[file] = column
	return v
}

// VerifyTarget reads one written file and compares it to its dataset.
func (v *Verifier) VerifyTarget(t output.Target) (Report, error) {
	path := filepath.Join(v.dir, t.File)
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{File: path}, err
	}
	if !gjson.ValidBytes(data) {
		return Report{File: path}, fmt.Errorf("%s: invalid JSON", path)
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return Report{File: path}, fmt.Errorf("%s: top-level value is not an array", path)
	}

	ds := t.Dataset
	objects := doc.Array()
	report := Report{
		File:         path,
		ExpectedRows: len(ds.Rows),
		ActualRows:   len(objects),
		RowCountOK:   len(objects) == len(ds.Rows),
		ListColumnOK: true,
	}

	listColumn, checkList := v.listColumns[t.File]
	for i, obj := range objects {
		var keys []string
		obj.ForEach(func(key, _ gjson.Result) bool {
			keys = append(keys, key.String())
			return true
		})
		if !equalKeys(keys, ds.Columns) {
			report.KeyMismatches = append(report.KeyMismatches, KeyMismatch{Row: i, Expected: ds.Columns, Actual: keys})
		}
		if checkList && !listMatches(obj.Get(gjson.Escape(listColumn)), ds, i, listColumn) {
			report.ListColumnOK = false
		}
	}

	v.logger.Info("Verified output file",
		zap.String("path", path),
		zap.Int("expected_rows", report.ExpectedRows),
		zap.Int("actual_rows", report.ActualRows),
		zap.Int("key_mismatches", len(report.KeyMismatches)),
		zap.Bool("ok", report.OK()))
	return report, nil
}

// Files verifies every target and returns an error naming the first file
// that does not match.
func (v *Verifier) Files(targets []output.Target) ([]Report, error) {
	reports := make([]Report, 0, len(targets))
	for _, t := range targets {
		report, err := v.VerifyTarget(t)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
		if !report.OK() {
			return reports, fmt.Errorf("%s: %s", report.File, describe(report))
		}
	}
	return reports, nil
}

func describe(r Report) string {
	var problems []string
	if !r.RowCountOK {
		problems = append(problems, fmt.Sprintf("expected %d rows, found %d", r.ExpectedRows, r.ActualRows))
	}
	if n := len(r.KeyMismatches); n > 0 {
		problems = append(problems, fmt.Sprintf("%d objects with unexpected keys (first at row %d)", n, r.KeyMismatches[0].Row))
	}
	if !r.ListColumnOK {
		problems = append(problems, "list column does not match the dataset")
	}
	return strings.Join(problems, "; ")
}

// listMatches reports whether got is an array with as many items as the
// dataset's list value at row i.
func listMatches(got gjson.Result, ds *models.Dataset, i int, column string) bool {
	if !got.IsArray() {
		return false
	}
	want, _ := ds.Value(i, column)
	list, _ := want.([]string)
	return len(got.Array()) == len(list)
}

func equalKeys(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
