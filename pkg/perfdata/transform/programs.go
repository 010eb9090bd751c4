package transform

import (
	"fmt"
	"strings"

	"github.com/alantehealth/perfdata/pkg/perfdata/models"
)

// ProgramsColumn holds comma-separated program tags in the utilization log.
const ProgramsColumn = "Programs"

// SplitPrograms turns a comma-separated tag cell into a list. Nil, blank,
// "nan" and "none" (any case) give an empty list. Parts are trimmed, empty
// parts dropped, order and duplicates kept. The result is never nil.
func SplitPrograms(v interface{}) []string {
	var s string
	switch x := v.(type) {
	case nil:
		return []string{}
	case string:
		s = x
	default:
		s = fmt.Sprint(x)
	}

	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") || strings.EqualFold(s, "none") {
		return []string{}
	}

	programs := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			programs = append(programs, part)
		}
	}
	return programs
}

// ApplyProgramsColumn replaces each Programs value with its split form. When
// the dataset has no Programs column one is appended holding an empty list on
// every row. It reports whether the column was added.
func ApplyProgramsColumn(ds *models.Dataset) bool {
	idx := ds.ColumnIndex(ProgramsColumn)
	if idx < 0 {
		ds.AddColumn(ProgramsColumn, func(int) interface{} { return []string{} })
		return true
	}

	for i, row := range ds.Rows {
		if idx >= len(row) {
			padded := make(models.Row, len(ds.Columns))
			copy(padded, row)
			row = padded
			ds.Rows[i] = row
		}
		if _, done := row[idx].([]string); done {
			continue
		}
		row[idx] = SplitPrograms(row[idx])
	}
	return false
}
