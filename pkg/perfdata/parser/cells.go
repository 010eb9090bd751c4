// Package parser reads worksheets into datasets.
package parser

import (
	"errors"
	"fmt"

	"github.com/alantehealth/perfdata/pkg/perfdata/models"
	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates a requested worksheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// OpenWorkbook opens an xlsx file for reading.
func OpenWorkbook(path string) (*excelize.File, error) {
	return excelize.OpenFile(path)
}

// HasSheet reports whether the workbook contains the named sheet.
func HasSheet(f *excelize.File, sheetName string) (bool, error) {
	idx, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return false, err
	}
	return idx >= 0, nil
}

// LoadSheet reads a worksheet into a dataset. The first non-empty row is the
// header; every following row up to the last non-empty one becomes a data
// row. Leading blank rows are skipped.
func LoadSheet(f *excelize.File, sheetName string) (*models.Dataset, error) {
	ok, err := HasSheet(f, sheetName)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, sheetName)
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	ds := &models.Dataset{Name: sheetName, Rows: []models.Row{}}
	headerIdx, nRows, nCols := findDataBounds(rows)
	if nRows == 0 {
		return ds, nil
	}

	ds.Columns = headerColumns(rows[headerIdx], nCols)
	reader := newCellReader(f, sheetName)
	for rowIdx := headerIdx + 1; rowIdx < nRows; rowIdx++ {
		raw := rows[rowIdx]
		row := make(models.Row, nCols)
		for colIdx := 0; colIdx < nCols && colIdx < len(raw); colIdx++ {
			if raw[colIdx] == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			v, err := reader.value(cellName, raw[colIdx])
			if err != nil {
				return nil, fmt.Errorf("cell %s: %w", cellName, err)
			}
			row[colIdx] = v
		}
		ds.Rows = append(ds.Rows, row)
	}

	return ds, nil
}
