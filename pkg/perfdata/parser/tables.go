package parser

import (
	"fmt"
	"strconv"
)

// findDataBounds returns the index of the first non-empty row, the index one
// past the last non-empty row and the index one past the last non-empty
// column. nRows is 0 when every row is empty.
func findDataBounds(rows [][]string) (first, nRows, nCols int) {
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if nRows == 0 {
				first = rowIdx
			}
			if rowIdx+1 > nRows {
				nRows = rowIdx + 1
			}
			if colIdx+1 > nCols {
				nCols = colIdx + 1
			}
		}
	}
	return
}

// headerColumns builds unique column names from the header row, padded to
// width. Blank headers become "Unnamed: <i>" and repeats get ".1", ".2"
// suffixes.
func headerColumns(header []string, width int) []string {
	columns := make([]string, width)
	used := make(map[string]bool, width)
	repeats := make(map[string]int)
	for i := 0; i < width; i++ {
		name := ""
		if i < len(header) {
			name = header[i]
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}

		base := name
		for used[name] {
			repeats[base]++
			name = base + "." + strconv.Itoa(repeats[base])
		}
		used[name] = true
		columns[i] = name
	}
	return columns
}
