// Package transform normalizes datasets before they are written.
package transform

import (
	"strings"

	"github.com/alantehealth/perfdata/pkg/perfdata/models"
)

// CleanStrings trims leading and trailing whitespace from every string value
// in the dataset and returns how many values changed. Numbers, booleans,
// dates, nulls and lists are left alone, so mixed columns only have their
// string cells trimmed. Running it twice changes nothing the second time.
func CleanStrings(ds *models.Dataset) int {
	changed := 0
	for _, row := range ds.Rows {
		for i, v := range row {
			s, ok := v.(string)
			if !ok {
				continue
			}
			if trimmed := strings.TrimSpace(s); trimmed != s {
				row[i] = trimmed
				changed++
			}
		}
	}
	return changed
}
