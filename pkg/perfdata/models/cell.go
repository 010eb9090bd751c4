// Package models defines data structures for workbook conversion.
package models

// DateTime is a date-formatted numeric cell rendered as ISO 8601 text.
// It is a distinct type so that string cleanup leaves it alone.
type DateTime string

// Row holds one sheet row. Values are aligned with Dataset.Columns and are
// one of nil, string, int64, float64, bool, DateTime or []string.
type Row []interface{}

// IsBlank reports whether every value in the row is nil.
func (r Row) IsBlank() bool {
	for _, v := range r {
		if v != nil {
			return false
		}
	}
	return true
}
