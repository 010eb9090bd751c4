package models

import (
	"bytes"
	"encoding/json"
)

// Dataset is the tabular content of one worksheet.
type Dataset struct {
	// Name is the worksheet name the dataset was loaded from.
	Name string
	// Columns lists column names in sheet order.
	Columns []string
	// Rows contains data rows (header excluded) in sheet order.
	Rows []Row
}

// ColumnIndex returns the position of the named column, or -1.
func (d *Dataset) ColumnIndex(name string) int {
	for i, c := range d.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// AddColumn appends a column, filling each row with fill(rowIndex).
func (d *Dataset) AddColumn(name string, fill func(row int) interface{}) {
	d.Columns = append(d.Columns, name)
	for i := range d.Rows {
		d.Rows[i] = append(d.Rows[i], fill(i))
	}
}

// Value returns the cell at row i in the named column.
// ok is false when the column does not exist or the row is out of range.
func (d *Dataset) Value(i int, column string) (v interface{}, ok bool) {
	idx := d.ColumnIndex(column)
	if idx < 0 || i < 0 || i >= len(d.Rows) {
		return nil, false
	}
	row := d.Rows[i]
	if idx >= len(row) {
		return nil, true
	}
	return row[idx], true
}

// MarshalJSON encodes the dataset as an array of objects keyed by column
// name. Key order follows Columns.
func (d Dataset) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, row := range d.Rows {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for j, col := range d.Columns {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err := encodeJSON(&buf, col); err != nil {
				return nil, err
			}
			buf.WriteByte(':')
			var v interface{}
			if j < len(row) {
				v = row[j]
			}
			if err := encodeJSON(&buf, v); err != nil {
				return nil, err
			}
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// encodeJSON writes v without HTML escaping and without the trailing
// newline json.Encoder appends.
func encodeJSON(buf *bytes.Buffer, v interface{}) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}
