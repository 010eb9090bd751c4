package parser

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/alantehealth/perfdata/pkg/perfdata/models"
	"github.com/xuri/excelize/v2"
)

// builtinDateFormats are the built-in number format IDs that render dates or
// times, including the East Asian locale variants.
var builtinDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	45: true, 46: true, 47: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

// cellReader types raw cell text for one sheet. Date style lookups are
// cached per style index.
type cellReader struct {
	f         *excelize.File
	sheet     string
	date1904  bool
	dateStyle map[int]bool
}

func newCellReader(f *excelize.File, sheet string) *cellReader {
	r := &cellReader{f: f, sheet: sheet, dateStyle: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		r.date1904 = *props.Date1904
	}
	return r
}

// value converts the raw text of one cell into its typed form.
// An empty cell is nil.
func (r *cellReader) value(cell, raw string) (interface{}, error) {
	if raw == "" {
		return nil, nil
	}

	cellType, err := r.f.GetCellType(r.sheet, cell)
	if err != nil {
		return nil, err
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return raw, nil
	case excelize.CellTypeBool:
		if b, err := strconv.ParseBool(raw); err == nil {
			return b, nil
		}
		return raw, nil
	case excelize.CellTypeError:
		return nil, nil
	case excelize.CellTypeDate:
		return models.DateTime(raw), nil
	case excelize.CellTypeFormula:
		// t="str": the cached result of a formula is text.
		return raw, nil
	}

	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return raw, nil
	}
	isDate, err := r.isDateCell(cell)
	if err != nil {
		return nil, err
	}
	if isDate {
		if dt, ok := serialToDateTime(n, r.date1904); ok {
			return dt, nil
		}
	}
	return parseValue(raw), nil
}

func (r *cellReader) isDateCell(cell string) (bool, error) {
	idx, err := r.f.GetCellStyle(r.sheet, cell)
	if err != nil {
		return false, err
	}
	if isDate, ok := r.dateStyle[idx]; ok {
		return isDate, nil
	}

	isDate := false
	if style, err := r.f.GetStyle(idx); err == nil && style != nil {
		isDate = builtinDateFormats[style.NumFmt]
		if style.CustomNumFmt != nil {
			isDate = isDateFormatCode(*style.CustomNumFmt)
		}
	}
	r.dateStyle[idx] = isDate
	return isDate, nil
}

// isDateFormatCode reports whether a custom number format renders a date or
// time. Quoted literals, escaped characters and bracketed sections such as
// colors or locales are ignored; elapsed-time brackets like [h] count.
func isDateFormatCode(code string) bool {
	// Only the positive section decides.
	if i := strings.IndexByte(code, ';'); i >= 0 {
		code = code[:i]
	}

	var b strings.Builder
	for i := 0; i < len(code); i++ {
		switch c := code[i]; c {
		case '"':
			j := strings.IndexByte(code[i+1:], '"')
			if j < 0 {
				i = len(code)
			} else {
				i += j + 1
			}
		case '\\', '_', '*':
			i++
		case '[':
			j := strings.IndexByte(code[i+1:], ']')
			if j < 0 {
				i = len(code)
				break
			}
			inner := strings.ToLower(code[i+1 : i+1+j])
			if strings.Trim(inner, "hms") == "" {
				b.WriteString(inner)
			}
			i += j + 1
		default:
			b.WriteByte(c)
		}
	}

	stripped := strings.ToLower(b.String())
	if strings.Contains(stripped, "general") {
		return false
	}
	return strings.ContainsAny(stripped, "ydhs") ||
		(strings.Contains(stripped, "m") && !strings.ContainsAny(stripped, "0#?"))
}

// serialToDateTime renders an Excel serial date. Midnight values render as a
// bare date; fractions below one day render as a time of day.
func serialToDateTime(serial float64, date1904 bool) (models.DateTime, bool) {
	if serial < 0 || math.IsNaN(serial) || math.IsInf(serial, 0) {
		return "", false
	}
	t, err := excelize.ExcelDateToTime(serial, date1904)
	if err != nil {
		return "", false
	}
	t = t.Round(time.Second)
	switch {
	case serial < 1:
		return models.DateTime(t.Format("15:04:05")), true
	case t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0:
		return models.DateTime(t.Format("2006-01-02")), true
	default:
		return models.DateTime(t.Format("2006-01-02T15:04:05")), true
	}
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for finite decimals, or the original
// string. NaN and infinities stay strings since JSON cannot hold them.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return int64(f)
		}
		return f
	}
	return s
}
