package perfdata

import (
	"errors"
	"fmt"
)

// ErrSourceNotFound indicates the workbook or a required sheet is missing.
var ErrSourceNotFound = errors.New("source not found")

// ErrMalformedSource indicates the workbook or a sheet cannot be read as rows.
var ErrMalformedSource = errors.New("malformed source")

// ErrWriteFailure indicates an output directory or file could not be written.
var ErrWriteFailure = errors.New("write failure")

// Stage names the pipeline step an error came from.
type Stage string

const (
	StageOpen   Stage = "open"
	StageLoad   Stage = "load"
	StageWrite  Stage = "write"
	StageVerify Stage = "verify"
)

// ConversionError represents an error during conversion. Kind is one of the
// sentinel errors above; errors.Is matches both Kind and Err.
type ConversionError struct {
	Kind      error
	Stage     Stage
	SheetName string
	Path      string
	Err       error
}

func (e *ConversionError) Error() string {
	switch {
	case e.SheetName != "":
		return fmt.Sprintf("%v: %s sheet %q: %v", e.Kind, e.Stage, e.SheetName, e.Err)
	case e.Path != "":
		return fmt.Sprintf("%v: %s %s: %v", e.Kind, e.Stage, e.Path, e.Err)
	default:
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Stage, e.Err)
	}
}

func (e *ConversionError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// NewConversionError creates a new ConversionError.
func NewConversionError(kind error, stage Stage, sheetName, path string, err error) *ConversionError {
	return &ConversionError{
		Kind:      kind,
		Stage:     stage,
		SheetName: sheetName,
		Path:      path,
		Err:       err,
	}
}
