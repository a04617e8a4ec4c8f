package importer

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceNotFound is returned when the spreadsheet path does not exist.
	ErrSourceNotFound = errors.New("source file not found")
	// ErrMalformedSource is returned when the file exists but cannot be
	// decoded as a tabular source.
	ErrMalformedSource = errors.New("malformed source file")
	// ErrInvalidField marks a cell that fails required coercion. Match it
	// with errors.Is; the concrete *InvalidFieldError carries the position.
	ErrInvalidField = errors.New("invalid field")
	// ErrBatchOutOfRange is returned when a requested import batch starts
	// beyond the last source record.
	ErrBatchOutOfRange = errors.New("batch number out of range")
	// ErrInvalidBatchNumber is returned when a requested customer listing
	// batch is outside [1, totalBatches].
	ErrInvalidBatchNumber = errors.New("invalid batch number")
	// ErrPersistence wraps store-level failures.
	ErrPersistence = errors.New("persistence error")
)

// InvalidFieldError reports the exact cell that broke the normalization
// pass. Row is the spreadsheet row number (the header is row 1); Column is
// zero-based, matching the fixed column layout.
type InvalidFieldError struct {
	Row    int
	Column int
	Field  string
	Value  string
	cause  error
}

func (e *InvalidFieldError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d, column %d (%s): cannot parse %q", e.Row, e.Column, e.Field, e.Value)
	}
	return fmt.Sprintf("column %d (%s): cannot parse %q", e.Column, e.Field, e.Value)
}

func (e *InvalidFieldError) Unwrap() error { return e.cause }

func (e *InvalidFieldError) Is(target error) bool { return target == ErrInvalidField }

func persistErr(err error) error {
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}
