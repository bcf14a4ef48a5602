// Package errs defines the sentinel errors shared by the ttest packages.
//
// Callers match them with errors.Is; the packages wrap them with context
// using fmt.Errorf("%w: ...").
package errs

import "errors"

// Table errors.
var (
	// ErrInvalidValue is returned by a value parser when a field is not a number.
	ErrInvalidValue = errors.New("invalid numeric value")
	// ErrSourceUnavailable is returned when a table source cannot be opened or read.
	ErrSourceUnavailable = errors.New("table source unavailable")
	// ErrRowOutOfRange is returned when a row index is outside the table.
	ErrRowOutOfRange = errors.New("row out of bounds")
	// ErrColumnOutOfRange is returned when a column index is outside the table.
	ErrColumnOutOfRange = errors.New("column out of bounds")
)

// Configuration errors.
var (
	ErrInvalidDelimiter       = errors.New("invalid field delimiter")
	ErrInvalidBase            = errors.New("invalid integer base")
	ErrNilParser              = errors.New("value parser is nil")
	ErrUnsupportedSource      = errors.New("unsupported table source type")
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)

// T-test errors.
var (
	// ErrNoData is returned when a statistic is requested from an engine without a bound table.
	ErrNoData = errors.New("no data bound to t-test")
	// ErrTooFewColumns is returned when the bound table has fewer than two columns.
	ErrTooFewColumns = errors.New("t-test requires at least two columns")
	// ErrUnknownTestType is returned for a test type that is neither paired nor unpaired.
	ErrUnknownTestType = errors.New("unknown t-test type")
)
