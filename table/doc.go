// Package table loads rectangular tables of numeric observations and aggregates
// them with missing-value support.
//
// # Sources
//
// A table is read from delimiter-separated text, one record per line. Fields are
// split on a single delimiter rune (comma by default) with no quoting, trimmed of
// surrounding whitespace and handed to a pluggable Parser. A field the parser
// rejects becomes a missing cell; it never aborts the load:
//
//	1, 2.5
//	3,12.3xyz      -> row 1 column 1 is missing
//	4,             -> row 2 column 1 is missing (empty field)
//
// Files may also be Excel workbooks (".xlsx", first sheet) and may carry a
// compression extension (".zst", ".s2", ".lz4", ".gz"), see LoadFile.
//
// # Missing values
//
// A missing cell is NaN. Aggregates (ItemCount, Sum, Mean and their row, column
// and whole-table variants) skip missing cells. Mean over a range without any
// value returns NaN.
//
// # Shape
//
// Rows are stored as loaded and may differ in length. ColumnCount reports the
// length of the first row only; Item on a column that a shorter row lacks returns
// errs.ErrColumnOutOfRange, and aggregates treat such cells as missing.
//
// # Sharing
//
// A Table is a plain mutable value. Shared wraps one so an editor and any number
// of t-test engines observe the same, current content. Nothing in this package
// locks; concurrent mutation and reads need external synchronization.
package table
