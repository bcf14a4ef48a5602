package table

import (
	"fmt"
	"slices"

	"github.com/arloliu/tstat/errs"
	"github.com/arloliu/tstat/internal/hash"
)

// Table is an in-memory grid of numeric cells, some of which may be missing.
//
// Row and column indices are zero-based. The zero value is an empty table ready
// to use.
type Table[T Value] struct {
	rows [][]T
}

// New creates a table from rows. The slices are adopted, not copied, so later
// changes through rows are visible in the table.
func New[T Value](rows [][]T) *Table[T] {
	return &Table[T]{rows: rows}
}

// RowCount returns the number of rows.
func (t *Table[T]) RowCount() int {
	return len(t.rows)
}

// ColumnCount returns the number of cells in the first row, or 0 for an empty table.
//
// Later rows are assumed to be as wide as the first one; they are not inspected.
func (t *Table[T]) ColumnCount() int {
	if len(t.rows) == 0 {
		return 0
	}

	return len(t.rows[0])
}

// IsEmpty reports whether the table has no rows.
//
// A table loaded from a file that does not exist, cannot be read, or contains no
// lines is empty.
func (t *Table[T]) IsEmpty() bool {
	return len(t.rows) == 0
}

func (t *Table[T]) checkCell(row, col int) error {
	if row < 0 || row >= len(t.rows) {
		return fmt.Errorf("%w: row %d not in [0, %d)", errs.ErrRowOutOfRange, row, len(t.rows))
	}
	if cols := t.ColumnCount(); col < 0 || col >= cols {
		return fmt.Errorf("%w: column %d not in [0, %d)", errs.ErrColumnOutOfRange, col, cols)
	}
	if col >= len(t.rows[row]) {
		return fmt.Errorf("%w: column %d, row %d has %d cells", errs.ErrColumnOutOfRange, col, row, len(t.rows[row]))
	}

	return nil
}

// Item returns the cell at (row, col). A missing cell is returned as NaN.
//
// Returns:
//   - T: Cell value, NaN if missing
//   - error: errs.ErrRowOutOfRange or errs.ErrColumnOutOfRange when the cell does not exist
func (t *Table[T]) Item(row, col int) (T, error) {
	if err := t.checkCell(row, col); err != nil {
		return Missing[T](), err
	}

	return t.rows[row][col], nil
}

// Set replaces the cell at (row, col). Pass Missing[T]() to clear a cell.
// The same bounds as Item apply.
func (t *Table[T]) Set(row, col int, v T) error {
	if err := t.checkCell(row, col); err != nil {
		return err
	}
	t.rows[row][col] = v

	return nil
}

// AppendRow adds a row holding a copy of values.
func (t *Table[T]) AppendRow(values ...T) {
	t.rows = append(t.rows, slices.Clone(values))
}

// Row returns a copy of the cells of one row, which may be shorter or longer than
// ColumnCount.
func (t *Table[T]) Row(row int) ([]T, error) {
	if row < 0 || row >= len(t.rows) {
		return nil, fmt.Errorf("%w: row %d not in [0, %d)", errs.ErrRowOutOfRange, row, len(t.rows))
	}

	return slices.Clone(t.rows[row]), nil
}

// Clone returns a deep copy of the table.
func (t *Table[T]) Clone() *Table[T] {
	rows := make([][]T, len(t.rows))
	for i, row := range t.rows {
		rows[i] = slices.Clone(row)
	}

	return &Table[T]{rows: rows}
}

// Fingerprint returns an xxHash64 digest of the table's shape and cell bits.
//
// Two tables with the same row lengths and bit-identical cells share a
// fingerprint; all missing cells hash alike.
func (t *Table[T]) Fingerprint() uint64 {
	d := hash.NewDigest()
	d.WriteInt(len(t.rows))
	for _, row := range t.rows {
		d.WriteInt(len(row))
		for _, v := range row {
			d.WriteFloat(float64(v))
		}
	}

	return d.Sum64()
}
