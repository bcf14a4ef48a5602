package table

import (
	"fmt"
	"math"

	"github.com/arloliu/tstat/errs"
)

// Common exponents for Sum and Mean.
const (
	PlainSum       = 1.0  // PlainSum sums the values themselves.
	SumOfSquares   = 2.0  // SumOfSquares sums the squared values.
	ArithmeticMean = 1.0  // ArithmeticMean is the ordinary average.
	QuadraticMean  = 2.0  // QuadraticMean is the root mean square.
	HarmonicMean   = -1.0 // HarmonicMean is the reciprocal of the mean reciprocal.
)

// Range is an inclusive rectangle of cells from (R1, C1) to (R2, C2).
//
// A range whose end precedes its start in either dimension is empty.
type Range struct {
	R1, C1 int
	R2, C2 int
}

// Empty reports whether the range selects no cells.
func (r Range) Empty() bool {
	return r.R2 < r.R1 || r.C2 < r.C1
}

// All returns the range covering every row and the first ColumnCount columns.
func (t *Table[T]) All() Range {
	return Range{R1: 0, C1: 0, R2: t.RowCount() - 1, C2: t.ColumnCount() - 1}
}

func (t *Table[T]) checkRange(r Range) error {
	if r.Empty() {
		return nil
	}
	rows, cols := t.RowCount(), t.ColumnCount()
	if r.R1 < 0 || r.R2 >= rows {
		return fmt.Errorf("%w: rows %d..%d not in [0, %d)", errs.ErrRowOutOfRange, r.R1, r.R2, rows)
	}
	if r.C1 < 0 || r.C2 >= cols {
		return fmt.Errorf("%w: columns %d..%d not in [0, %d)", errs.ErrColumnOutOfRange, r.C1, r.C2, cols)
	}

	return nil
}

func (t *Table[T]) rowRange(row int) (Range, error) {
	if row < 0 || row >= t.RowCount() {
		return Range{}, fmt.Errorf("%w: row %d not in [0, %d)", errs.ErrRowOutOfRange, row, t.RowCount())
	}

	return Range{R1: row, C1: 0, R2: row, C2: t.ColumnCount() - 1}, nil
}

func (t *Table[T]) columnRange(col int) (Range, error) {
	if col < 0 || col >= t.ColumnCount() {
		return Range{}, fmt.Errorf("%w: column %d not in [0, %d)", errs.ErrColumnOutOfRange, col, t.ColumnCount())
	}

	return Range{R1: 0, C1: col, R2: t.RowCount() - 1, C2: col}, nil
}

// each calls fn for every present, non-missing cell in r. r must be valid.
func (t *Table[T]) each(r Range, fn func(v float64)) {
	if r.Empty() {
		return
	}
	for row := r.R1; row <= r.R2; row++ {
		cells := t.rows[row]
		for col := r.C1; col <= r.C2 && col < len(cells); col++ {
			if v := cells[col]; !IsMissing(v) {
				fn(float64(v))
			}
		}
	}
}

// ItemCount returns the number of non-missing cells in r.
func (t *Table[T]) ItemCount(r Range) (int, error) {
	if err := t.checkRange(r); err != nil {
		return 0, err
	}

	n := 0
	t.each(r, func(float64) { n++ })

	return n, nil
}

// TotalItemCount returns the number of non-missing cells in the whole table.
func (t *Table[T]) TotalItemCount() int {
	n, _ := t.ItemCount(t.All())
	return n
}

// RowItemCount returns the number of non-missing cells in one row.
func (t *Table[T]) RowItemCount(row int) (int, error) {
	r, err := t.rowRange(row)
	if err != nil {
		return 0, err
	}

	return t.ItemCount(r)
}

// ColumnItemCount returns the number of non-missing cells in one column.
func (t *Table[T]) ColumnItemCount(col int) (int, error) {
	r, err := t.columnRange(col)
	if err != nil {
		return 0, err
	}

	return t.ItemCount(r)
}

// Sum returns the sum of value^power over the non-missing cells in r.
// An empty selection sums to 0.
//
// Parameters:
//   - r: Inclusive cell range
//   - power: Exponent applied to each value; PlainSum (1) for an ordinary sum
//
// Returns:
//   - T: The sum
//   - error: Range error if a corner of a non-empty r lies outside the table
func (t *Table[T]) Sum(r Range, power float64) (T, error) {
	if err := t.checkRange(r); err != nil {
		return Missing[T](), err
	}

	sum := 0.0
	t.each(r, func(v float64) {
		sum += raise(v, power)
	})

	return T(sum), nil
}

// TotalSum returns Sum over the whole table.
func (t *Table[T]) TotalSum(power float64) T {
	s, _ := t.Sum(t.All(), power)
	return s
}

// RowSum returns Sum over one row.
func (t *Table[T]) RowSum(row int, power float64) (T, error) {
	r, err := t.rowRange(row)
	if err != nil {
		return Missing[T](), err
	}

	return t.Sum(r, power)
}

// ColumnSum returns Sum over one column.
func (t *Table[T]) ColumnSum(col int, power float64) (T, error) {
	r, err := t.columnRange(col)
	if err != nil {
		return Missing[T](), err
	}

	return t.Sum(r, power)
}

// Mean returns the power mean (Σ value^p / n)^(1/p) over the n non-missing cells
// in r. p = 1 is the arithmetic mean, 2 the quadratic mean and -1 the harmonic
// mean; p must not be 0.
//
// A selection without any value yields NaN rather than an error.
func (t *Table[T]) Mean(r Range, meanNumber float64) (T, error) {
	if err := t.checkRange(r); err != nil {
		return Missing[T](), err
	}

	acc, n := 0.0, 0
	t.each(r, func(v float64) {
		acc += raise(v, meanNumber)
		n++
	})

	return T(raise(acc/float64(n), 1/meanNumber)), nil
}

// TotalMean returns Mean over the whole table.
func (t *Table[T]) TotalMean(meanNumber float64) T {
	m, _ := t.Mean(t.All(), meanNumber)
	return m
}

// RowMean returns Mean over one row.
func (t *Table[T]) RowMean(row int, meanNumber float64) (T, error) {
	r, err := t.rowRange(row)
	if err != nil {
		return Missing[T](), err
	}

	return t.Mean(r, meanNumber)
}

// ColumnMean returns Mean over one column.
func (t *Table[T]) ColumnMean(col int, meanNumber float64) (T, error) {
	r, err := t.columnRange(col)
	if err != nil {
		return Missing[T](), err
	}

	return t.Mean(r, meanNumber)
}

func raise(v, power float64) float64 {
	if power == 1 {
		return v
	}

	return math.Pow(v, power)
}
