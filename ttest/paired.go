package ttest

import (
	"math"

	"github.com/arloliu/tstat/internal/pool"
	"github.com/arloliu/tstat/table"
)

// paired compares the first two columns row by row.
//
// The number of pairs n is the number of values in the first column, and the
// differences of rows 0..n-1 are used. A missing cell in either column makes its
// difference, and thus the statistic, NaN.
//
// With d the differences and d̄ their mean, n·Σd² - (Σd)² is evaluated as
// n·Σ(d - d̄)², which is equal but does not cancel catastrophically.
func paired[T table.Value](t *table.Table[T]) (Result, error) {
	n, err := t.ColumnItemCount(0)
	if err != nil {
		return Result{}, err
	}

	diffs, cleanup := pool.GetFloat64Slice(n)
	defer cleanup()

	sum := 0.0
	for row := range n {
		a, err := t.Item(row, 0)
		if err != nil {
			return Result{}, err
		}
		b, err := t.Item(row, 1)
		if err != nil {
			return Result{}, err
		}
		diffs[row] = float64(a) - float64(b)
		sum += diffs[row]
	}

	fn := float64(n)
	mean := sum / fn
	ss := 0.0
	for _, d := range diffs {
		ss += (d - mean) * (d - mean)
	}

	return Result{
		Type:             Paired,
		T:                sum / math.Sqrt(fn*ss/(fn-1)),
		DegreesOfFreedom: fn - 1,
		N1:               n,
		N2:               n,
	}, nil
}
