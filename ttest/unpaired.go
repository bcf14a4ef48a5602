package ttest

import (
	"errors"
	"math"

	"github.com/arloliu/tstat/errs"
	"github.com/arloliu/tstat/table"
)

// unpaired compares the first two columns as independent samples.
//
// Each sample's variance is its sum of squared deviations divided by its size,
// and the statistic is |m1 - m2| / sqrt(v1/(n1-1) + v2/(n2-1)). Cells absent
// from short rows count as missing.
func unpaired[T table.Value](t *table.Table[T]) (Result, error) {
	var (
		n    [2]int
		mean [2]float64
		acc  [2]float64
	)

	for col := range 2 {
		count, err := t.ColumnItemCount(col)
		if err != nil {
			return Result{}, err
		}
		sum, err := t.ColumnSum(col, table.PlainSum)
		if err != nil {
			return Result{}, err
		}
		n[col] = count
		mean[col] = float64(sum) / float64(count)
	}

	for row := range t.RowCount() {
		for col := range 2 {
			v, err := t.Item(row, col)
			if errors.Is(err, errs.ErrColumnOutOfRange) {
				continue
			}
			if err != nil {
				return Result{}, err
			}
			if table.IsMissing(v) {
				continue
			}
			dev := float64(v) - mean[col]
			acc[col] += dev * dev
		}
	}

	n1, n2 := float64(n[0]), float64(n[1])
	a := acc[0] / n1 / (n1 - 1)
	b := acc[1] / n2 / (n2 - 1)

	return Result{
		Type:             Unpaired,
		T:                math.Abs(mean[0]-mean[1]) / math.Sqrt(a+b),
		DegreesOfFreedom: (a + b) * (a + b) / (a*a/(n1-1) + b*b/(n2-1)),
		N1:               n[0],
		N2:               n[1],
	}, nil
}
