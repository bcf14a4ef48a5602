package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/arloliu/tstat/table"
	"github.com/arloliu/tstat/ttest"
)

// renderTable writes the first ColumnCount cells of every row, right-aligned
// with two spaces between columns. Missing cells and cells absent from short
// rows are left blank.
func renderTable(w io.Writer, data *table.Table[float64], precision int) {
	rows, cols := data.RowCount(), data.ColumnCount()
	cells := make([][]string, rows)
	width := 0

	for r := range rows {
		cells[r] = make([]string, cols)
		for c := range cols {
			v, err := data.Item(r, c)
			if err != nil || table.IsMissing(v) {
				continue
			}
			s := strconv.FormatFloat(v, 'f', precision, 64)
			cells[r][c] = s
			width = max(width, len(s))
		}
	}

	for _, row := range cells {
		for c, s := range row {
			if c > 0 {
				io.WriteString(w, "  ")
			}
			fmt.Fprintf(w, "%*s", width, s)
		}
		io.WriteString(w, "\n")
	}
}

// renderSummary writes per-column descriptive statistics for the columns
// under test.
func renderSummary(w io.Writer, data *table.Table[float64], precision int) {
	for col := range min(2, data.ColumnCount()) {
		n, _ := data.ColumnItemCount(col)
		sum, _ := data.ColumnSum(col, table.PlainSum)
		mean, _ := data.ColumnMean(col, table.ArithmeticMean)
		fmt.Fprintf(w, "column %d: n = %d, sum = %.*f, mean = %.*f\n", col, n, precision, sum, precision, mean)
	}
}

func renderResult(w io.Writer, res ttest.Result, verbose bool, fingerprint uint64) {
	fmt.Fprintf(w, "t = %.6f\n", res.T)
	if !verbose {
		return
	}

	fmt.Fprintf(w, "test = %s\n", res.Type)
	fmt.Fprintf(w, "df = %.6f\n", res.DegreesOfFreedom)
	fmt.Fprintf(w, "fingerprint = %016x\n", fingerprint)
}
