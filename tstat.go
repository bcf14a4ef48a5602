// Package tstat loads numeric tables from delimited text or workbook files and
// computes Student's t-statistic over their first two columns.
//
// # Core Features
//
//   - Tolerant loading: unparsable or empty fields become missing cells (NaN)
//   - Pluggable value parsers (decimal floats, integers in base 2-36, custom)
//   - Range aggregates over non-missing cells: counts, power sums, power means
//   - Paired and unpaired (Welch) t-statistics with degrees of freedom
//   - Optional compression of table files (Zstd, S2, LZ4, Gzip)
//   - XLSX workbook sources and outputs
//
// # Basic Usage
//
//	import "github.com/arloliu/tstat"
//
//	data, err := tstat.LoadFile("samples.csv")
//	if err != nil {
//	    return err
//	}
//
//	res, err := tstat.Unpaired(data)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("t = %.4f\n", res.T)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the table and ttest
// packages for float64 data. For other value types, custom parsers, or engines
// sharing a table with an editor, use those packages directly.
package tstat

import (
	"github.com/arloliu/tstat/table"
	"github.com/arloliu/tstat/ttest"
)

// LoadFile reads a float64 table from path.
//
// The file name selects the decoding: ".xlsx" is read as a workbook, anything
// else as comma-separated text, and a trailing ".zst", ".s2", ".lz4" or ".gz"
// is decompressed first.
//
// Example:
//
//	data, err := tstat.LoadFile("samples.tsv", table.WithDelimiter[float64]('\t'))
func LoadFile(path string, opts ...table.Option[float64]) (*table.Table[float64], error) {
	return table.LoadFile(path, opts...)
}

// Load reads a float64 table from path, returning an empty table if the file
// cannot be used.
func Load(path string, opts ...table.Option[float64]) *table.Table[float64] {
	return table.Load(path, opts...)
}

// Compute runs a t-test of the given type on data.
//
// Parameters:
//   - data: Table whose first two columns are compared
//   - testType: ttest.Paired or ttest.Unpaired
//
// Returns:
//   - ttest.Result: Statistic, degrees of freedom and sample sizes
//   - error: errs.ErrNoData for a nil table, errs.ErrTooFewColumns,
//     errs.ErrUnknownTestType, or a range error from a short row
func Compute(data *table.Table[float64], testType ttest.TestType) (ttest.Result, error) {
	engine, err := ttest.New(ttest.WithType[float64](testType), ttest.WithData(data))
	if err != nil {
		return ttest.Result{}, err
	}

	return engine.Compute()
}

// Paired runs a paired t-test on data.
func Paired(data *table.Table[float64]) (ttest.Result, error) {
	return Compute(data, ttest.Paired)
}

// Unpaired runs an unpaired t-test on data.
func Unpaired(data *table.Table[float64]) (ttest.Result, error) {
	return Compute(data, ttest.Unpaired)
}
