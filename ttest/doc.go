// Package ttest computes Student's t-statistic over the first two columns of a
// table.Table.
//
// An Engine is bound to a table through a table.Shared handle and reads it again
// on every call, so edits made by other holders of the handle are reflected in the
// next result. Two test types are supported:
//
//   - Paired: the columns hold matched observations; the statistic is the sum of
//     the per-row differences over its standard error and keeps its sign.
//   - Unpaired: the columns are independent samples, possibly of different sizes;
//     the statistic is the absolute difference of the means over the combined
//     standard error and is never negative.
//
// Missing cells are excluded from the sample sizes and sums. Empty samples are
// not special-cased: the result is NaN or an infinity as IEEE arithmetic dictates.
//
// # Basic Usage
//
//	data, err := table.LoadFile[float64]("samples.csv")
//	if err != nil {
//	    return err
//	}
//
//	engine, _ := ttest.New[float64](ttest.WithData(data), ttest.WithType[float64](ttest.Unpaired))
//	res, err := engine.Compute()
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("t = %.4f (df = %.2f)\n", res.T, res.DegreesOfFreedom)
package ttest
