package ttest

// Result is the outcome of a t-test.
type Result struct {
	// Type is the test that produced the result.
	Type TestType
	// T is the t-statistic. Paired results keep their sign; unpaired results are
	// never negative.
	T float64
	// DegreesOfFreedom is n-1 for a paired test and the Welch-Satterthwaite
	// approximation for an unpaired test.
	DegreesOfFreedom float64
	// N1 and N2 are the number of observations in the first and second column.
	// A paired test reports the number of pairs in both.
	N1, N2 int
}
