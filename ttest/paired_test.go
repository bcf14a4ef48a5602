package ttest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tstat/errs"
	"github.com/arloliu/tstat/table"
)

// naivePaired is the textbook paired statistic: mean difference over its
// standard error.
func naivePaired(diffs []float64) float64 {
	n := float64(len(diffs))
	mean := 0.0
	for _, d := range diffs {
		mean += d
	}
	mean /= n

	ss := 0.0
	for _, d := range diffs {
		ss += (d - mean) * (d - mean)
	}
	sd := math.Sqrt(ss / (n - 1))

	return mean / (sd / math.Sqrt(n))
}

func newPaired(t *testing.T, rows [][]float64) *Engine[float64] {
	t.Helper()
	e, err := New(WithType[float64](Paired), WithData(table.New(rows)))
	require.NoError(t, err)

	return e
}

func TestPaired(t *testing.T) {
	e := newPaired(t, [][]float64{{1, 2}, {2, 3}, {3, 5}})

	res, err := e.Compute()
	require.NoError(t, err)
	require.Equal(t, Paired, res.Type)
	require.InDelta(t, -4, res.T, delta)
	require.InDelta(t, 2, res.DegreesOfFreedom, delta)
	require.Equal(t, 3, res.N1)
	require.Equal(t, 3, res.N2)

	v, err := e.T()
	require.NoError(t, err)
	require.Equal(t, res.T, v)
}

func TestPairedSignIsKept(t *testing.T) {
	e := newPaired(t, [][]float64{{2, 1}, {3, 2}, {5, 3}})

	v, err := e.T()
	require.NoError(t, err)
	require.InDelta(t, 4, v, delta)
}

func TestPairedMatchesReference(t *testing.T) {
	rows := [][]float64{
		{12, 14}, {12, 14}, {12, 14}, {15, 14}, {13, 16}, {12, 15},
		{13, 18}, {14, 17}, {15, 14}, {15, 13}, {14, 15}, {13, 14},
	}
	diffs := make([]float64, len(rows))
	for i, r := range rows {
		diffs[i] = r[0] - r[1]
	}

	v, err := newPaired(t, rows).T()
	require.NoError(t, err)
	require.InDelta(t, naivePaired(diffs), v, delta)
}

func TestPairedLargeOffset(t *testing.T) {
	// Differences around a large common offset must not lose precision.
	rows := [][]float64{{1e9 + 1, 0}, {1e9 + 2, 0}, {1e9 + 4, 0}}

	v, err := newPaired(t, rows).T()
	require.NoError(t, err)
	require.InEpsilon(t, naivePaired([]float64{1e9 + 1, 1e9 + 2, 1e9 + 4}), v, 1e-9)
}

func TestPairedDegenerate(t *testing.T) {
	t.Run("single pair", func(t *testing.T) {
		res, err := newPaired(t, [][]float64{{1, 3}}).Compute()
		require.NoError(t, err)
		require.True(t, math.IsNaN(res.T))
		require.Zero(t, res.DegreesOfFreedom)
	})

	t.Run("first column all missing", func(t *testing.T) {
		v, err := newPaired(t, [][]float64{{nan, 1}, {nan, 2}}).T()
		require.NoError(t, err)
		require.True(t, math.IsNaN(v))
	})

	t.Run("missing second cell", func(t *testing.T) {
		v, err := newPaired(t, [][]float64{{1, 2}, {2, nan}, {3, 5}}).T()
		require.NoError(t, err)
		require.True(t, math.IsNaN(v))
	})
}

func TestPairedShortRow(t *testing.T) {
	_, err := newPaired(t, [][]float64{{1, 2}, {2}, {3, 5}}).T()
	require.ErrorIs(t, err, errs.ErrColumnOutOfRange)
}

func TestPairedFloat32(t *testing.T) {
	e, err := New(WithData(table.New([][]float32{{1, 2}, {2, 3}, {3, 5}})))
	require.NoError(t, err)

	v, err := e.T()
	require.NoError(t, err)
	require.InDelta(t, -4, v, delta)
}
