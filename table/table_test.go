package table

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tstat/errs"
)

var nan = math.NaN()

func TestShape(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var tbl Table[float64]
		require.True(t, tbl.IsEmpty())
		require.Zero(t, tbl.RowCount())
		require.Zero(t, tbl.ColumnCount())
	})

	t.Run("column count comes from the first row", func(t *testing.T) {
		tbl := New([][]float64{{1, 2}, {3}, {4, 5, 6}})
		require.False(t, tbl.IsEmpty())
		require.Equal(t, 3, tbl.RowCount())
		require.Equal(t, 2, tbl.ColumnCount())
	})
}

func TestItem(t *testing.T) {
	tbl := New([][]float64{{1, 2}, {3, nan}, {5}})

	v, err := tbl.Item(0, 1)
	require.NoError(t, err)
	require.Equal(t, 2.0, v)

	v, err = tbl.Item(1, 1)
	require.NoError(t, err)
	require.True(t, IsMissing(v))

	t.Run("out of range", func(t *testing.T) {
		_, err := tbl.Item(tbl.RowCount(), 0)
		require.ErrorIs(t, err, errs.ErrRowOutOfRange)

		_, err = tbl.Item(-1, 0)
		require.ErrorIs(t, err, errs.ErrRowOutOfRange)

		_, err = tbl.Item(0, tbl.ColumnCount())
		require.ErrorIs(t, err, errs.ErrColumnOutOfRange)

		_, err = tbl.Item(0, -1)
		require.ErrorIs(t, err, errs.ErrColumnOutOfRange)
	})

	t.Run("short row", func(t *testing.T) {
		_, err := tbl.Item(2, 1)
		require.ErrorIs(t, err, errs.ErrColumnOutOfRange)
	})

	t.Run("long row beyond column count", func(t *testing.T) {
		wide := New([][]float64{{1}, {2, 3}})
		_, err := wide.Item(1, 1)
		require.ErrorIs(t, err, errs.ErrColumnOutOfRange)
	})
}

func TestSetAndAppend(t *testing.T) {
	tbl := New([][]float64{{1, 2}})

	require.NoError(t, tbl.Set(0, 1, 7))
	v, err := tbl.Item(0, 1)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)

	require.ErrorIs(t, tbl.Set(1, 0, 1), errs.ErrRowOutOfRange)
	require.ErrorIs(t, tbl.Set(0, 2, 1), errs.ErrColumnOutOfRange)

	values := []float64{3, 4}
	tbl.AppendRow(values...)
	values[0] = 100
	v, err = tbl.Item(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v, "AppendRow must copy its input")
}

func TestRow(t *testing.T) {
	tbl := New([][]float64{{1, 2}, {3}})

	row, err := tbl.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3}, row)

	row[0] = 9
	v, _ := tbl.Item(1, 0)
	require.Equal(t, 3.0, v)

	_, err = tbl.Row(2)
	require.ErrorIs(t, err, errs.ErrRowOutOfRange)
}

func TestNewAdoptsRows(t *testing.T) {
	rows := [][]float64{{1, 2}}
	tbl := New(rows)
	rows[0][0] = 10

	v, _ := tbl.Item(0, 0)
	require.Equal(t, 10.0, v)
}

func TestClone(t *testing.T) {
	tbl := New([][]float64{{1, 2}, {3, nan}})
	clone := tbl.Clone()

	require.Equal(t, tbl.Fingerprint(), clone.Fingerprint())

	require.NoError(t, clone.Set(0, 0, 42))
	v, _ := tbl.Item(0, 0)
	require.Equal(t, 1.0, v)
	require.NotEqual(t, tbl.Fingerprint(), clone.Fingerprint())
}

func TestFingerprint(t *testing.T) {
	a := New([][]float64{{1, 2}, {3, nan}})
	b := New([][]float64{{1, 2}, {3, math.Float64frombits(0x7ff8000000000002)}})
	require.Equal(t, a.Fingerprint(), b.Fingerprint(), "all missing cells hash alike")

	c := New([][]float64{{1, 2, 3}, {nan}})
	require.NotEqual(t, a.Fingerprint(), c.Fingerprint())

	var empty Table[float64]
	require.Equal(t, empty.Fingerprint(), New[float64](nil).Fingerprint())
}
