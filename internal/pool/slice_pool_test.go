package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetFloat64Slice(t *testing.T) {
	t.Run("returns slice with correct size", func(t *testing.T) {
		slice, cleanup := GetFloat64Slice(100)
		defer cleanup()

		require.Len(t, slice, 100)
		require.GreaterOrEqual(t, cap(slice), 100)
	})

	t.Run("grows when capacity insufficient", func(t *testing.T) {
		_, cleanup1 := GetFloat64Slice(4)
		cleanup1()

		slice, cleanup2 := GetFloat64Slice(1000)
		defer cleanup2()

		require.Len(t, slice, 1000)
	})

	t.Run("zero size", func(t *testing.T) {
		slice, cleanup := GetFloat64Slice(0)
		defer cleanup()

		require.Empty(t, slice)
	})

	t.Run("slice is writable", func(t *testing.T) {
		slice, cleanup := GetFloat64Slice(3)
		defer cleanup()

		for i := range slice {
			slice[i] = float64(i)
		}
		require.Equal(t, []float64{0, 1, 2}, slice)
	})
}
