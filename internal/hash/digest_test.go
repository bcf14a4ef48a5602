package hash

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigest(t *testing.T) {
	build := func(rows [][]float64) uint64 {
		d := NewDigest()
		for _, row := range rows {
			d.WriteInt(len(row))
			for _, v := range row {
				d.WriteFloat(v)
			}
		}

		return d.Sum64()
	}

	t.Run("deterministic", func(t *testing.T) {
		rows := [][]float64{{1, 2}, {3, 4}}
		require.Equal(t, build(rows), build(rows))
	})

	t.Run("shape matters", func(t *testing.T) {
		require.NotEqual(t, build([][]float64{{1, 2}, {3}}), build([][]float64{{1}, {2, 3}}))
	})

	t.Run("values matter", func(t *testing.T) {
		require.NotEqual(t, build([][]float64{{1, 2}}), build([][]float64{{1, 2.0000001}}))
	})

	t.Run("NaN payloads are folded", func(t *testing.T) {
		otherNaN := math.Float64frombits(0x7ff8000000000001)
		require.True(t, math.IsNaN(otherNaN))
		require.Equal(t, build([][]float64{{math.NaN()}}), build([][]float64{{otherNaN}}))
	})

	t.Run("empty", func(t *testing.T) {
		require.Equal(t, uint64(0xef46db3751d8e999), NewDigest().Sum64(), "xxHash64 of no input")
	})
}
