package ttest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tstat/errs"
)

func TestTestType(t *testing.T) {
	require.Equal(t, "paired", Paired.String())
	require.Equal(t, "unpaired", Unpaired.String())
	require.Equal(t, "TestType(7)", TestType(7).String())

	require.True(t, Paired.Valid())
	require.True(t, Unpaired.Valid())
	require.False(t, TestType(2).Valid())

	var zero TestType
	require.Equal(t, Paired, zero)
}

func TestParseTestType(t *testing.T) {
	tests := []struct {
		in   string
		want TestType
	}{
		{"paired", Paired},
		{"PAIRED", Paired},
		{" Paired\n", Paired},
		{"unpaired", Unpaired},
		{"UnPaired", Unpaired},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTestType(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	for _, in := range []string{"", "pair", "welch", "un-paired"} {
		_, err := ParseTestType(in)
		require.ErrorIs(t, err, errs.ErrUnknownTestType, "input %q", in)
	}
}
