package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectPath(t *testing.T) {
	tests := []struct {
		path string
		src  SourceType
		comp CompressionType
	}{
		{path: "data.csv", src: SourceCSV, comp: CompressionNone},
		{path: "data.txt", src: SourceCSV, comp: CompressionNone},
		{path: "data", src: SourceCSV, comp: CompressionNone},
		{path: "/tmp/data.csv.zst", src: SourceCSV, comp: CompressionZstd},
		{path: "data.csv.ZSTD", src: SourceCSV, comp: CompressionZstd},
		{path: "data.csv.s2", src: SourceCSV, comp: CompressionS2},
		{path: "data.csv.lz4", src: SourceCSV, comp: CompressionLZ4},
		{path: "data.csv.gz", src: SourceCSV, comp: CompressionGzip},
		{path: "book.xlsx", src: SourceXLSX, comp: CompressionNone},
		{path: "book.XLSX.gz", src: SourceXLSX, comp: CompressionGzip},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			src, comp := DetectPath(tt.path)
			require.Equal(t, tt.src, src)
			require.Equal(t, tt.comp, comp)
		})
	}
}

func TestStrings(t *testing.T) {
	require.Equal(t, "CSV", SourceCSV.String())
	require.Equal(t, "XLSX", SourceXLSX.String())
	require.Equal(t, "Unknown", SourceType(0).String())

	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Gzip", CompressionGzip.String())
	require.Equal(t, "Unknown", CompressionType(0).String())
}

func TestExtensionRoundTrip(t *testing.T) {
	for _, c := range []CompressionType{CompressionZstd, CompressionS2, CompressionLZ4, CompressionGzip} {
		_, detected := DetectPath("x.csv" + c.Extension())
		require.Equal(t, c, detected, c.String())
	}
	require.Empty(t, CompressionNone.Extension())
}
