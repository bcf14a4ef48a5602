// Package format defines the enumerations describing how a table is stored on disk.
package format

import (
	"path/filepath"
	"strings"
)

type (
	SourceType      uint8
	CompressionType uint8
)

const (
	SourceCSV  SourceType = 0x1 // SourceCSV represents delimiter-separated text.
	SourceXLSX SourceType = 0x2 // SourceXLSX represents an Excel workbook; the first sheet is read.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 frame compression.
	CompressionGzip CompressionType = 0x5 // CompressionGzip represents gzip compression.
)

var compressionExtensions = map[string]CompressionType{
	".zst":  CompressionZstd,
	".zstd": CompressionZstd,
	".s2":   CompressionS2,
	".lz4":  CompressionLZ4,
	".gz":   CompressionGzip,
}

func (s SourceType) String() string {
	switch s {
	case SourceCSV:
		return "CSV"
	case SourceXLSX:
		return "XLSX"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionGzip:
		return "Gzip"
	default:
		return "Unknown"
	}
}

// Extension returns the file extension conventionally used for the compression type,
// or an empty string for CompressionNone and unknown values.
func (c CompressionType) Extension() string {
	switch c {
	case CompressionZstd:
		return ".zst"
	case CompressionS2:
		return ".s2"
	case CompressionLZ4:
		return ".lz4"
	case CompressionGzip:
		return ".gz"
	default:
		return ""
	}
}

// DetectPath inspects a file name and returns how its content is stored.
//
// A compression extension (".zst", ".zstd", ".s2", ".lz4", ".gz") is stripped first;
// the remaining extension selects the source type. ".xlsx" selects SourceXLSX, anything
// else is treated as delimiter-separated text.
//
// Example:
//
//	src, comp := format.DetectPath("scores.csv.zst") // SourceCSV, CompressionZstd
func DetectPath(path string) (SourceType, CompressionType) {
	comp := CompressionNone
	ext := strings.ToLower(filepath.Ext(path))
	if c, ok := compressionExtensions[ext]; ok {
		comp = c
		path = strings.TrimSuffix(path, filepath.Ext(path))
		ext = strings.ToLower(filepath.Ext(path))
	}

	if ext == ".xlsx" {
		return SourceXLSX, comp
	}

	return SourceCSV, comp
}
