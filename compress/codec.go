package compress

import (
	"fmt"

	"github.com/arloliu/tstat/errs"
	"github.com/arloliu/tstat/format"
)

// Compressor compresses a complete table file payload.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// The returned slice is owned by the caller; the input slice is not modified.
	// Empty input yields an empty (nil) output.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor, or by the
// reference command-line tool of the same format.
//
// Error conditions:
//   - Returns error if input data is corrupted or invalid
//   - Returns error if data was compressed with an incompatible algorithm
type Decompressor interface {
	// Decompress decompresses the input data and returns the original content.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
	format.CompressionGzip: NewGzipCompressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, LZ4 or Gzip)
//
// Returns:
//   - Codec: Shared codec instance, safe for concurrent use
//   - error: errs.ErrUnsupportedCompression for unknown types
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}
