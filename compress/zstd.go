package compress

// ZstdCompressor provides Zstandard compression for ".zst" table files.
//
// Builds with cgo use the reference C library through valyala/gozstd; pure Go
// builds use klauspost/compress/zstd. Both produce and accept standard zstd frames,
// so files written by one build are readable by the other and by the zstd CLI.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
