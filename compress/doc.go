// Package compress provides the codecs used to read and write compressed table files.
//
// A table file may carry a compression extension on top of its source extension,
// for example "scores.csv.zst". The table package strips the extension, picks the
// codec with GetCodec and decompresses the whole file before parsing; writing does
// the reverse.
//
// Supported algorithms:
//   - None (format.CompressionNone): payload passes through unchanged
//   - Zstd (format.CompressionZstd): standard zstd frames; cgo builds use the C library
//   - S2 (format.CompressionS2): S2 stream format
//   - LZ4 (format.CompressionLZ4): LZ4 frame format
//   - Gzip (format.CompressionGzip): RFC 1952 members
//
// Every codec returned by GetCodec is stateless and safe for concurrent use.
//
// Example:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	raw, err := codec.Decompress(fileBytes)
package compress
