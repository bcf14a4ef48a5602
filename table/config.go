package table

import (
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/arloliu/tstat/compress"
	"github.com/arloliu/tstat/errs"
	"github.com/arloliu/tstat/format"
	"github.com/arloliu/tstat/internal/options"
)

// DefaultTrimSet is the set of characters stripped from both ends of every field.
const DefaultTrimSet = " \t\r\n\v\f"

// Config holds the settings used to read and write tables.
type Config[T Value] struct {
	// Delimiter separates fields on a line. Defaults to ','.
	Delimiter rune
	// TrimSet is stripped from both ends of a field before parsing.
	TrimSet string
	// Parser converts trimmed fields to values. Defaults to FloatParser.
	Parser Parser[T]
	// Source overrides the source type detected from the file name when non-zero.
	Source format.SourceType
	// Compression overrides the compression detected from the file name when non-zero.
	Compression format.CompressionType
	// Sheet selects the workbook sheet for XLSX sources. Empty selects the first sheet.
	Sheet string
	// Logger receives per-cell parse failures (debug) and load failures (warn).
	Logger *slog.Logger
}

// Option is a functional option for Config.
type Option[T Value] = options.Option[*Config[T]]

func newConfig[T Value](opts ...Option[T]) (*Config[T], error) {
	cfg := &Config[T]{
		Delimiter: ',',
		TrimSet:   DefaultTrimSet,
		Parser:    FloatParser[T](),
		Logger:    slog.New(slog.DiscardHandler),
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithDelimiter sets the field delimiter. Line terminators and invalid runes are rejected.
func WithDelimiter[T Value](d rune) Option[T] {
	return options.New(func(cfg *Config[T]) error {
		if d == '\n' || d == '\r' || d == utf8.RuneError || !utf8.ValidRune(d) {
			return fmt.Errorf("%w: %q", errs.ErrInvalidDelimiter, d)
		}
		cfg.Delimiter = d

		return nil
	})
}

// WithTrimSet sets the characters stripped from both ends of each field.
// An empty set disables trimming in the loader; the default parsers still ignore
// surrounding whitespace.
func WithTrimSet[T Value](cutset string) Option[T] {
	return options.NoError(func(cfg *Config[T]) {
		cfg.TrimSet = cutset
	})
}

// WithParser sets the value parser.
func WithParser[T Value](p Parser[T]) Option[T] {
	return options.New(func(cfg *Config[T]) error {
		if p == nil {
			return errs.ErrNilParser
		}
		cfg.Parser = p

		return nil
	})
}

// WithSource forces the source type instead of detecting it from the file name.
func WithSource[T Value](src format.SourceType) Option[T] {
	return options.New(func(cfg *Config[T]) error {
		if src != format.SourceCSV && src != format.SourceXLSX {
			return fmt.Errorf("%w: %s", errs.ErrUnsupportedSource, src)
		}
		cfg.Source = src

		return nil
	})
}

// WithCompression forces the compression type instead of detecting it from the file name.
func WithCompression[T Value](comp format.CompressionType) Option[T] {
	return options.New(func(cfg *Config[T]) error {
		if _, err := compress.GetCodec(comp); err != nil {
			return err
		}
		cfg.Compression = comp

		return nil
	})
}

// WithSheet selects the sheet read from, or written to, an XLSX workbook.
func WithSheet[T Value](name string) Option[T] {
	return options.NoError(func(cfg *Config[T]) {
		cfg.Sheet = name
	})
}

// WithLogger sets the logger. A nil logger discards everything, which is also the default.
func WithLogger[T Value](logger *slog.Logger) Option[T] {
	return options.NoError(func(cfg *Config[T]) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		cfg.Logger = logger
	})
}

// resolve returns the source and compression for path, honoring overrides.
func (cfg *Config[T]) resolve(path string) (format.SourceType, format.CompressionType) {
	src, comp := format.DetectPath(path)
	if cfg.Source != 0 {
		src = cfg.Source
	}
	if cfg.Compression != 0 {
		comp = cfg.Compression
	}

	return src, comp
}
