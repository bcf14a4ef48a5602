package table

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arloliu/tstat/compress"
	"github.com/arloliu/tstat/errs"
	"github.com/arloliu/tstat/format"
)

// Parse reads delimiter-separated text from r.
//
// Each line becomes one row; a trailing newline does not add a row, but a blank
// line inside the input becomes a row holding a single missing cell. Fields that
// fail to parse become missing cells. Parse fails only on invalid options or on a
// read error from r.
//
// Example:
//
//	t, err := table.Parse[float64](strings.NewReader("1,2\n3,4\n"))
func Parse[T Value](r io.Reader, opts ...Option[T]) (*Table[T], error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return parseText(r, cfg)
}

// LoadFile reads the table stored at path.
//
// The file name selects how the content is decoded: a trailing ".zst", ".zstd",
// ".s2", ".lz4" or ".gz" is decompressed first, then ".xlsx" is read as a workbook
// and anything else as delimiter-separated text. WithSource and WithCompression
// override the detection.
//
// Unlike Load, LoadFile reports why a file could not be used.
//
// Returns:
//   - *Table[T]: The loaded table, possibly empty if the file has no lines
//   - error: Option error, or errs.ErrSourceUnavailable wrapping the I/O or decode failure
func LoadFile[T Value](path string, opts ...Option[T]) (*Table[T], error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return loadFile(path, cfg)
}

// Load reads the table stored at path like LoadFile but never fails: a missing,
// unreadable or undecodable file, and invalid options, yield an empty table.
// Callers detect that case with IsEmpty.
func Load[T Value](path string, opts ...Option[T]) *Table[T] {
	cfg, err := newConfig(opts...)
	if err != nil {
		return &Table[T]{}
	}

	t, err := loadFile(path, cfg)
	if err != nil {
		cfg.Logger.Warn("table load failed", "path", path, "error", err)
		return &Table[T]{}
	}

	return t
}

func loadFile[T Value](path string, cfg *Config[T]) (*Table[T], error) {
	src, comp := cfg.resolve(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrSourceUnavailable, err)
	}

	codec, err := compress.GetCodec(comp)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errs.ErrSourceUnavailable, path, err)
	}
	data, err = codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errs.ErrSourceUnavailable, path, err)
	}

	var t *Table[T]
	switch src {
	case format.SourceXLSX:
		t, err = parseWorkbook(bytes.NewReader(data), cfg)
	default:
		t, err = parseText(bytes.NewReader(data), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	cfg.Logger.Debug("table loaded",
		"path", path,
		"source", src.String(),
		"compression", comp.String(),
		"rows", t.RowCount(),
		"columns", t.ColumnCount(),
	)

	return t, nil
}

func parseText[T Value](r io.Reader, cfg *Config[T]) (*Table[T], error) {
	br := bufio.NewReader(r)
	t := &Table[T]{}
	delim := string(cfg.Delimiter)

	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: line %d: %w", errs.ErrSourceUnavailable, t.RowCount()+1, err)
		}
		if line == "" && err != nil {
			break
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		t.rows = append(t.rows, parseFields(strings.Split(line, delim), t.RowCount(), cfg))

		if err != nil {
			break
		}
	}

	return t, nil
}

// parseFields converts the raw fields of one row. row is used for logging only.
func parseFields[T Value](fields []string, row int, cfg *Config[T]) []T {
	cells := make([]T, len(fields))
	for col, field := range fields {
		v, err := cfg.Parser.Parse(strings.Trim(field, cfg.TrimSet))
		if err != nil {
			cfg.Logger.Debug("unparsable cell", "row", row, "column", col, "error", err)
			v = Missing[T]()
		}
		cells[col] = v
	}

	return cells
}
