package table

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/arloliu/tstat/compress"
	"github.com/arloliu/tstat/format"
)

// Write renders t as delimiter-separated text, one line per row.
//
// Values use the shortest representation that parses back to the same T, and
// missing cells are written as empty fields, so Parse restores the table's shape
// and values. Only the Delimiter setting is used.
func Write[T Value](w io.Writer, t *Table[T], opts ...Option[T]) error {
	cfg, err := newConfig(opts...)
	if err != nil {
		return err
	}

	return writeText(w, t, cfg)
}

// WriteFile stores t at path, choosing source type and compression from the file
// name the same way LoadFile does.
func WriteFile[T Value](path string, t *Table[T], opts ...Option[T]) error {
	cfg, err := newConfig(opts...)
	if err != nil {
		return err
	}
	src, comp := cfg.resolve(path)

	var buf bytes.Buffer
	switch src {
	case format.SourceXLSX:
		err = writeWorkbook(&buf, t, cfg)
	default:
		err = writeText(&buf, t, cfg)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	codec, err := compress.GetCodec(comp)
	if err != nil {
		return err
	}
	data, err := codec.Compress(buf.Bytes())
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	cfg.Logger.Debug("table written", "path", path, "rows", t.RowCount(), "bytes", len(data))

	return nil
}

func writeText[T Value](w io.Writer, t *Table[T], cfg *Config[T]) error {
	bw := bufio.NewWriter(w)
	bits := bitSize[T]()
	var scratch []byte

	for _, row := range t.rows {
		scratch = scratch[:0]
		for c, v := range row {
			if c > 0 {
				scratch = append(scratch, string(cfg.Delimiter)...)
			}
			if !IsMissing(v) {
				scratch = strconv.AppendFloat(scratch, float64(v), 'g', -1, bits)
			}
		}
		scratch = append(scratch, '\n')
		if _, err := bw.Write(scratch); err != nil {
			return err
		}
	}

	return bw.Flush()
}
