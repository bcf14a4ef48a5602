package table

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/arloliu/tstat/errs"
)

// parseWorkbook reads one sheet of an XLSX workbook. Cells are read as raw
// strings and go through the configured parser, exactly like text fields.
//
// Sheet rows carry no trailing empty cells, and a row without any cell becomes
// a row holding a single missing cell, matching a blank text line.
func parseWorkbook[T Value](r io.Reader, cfg *Config[T]) (*Table[T], error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrSourceUnavailable, err)
	}
	defer f.Close()

	sheet := cfg.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %w", errs.ErrSourceUnavailable, sheet, err)
	}

	t := &Table[T]{rows: make([][]T, 0, len(rows))}
	for i, fields := range rows {
		if len(fields) == 0 {
			fields = []string{""}
		}
		t.rows = append(t.rows, parseFields(fields, i, cfg))
	}

	return t, nil
}

// writeWorkbook renders t as a single-sheet workbook. Missing cells are left blank.
func writeWorkbook[T Value](w io.Writer, t *Table[T], cfg *Config[T]) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if cfg.Sheet != "" && cfg.Sheet != sheet {
		if err := f.SetSheetName(sheet, cfg.Sheet); err != nil {
			return err
		}
		sheet = cfg.Sheet
	}

	bits := bitSize[T]()
	for r, row := range t.rows {
		for c, v := range row {
			if IsMissing(v) {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellFloat(sheet, cell, float64(v), -1, bits); err != nil {
				return err
			}
		}
	}

	_, err := f.WriteTo(w)

	return err
}
