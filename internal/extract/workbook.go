package extract

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Workbook is a read-only view over one xlsx file. It never mutates the
// underlying file.
type Workbook struct {
	f *excelize.File
}

func OpenWorkbook(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	return &Workbook{f: f}, nil
}

func (w *Workbook) Close() error {
	return w.f.Close()
}

func (w *Workbook) cell(sheet string, row, col int) (string, error) {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}
	return w.f.GetCellValue(sheet, name)
}

// Matrix reads a matrix band into a [rows][cols] grid of raw cell strings.
func (w *Workbook) Matrix(b Band) ([][]string, error) {
	if b.StartCol < 1 || b.Cols < 1 {
		return nil, fmt.Errorf("band on sheet %q is not a matrix band", b.Sheet)
	}
	grid := make([][]string, b.Rows)
	for r := 0; r < b.Rows; r++ {
		grid[r] = make([]string, b.Cols)
		for c := 0; c < b.Cols; c++ {
			v, err := w.cell(b.Sheet, b.StartRow+r, b.StartCol+c)
			if err != nil {
				return nil, fmt.Errorf("read %s!(%d,%d): %w", b.Sheet, b.StartRow+r, b.StartCol+c, err)
			}
			grid[r][c] = v
		}
	}
	return grid, nil
}

// Records reads a record band into one role→value map per row.
func (w *Workbook) Records(b Band) ([]map[string]string, error) {
	if len(b.Columns) == 0 {
		return nil, fmt.Errorf("band on sheet %q is not a record band", b.Sheet)
	}
	rows := make([]map[string]string, 0, b.Rows)
	for r := 0; r < b.Rows; r++ {
		rec := make(map[string]string, len(b.Columns))
		for role, col := range b.Columns {
			v, err := w.cell(b.Sheet, b.StartRow+r, col)
			if err != nil {
				return nil, fmt.Errorf("read %s!(%d,%d): %w", b.Sheet, b.StartRow+r, col, err)
			}
			rec[role] = v
		}
		rows = append(rows, rec)
	}
	return rows, nil
}
