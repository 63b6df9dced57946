package infra

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/xuri/excelize/v2"
)

// LocalWorkbook implements RowSource over one .xlsx file on disk. It backs
// STORE_MODE=local for development and tests, and serves as the append
// fallback target when the live store is unreachable. All logical
// spreadsheets share the single workbook, so the spreadsheetID argument is
// ignored; sheets keep the same names the live store uses.
type LocalWorkbook struct {
	path string
	mu   sync.Mutex
}

func NewLocalWorkbook(path string) *LocalWorkbook {
	return &LocalWorkbook{path: path}
}

func (w *LocalWorkbook) ReadRows(_ context.Context, _ string, sheet string, headerRow int) ([]Row, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, fmt.Errorf("localbook: open %s: %w", w.path, err)
	}
	defer f.Close()

	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("localbook: sheet %s: %w", sheet, err)
	}
	if headerRow < 1 || len(raw) < headerRow {
		return nil, nil
	}

	headers := raw[headerRow-1]
	rows := make([]Row, 0, len(raw)-headerRow)
	for _, cells := range raw[headerRow:] {
		row := make(Row, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(cells) {
				row[h] = cells[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (w *LocalWorkbook) ReadCell(_ context.Context, _ string, sheet string, rowIdx, colIdx int) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return "", fmt.Errorf("localbook: open %s: %w", w.path, err)
	}
	defer f.Close()

	cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
	if err != nil {
		return "", err
	}
	v, err := f.GetCellValue(sheet, cell)
	if err != nil {
		return "", fmt.Errorf("localbook: sheet %s: %w", sheet, err)
	}
	return v, nil
}

func (w *LocalWorkbook) AppendRow(_ context.Context, _ string, sheet string, cells []any) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, created, err := w.openOrCreate()
	if err != nil {
		return err
	}
	defer f.Close()

	if !w.hasSheet(f, sheet) {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("localbook: create sheet %s: %w", sheet, err)
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("localbook: sheet %s: %w", sheet, err)
	}
	if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", len(rows)+1), &cells); err != nil {
		return fmt.Errorf("localbook: write row: %w", err)
	}

	return w.save(f, created)
}

func (w *LocalWorkbook) SetHeaderRow(_ context.Context, _ string, sheet string, headers []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, created, err := w.openOrCreate()
	if err != nil {
		return err
	}
	defer f.Close()

	if !w.hasSheet(f, sheet) {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("localbook: create sheet %s: %w", sheet, err)
		}
	}

	// A single workbook file backs every spreadsheet role in local mode, so
	// sheet names can collide across roles. Only write the header when row 1
	// is empty or already starts with the same column, which still lets the
	// dynamic material columns extend on later saves.
	first, err := f.GetCellValue(sheet, "A1")
	if err != nil {
		return fmt.Errorf("localbook: sheet %s: %w", sheet, err)
	}
	if first != "" && len(headers) > 0 && first != headers[0] {
		return fmt.Errorf("localbook: sheet %s already has an unrelated header", sheet)
	}

	cells := make([]any, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &cells); err != nil {
		return fmt.Errorf("localbook: write header: %w", err)
	}

	return w.save(f, created)
}

func (w *LocalWorkbook) openOrCreate() (*excelize.File, bool, error) {
	if _, err := os.Stat(w.path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
			return nil, false, fmt.Errorf("localbook: mkdir: %w", err)
		}
		return excelize.NewFile(), true, nil
	}
	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, false, fmt.Errorf("localbook: open %s: %w", w.path, err)
	}
	return f, false, nil
}

func (w *LocalWorkbook) hasSheet(f *excelize.File, sheet string) bool {
	for _, name := range f.GetSheetList() {
		if name == sheet {
			return true
		}
	}
	return false
}

func (w *LocalWorkbook) save(f *excelize.File, created bool) error {
	if created {
		if err := f.SaveAs(w.path); err != nil {
			return fmt.Errorf("localbook: save %s: %w", w.path, err)
		}
		return nil
	}
	if err := f.Save(); err != nil {
		return fmt.Errorf("localbook: save %s: %w", w.path, err)
	}
	return nil
}
