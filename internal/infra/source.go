package infra

import "context"

// Row is one sheet row keyed by header name. Cells are kept as the formatted
// strings the store returns; numeric interpretation happens in sheetfmt.
type Row map[string]string

// RowSource is the contract every reference-data backend implements.
// Two implementations exist: the Google Sheets REST client (production) and
// the excelize-backed local workbook (development, tests, append fallback).
type RowSource interface {
	// ReadRows returns all data rows of a sheet. headerRow is 1-based; rows
	// above it are ignored and the header row itself names the columns.
	ReadRows(ctx context.Context, spreadsheetID, sheet string, headerRow int) ([]Row, error)

	// ReadCell returns a single cell by 0-based row/column indexes.
	ReadCell(ctx context.Context, spreadsheetID, sheet string, rowIdx, colIdx int) (string, error)

	// AppendRow appends one row of cells after the last data row.
	AppendRow(ctx context.Context, spreadsheetID, sheet string, cells []any) error

	// SetHeaderRow overwrites the first row with the given headers.
	SetHeaderRow(ctx context.Context, spreadsheetID, sheet string, headers []string) error
}
