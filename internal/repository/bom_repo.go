package repository

import (
	"context"

	"github.com/chobyoungjae/interface/internal/infra"
	"github.com/chobyoungjae/interface/internal/model"
	"github.com/chobyoungjae/interface/internal/sheetfmt"

	"github.com/rs/zerolog/log"
)

// Sheet and column names inside the BOM spreadsheet.
const (
	bomSheet      = "시트1"   // raw BOM rows, header on row 1
	catalogSheet  = "시트2"   // product/consumable catalog for the defect app
	passwordSheet = "비밀번호" // stored password in A1

	colProducingCode = "생산품목코드"
	colProducingName = "생산품목명"
	colBaseQuantity  = "생산수량"
	colConsumedCode  = "소모품목코드"
	colConsumedName  = "소모품목명"
	colConsumedQty   = "소모수량"
)

// defaultPassword is served when the password sheet is missing or unreadable,
// mirroring the source system's fallback.
const defaultPassword = "bom2024!"

// BOMRepository reads reference data out of the BOM spreadsheet.
// Services depend on this interface, not on the row source, enabling clean
// unit testing via stubs.
type BOMRepository interface {
	ReadBOMRows(ctx context.Context) ([]model.RawBOMRow, error)
	ReadCatalogRows(ctx context.Context) ([]CatalogRow, error)
	ReadPassword(ctx context.Context) string
}

// CatalogRow is one producing-item/consumable pair of the catalog sheet.
type CatalogRow struct {
	ProductCode  string
	ProductName  string
	ConsumedCode string
	ConsumedName string
}

type bomRepo struct {
	src           infra.RowSource
	spreadsheetID string
}

func NewBOMRepository(src infra.RowSource, spreadsheetID string) BOMRepository {
	return &bomRepo{src: src, spreadsheetID: spreadsheetID}
}

func (r *bomRepo) ReadBOMRows(ctx context.Context) ([]model.RawBOMRow, error) {
	rows, err := r.src.ReadRows(ctx, r.spreadsheetID, bomSheet, 1)
	if err != nil {
		return nil, err
	}

	out := make([]model.RawBOMRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.RawBOMRow{
			ProducingCode: row[colProducingCode],
			ProducingName: row[colProducingName],
			BaseQuantity:  sheetfmt.ParseNumber(row[colBaseQuantity]),
			ConsumedCode:  row[colConsumedCode],
			ConsumedName:  row[colConsumedName],
			ConsumedQty:   sheetfmt.ParseNumber(row[colConsumedQty]),
		})
	}
	return out, nil
}

func (r *bomRepo) ReadCatalogRows(ctx context.Context) ([]CatalogRow, error) {
	rows, err := r.src.ReadRows(ctx, r.spreadsheetID, catalogSheet, 1)
	if err != nil {
		return nil, err
	}

	out := make([]CatalogRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, CatalogRow{
			ProductCode:  row[colProducingCode],
			ProductName:  row[colProducingName],
			ConsumedCode: row[colConsumedCode],
			ConsumedName: row[colConsumedName],
		})
	}
	return out, nil
}

// ReadPassword returns the stored password from the password sheet's A1 cell,
// falling back to the built-in default when the sheet is unreadable.
func (r *bomRepo) ReadPassword(ctx context.Context) string {
	v, err := r.src.ReadCell(ctx, r.spreadsheetID, passwordSheet, 0, 0)
	if err != nil {
		log.Warn().Err(err).Msg("password sheet unreadable, using default")
		return defaultPassword
	}
	if v == "" {
		return defaultPassword
	}
	return v
}
