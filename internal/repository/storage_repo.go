package repository

import (
	"context"
	"regexp"
	"strings"

	"github.com/chobyoungjae/interface/internal/infra"
	"github.com/chobyoungjae/interface/internal/model"

	"github.com/rs/zerolog/log"
)

// Sheet and column names inside the storage spreadsheet.
const (
	memberSheet    = "B시트"  // workers/authors, header on row 4
	categorySheet  = "기초코드" // product → spec info, header on row 2
	serialLotSheet = "시리얼로트" // lot inventory, header on row 2
	packagingSheet = "포장지"  // A1 info banner
	logSheet       = "시트1"  // output log

	colMemberName  = "이름"
	colDepartment  = "부서"
	colItemCode    = "품목코드"
	colItemName    = "품목명"
	colCategory    = "규격정보"
	colSerialLotNo = "시리얼/로트No."
	colStockQty    = "재고수량"

	productionTeam = "생산팀"
)

var updateDateRe = regexp.MustCompile(`(\d{4}/\d{2}/\d{2})`)

// StorageRepository reads the storage spreadsheet's sub-tables and appends
// log rows to its output sheet.
type StorageRepository interface {
	// ReadTeamMembers lists the distinct names of the production team,
	// in sheet order. Serves both the authors and workers dropdowns.
	ReadTeamMembers(ctx context.Context) ([]string, error)

	// ReadSerialLots lists all lot inventory rows; callers filter.
	ReadSerialLots(ctx context.Context) ([]model.SerialLot, error)

	// ReadSerialLotSheetInfo returns the lot sheet's A1 banner and the
	// YYYY/MM/DD date extracted from it.
	ReadSerialLotSheetInfo(ctx context.Context) (*model.SheetInfo, error)

	// ReadCategoryMap maps product codes to their spec info strings.
	ReadCategoryMap(ctx context.Context) (map[string]string, error)

	// ReadPackagingSheetInfo returns the packaging sheet's A1 banner.
	ReadPackagingSheetInfo(ctx context.Context) (string, error)

	// AppendLogRow writes one flattened record to the output sheet.
	// Header mismatch is tolerated: a failed header set is logged and the
	// append proceeds anyway.
	AppendLogRow(ctx context.Context, headers []string, cells []any) error
}

type storageRepo struct {
	src           infra.RowSource
	spreadsheetID string
}

func NewStorageRepository(src infra.RowSource, spreadsheetID string) StorageRepository {
	return &storageRepo{src: src, spreadsheetID: spreadsheetID}
}

func (r *storageRepo) ReadTeamMembers(ctx context.Context) ([]string, error) {
	rows, err := r.src.ReadRows(ctx, r.spreadsheetID, memberSheet, 4)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var names []string
	for _, row := range rows {
		name := row[colMemberName]
		if name == "" || row[colDepartment] != productionTeam {
			continue
		}
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names, nil
}

func (r *storageRepo) ReadSerialLots(ctx context.Context) ([]model.SerialLot, error) {
	rows, err := r.src.ReadRows(ctx, r.spreadsheetID, serialLotSheet, 2)
	if err != nil {
		return nil, err
	}

	lots := make([]model.SerialLot, 0, len(rows))
	for _, row := range rows {
		lots = append(lots, model.SerialLot{
			Code:          strings.TrimSpace(row[colItemCode]),
			ProductName:   row[colItemName],
			SerialLot:     row[colSerialLotNo],
			StockQuantity: row[colStockQty],
		})
	}
	return lots, nil
}

func (r *storageRepo) ReadSerialLotSheetInfo(ctx context.Context) (*model.SheetInfo, error) {
	banner, err := r.src.ReadCell(ctx, r.spreadsheetID, serialLotSheet, 0, 0)
	if err != nil {
		return nil, err
	}
	return &model.SheetInfo{
		CompanyInfo:    banner,
		LastUpdateDate: updateDateRe.FindString(banner),
	}, nil
}

func (r *storageRepo) ReadCategoryMap(ctx context.Context) (map[string]string, error) {
	rows, err := r.src.ReadRows(ctx, r.spreadsheetID, categorySheet, 2)
	if err != nil {
		return nil, err
	}

	categories := make(map[string]string, len(rows))
	for _, row := range rows {
		code, category := row[colItemCode], row[colCategory]
		if code != "" && category != "" {
			categories[code] = category
		}
	}
	return categories, nil
}

func (r *storageRepo) ReadPackagingSheetInfo(ctx context.Context) (string, error) {
	return r.src.ReadCell(ctx, r.spreadsheetID, packagingSheet, 0, 0)
}

func (r *storageRepo) AppendLogRow(ctx context.Context, headers []string, cells []any) error {
	if err := r.src.SetHeaderRow(ctx, r.spreadsheetID, logSheet, headers); err != nil {
		// Partial failure tolerated: the row still lands in column order.
		log.Warn().Err(err).Msg("header row update failed, appending anyway")
	}
	return r.src.AppendRow(ctx, r.spreadsheetID, logSheet, cells)
}
