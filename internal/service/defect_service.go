package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/chobyoungjae/interface/internal/dto"
	"github.com/chobyoungjae/interface/internal/model"
	"github.com/chobyoungjae/interface/internal/repository"
	"github.com/chobyoungjae/interface/internal/sheetfmt"

	"github.com/rs/zerolog/log"
)

// Consumable code patterns: 6xxxxx is a packaging bag, 7xxxxx a box.
var (
	packagingCodeRe = regexp.MustCompile(`^6\d{5}$`)
	boxCodeRe       = regexp.MustCompile(`^7\d{5}$`)
)

// Header names of the defect log. Two loss columns exist in the sheet but
// the submission carries no cells for them, so rows stay 21 cells wide.
var defectHeaders = []string{
	"타임스탬프", "작업자", "라인", "생산품코드", "생산품명",
	"포장지코드", "포장지명", "포장지로트",
	"실링불량", "중량불량", "날인불량(포장지)", "자체불량",
	"박스코드", "박스명", "박스오염", "파손", "날인불량(박스)", "기타",
	"생산시_가공로스", "배합_청소로스",
	"내용", "개선조치사항", "완료여부",
}

// DefectService drives the defect-check workflow.
type DefectService interface {
	Workers(ctx context.Context) ([]string, error)
	Products(ctx context.Context) ([]model.CatalogProduct, error)
	Packaging(ctx context.Context, productCode string) (*dto.PackagingResponse, error)
	SerialLots(ctx context.Context, packagingCode string) ([]model.SerialLot, error)
	SheetInfo(ctx context.Context) (string, error)
	Save(ctx context.Context, data model.DefectCheckData) ([]model.ValidationError, error)
}

type defectService struct {
	bom     repository.BOMRepository
	storage repository.StorageRepository
}

func NewDefectService(bom repository.BOMRepository, storage repository.StorageRepository) DefectService {
	return &defectService{bom: bom, storage: storage}
}

func (s *defectService) Workers(ctx context.Context) ([]string, error) {
	return s.storage.ReadTeamMembers(ctx)
}

// Products lists the catalog's producing items deduplicated by code, each
// joined with its spec info from the category sub-table. A missing category
// table degrades to empty category strings.
func (s *defectService) Products(ctx context.Context) ([]model.CatalogProduct, error) {
	rows, err := s.bom.ReadCatalogRows(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.storage.ReadCategoryMap(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("category table unreadable")
		categories = map[string]string{}
	}

	seen := make(map[string]bool)
	var products []model.CatalogProduct
	for _, row := range rows {
		if row.ProductCode == "" || row.ProductName == "" || seen[row.ProductCode] {
			continue
		}
		seen[row.ProductCode] = true
		products = append(products, model.CatalogProduct{
			ProductCode: row.ProductCode,
			ProductName: row.ProductName,
			Category:    categories[row.ProductCode],
		})
	}
	return products, nil
}

// Packaging picks the first packaging-bag and box consumables of a product
// by their code patterns.
func (s *defectService) Packaging(ctx context.Context, productCode string) (*dto.PackagingResponse, error) {
	rows, err := s.bom.ReadCatalogRows(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.PackagingResponse{}
	for _, row := range rows {
		if row.ProductCode != productCode || row.ConsumedCode == "" {
			continue
		}
		if resp.Packaging == nil && packagingCodeRe.MatchString(row.ConsumedCode) {
			resp.Packaging = &model.PackagingItem{Code: row.ConsumedCode, Name: row.ConsumedName}
		}
		if resp.Box == nil && boxCodeRe.MatchString(row.ConsumedCode) {
			resp.Box = &model.PackagingItem{Code: row.ConsumedCode, Name: row.ConsumedName}
		}
	}
	return resp, nil
}

// SerialLots returns every lot of the given packaging code that has a lot
// number, code-matched after trimming.
func (s *defectService) SerialLots(ctx context.Context, packagingCode string) ([]model.SerialLot, error) {
	lots, err := s.storage.ReadSerialLots(ctx)
	if err != nil {
		return nil, err
	}

	wanted := strings.TrimSpace(packagingCode)
	var matched []model.SerialLot
	for _, lot := range lots {
		if lot.Code == wanted && lot.SerialLot != "" {
			matched = append(matched, lot)
		}
	}
	return matched, nil
}

func (s *defectService) SheetInfo(ctx context.Context) (string, error) {
	return s.storage.ReadPackagingSheetInfo(ctx)
}

// ValidateDefect collects the required-field failures of a defect check.
func ValidateDefect(data model.DefectCheckData) []model.ValidationError {
	var errs []model.ValidationError
	if data.Worker == "" {
		errs = append(errs, model.ValidationError{Field: "worker", Message: "작업자가 필요합니다."})
	}
	if data.Line == "" {
		errs = append(errs, model.ValidationError{Field: "line", Message: "라인이 필요합니다."})
	}
	if data.ProductCode == "" {
		errs = append(errs, model.ValidationError{Field: "productCode", Message: "생산품 코드가 필요합니다."})
	}
	return errs
}

// FlattenDefect turns a defect check into its fixed 21-cell row (A~U).
func FlattenDefect(data model.DefectCheckData, now time.Time) []any {
	cells := []any{
		sheetfmt.FormatKoreanDateTime24(now),
		data.Worker,
		data.Line,
		data.ProductCode,
		data.ProductName,
		data.PackagingCode,
		data.PackagingName,
		data.PackagingLot,
		data.Packaging.SealingDefect,
		data.Packaging.WeightDefect,
		data.Packaging.PrintDefect,
		data.Packaging.SelfDefect,
		data.BoxCode,
		data.BoxName,
		data.Box.Contamination,
		data.Box.Damage,
		data.Box.PrintDefect,
		data.Box.Other,
		data.Note.Content,
		data.Note.Improvement,
		data.Note.CompletionStatus,
	}
	return sheetfmt.SanitizeRow(cells)
}

func (s *defectService) Save(ctx context.Context, data model.DefectCheckData) ([]model.ValidationError, error) {
	if errs := ValidateDefect(data); len(errs) > 0 {
		return errs, nil
	}

	cells := FlattenDefect(data, time.Now())
	if err := s.storage.AppendLogRow(ctx, defectHeaders, cells); err != nil {
		log.Error().Err(err).Str("product_code", data.ProductCode).Msg("defect append failed")
		return nil, err
	}
	return nil, nil
}
