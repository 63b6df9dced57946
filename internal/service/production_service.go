package service

import (
	"context"
	"time"

	"github.com/chobyoungjae/interface/internal/dto"
	"github.com/chobyoungjae/interface/internal/model"
	"github.com/chobyoungjae/interface/internal/repository"

	"github.com/rs/zerolog/log"
)

// ProductionService drives the mixing-log workflow: reference reads, the
// proportional calculation and record persistence.
type ProductionService interface {
	Products(ctx context.Context) ([]model.Product, error)
	Materials(ctx context.Context) ([]model.Material, error)
	Authors(ctx context.Context) ([]string, error)
	SerialLots(ctx context.Context) ([]model.SerialLot, error)
	SerialLotInfo(ctx context.Context) (*model.SheetInfo, error)

	// Calculate validates the requested weight and scales the product's
	// materials. A non-empty message list means the request was rejected.
	Calculate(ctx context.Context, req dto.CalculateRequest) (*dto.CalculateResponse, []string)

	// Save validates, flattens and appends one production record. Collected
	// validation errors come back in the second return; an error in the
	// third means both the live store and the local fallback failed.
	Save(ctx context.Context, data model.ProductionData) (*dto.SaveResponse, []model.ValidationError, error)
}

type productionService struct {
	bom      repository.BOMRepository
	storage  repository.StorageRepository
	fallback repository.StorageRepository // local workbook target; may be nil
}

func NewProductionService(bom repository.BOMRepository, storage, fallback repository.StorageRepository) ProductionService {
	return &productionService{bom: bom, storage: storage, fallback: fallback}
}

func (s *productionService) Products(ctx context.Context) ([]model.Product, error) {
	rows, err := s.bom.ReadBOMRows(ctx)
	if err != nil {
		return nil, err
	}
	return AggregateBOM(rows), nil
}

// Materials lists the distinct consumables across the whole BOM, in
// first-seen order.
func (s *productionService) Materials(ctx context.Context) ([]model.Material, error) {
	rows, err := s.bom.ReadBOMRows(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var materials []model.Material
	for _, row := range rows {
		if row.ConsumedCode == "" || seen[row.ConsumedCode] {
			continue
		}
		seen[row.ConsumedCode] = true
		materials = append(materials, model.Material{Code: row.ConsumedCode, Name: row.ConsumedName})
	}
	return materials, nil
}

func (s *productionService) Authors(ctx context.Context) ([]string, error) {
	return s.storage.ReadTeamMembers(ctx)
}

// SerialLots returns only complete inventory rows: code, lot number and
// stock quantity all present.
func (s *productionService) SerialLots(ctx context.Context) ([]model.SerialLot, error) {
	lots, err := s.storage.ReadSerialLots(ctx)
	if err != nil {
		return nil, err
	}

	complete := make([]model.SerialLot, 0, len(lots))
	for _, lot := range lots {
		if lot.Code != "" && lot.SerialLot != "" && lot.StockQuantity != "" {
			lot.ProductName = "" // the mixing-log client keys on code only
			complete = append(complete, lot)
		}
	}
	return complete, nil
}

func (s *productionService) SerialLotInfo(ctx context.Context) (*model.SheetInfo, error) {
	return s.storage.ReadSerialLotSheetInfo(ctx)
}

func (s *productionService) Calculate(_ context.Context, req dto.CalculateRequest) (*dto.CalculateResponse, []string) {
	if errs := ValidateInputWeight(req.InputWeight); len(errs) > 0 {
		return nil, errs
	}

	product := model.Product{
		ProductCode:  req.ProductCode,
		ProductName:  req.ProductName,
		BaseQuantity: req.BaseQuantity,
		Materials:    req.Materials,
	}

	return &dto.CalculateResponse{
		ProductCode: req.ProductCode,
		ProductName: req.ProductName,
		InputWeight: req.InputWeight,
		Materials:   ScaleMaterials(product, req.InputWeight),
	}, nil
}

func (s *productionService) Save(ctx context.Context, data model.ProductionData) (*dto.SaveResponse, []model.ValidationError, error) {
	if errs := ValidateProduction(data); len(errs) > 0 {
		return nil, errs, nil
	}

	now := time.Now()
	headers, cells := FlattenProduction(data, now)

	if err := s.storage.AppendLogRow(ctx, headers, cells); err != nil {
		log.Error().Err(err).Str("product_code", data.ProductCode).Msg("production append failed")

		if s.fallback == nil {
			return nil, nil, err
		}
		if fbErr := s.fallback.AppendLogRow(ctx, headers, cells); fbErr != nil {
			log.Error().Err(fbErr).Msg("fallback append failed")
			return nil, nil, err
		}
		return &dto.SaveResponse{
			Message:   "생산 데이터가 로컬에 저장되었습니다. (저장소 연결 실패)",
			Timestamp: now.UTC().Format(time.RFC3339),
			Data:      cells,
		}, nil, nil
	}

	return &dto.SaveResponse{
		Message:   "생산 데이터가 성공적으로 저장되었습니다.",
		Timestamp: now.UTC().Format(time.RFC3339),
	}, nil, nil
}
