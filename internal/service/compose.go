package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/chobyoungjae/interface/internal/model"
	"github.com/chobyoungjae/interface/internal/sheetfmt"
)

// Fixed header columns of the production log (A~K). Material columns are
// appended dynamically, four per material.
var productionBaseHeaders = []string{
	"타임스탬프", "작성자", "호기", "제품코드", "제품명",
	"생산중량", "원재료합계", "소비기한", "제품로트", "시리얼로트", "샘플",
}

const (
	exportHeader = "수출"
	exportMarker = "수출용"
)

// ValidateProduction checks a submitted production record, collecting every
// failure before returning. An empty result means the record may be composed.
func ValidateProduction(data model.ProductionData) []model.ValidationError {
	var errs []model.ValidationError

	if data.ProductCode == "" {
		errs = append(errs, model.ValidationError{Field: "productCode", Message: "제품 코드가 필요합니다."})
	} else if len([]rune(data.ProductCode)) > 100 {
		errs = append(errs, model.ValidationError{Field: "productCode", Message: "제품 코드는 100자를 초과할 수 없습니다."})
	}

	if data.InputWeight < 0.001 || data.InputWeight > maxInputWeightGrams {
		errs = append(errs, model.ValidationError{Field: "inputWeight", Message: "올바른 중량을 입력해주세요."})
	}

	if data.Author == "" {
		errs = append(errs, model.ValidationError{Field: "author", Message: "작성자가 필요합니다."})
	} else if len([]rune(data.Author)) > 50 {
		errs = append(errs, model.ValidationError{Field: "author", Message: "작성자는 50자를 초과할 수 없습니다."})
	}

	if data.Machine == "" {
		errs = append(errs, model.ValidationError{Field: "machine", Message: "호기가 필요합니다."})
	}

	for i, m := range data.Materials {
		if m.SerialLot == "" {
			errs = append(errs, model.ValidationError{
				Field:   fmt.Sprintf("materials.%d.serialLot", i),
				Message: fmt.Sprintf("원재료 %d의 시리얼/로트번호가 필요합니다.", i+1),
			})
		} else if len([]rune(m.SerialLot)) > 100 {
			errs = append(errs, model.ValidationError{
				Field:   fmt.Sprintf("materials.%d.serialLot", i),
				Message: fmt.Sprintf("원재료 %d의 시리얼/로트번호는 100자를 초과할 수 없습니다.", i+1),
			})
		}
		if m.StockQuantity == "" {
			errs = append(errs, model.ValidationError{
				Field:   fmt.Sprintf("materials.%d.stockQuantity", i),
				Message: fmt.Sprintf("원재료 %d의 재고수량이 필요합니다.", i+1),
			})
		}
	}

	return errs
}

// FlattenProduction turns a validated record into the header list and the
// ordered cell row appended to the log sheet. Weights are emitted in grams;
// every string cell is formula-sanitized.
func FlattenProduction(data model.ProductionData, now time.Time) (headers []string, cells []any) {
	totalGrams := 0.0
	for _, m := range data.Materials {
		totalGrams += sheetfmt.KgToGrams(m.CalculatedWeight)
	}

	serialLotCode := SerialLotCode(data.ProductExpiry, data.ProductLot)

	cells = []any{
		sheetfmt.FormatKoreanDateTime(now),
		data.Author,
		data.Machine,
		data.ProductCode,
		data.ProductName,
		data.InputWeight,
		totalGrams,
		data.ProductExpiry,
		data.ProductLot,
		serialLotCode,
		data.SampleType,
	}

	headers = append(headers, productionBaseHeaders...)
	if data.IsExport {
		headers = append(headers, exportHeader)
		cells = append(cells, exportMarker)
	}

	for i, m := range data.Materials {
		headers = append(headers,
			fmt.Sprintf("코드%d", i+1),
			fmt.Sprintf("원재료명%d", i+1),
			fmt.Sprintf("중량%d", i+1),
			fmt.Sprintf("시리얼로트%d", i+1),
		)
		cells = append(cells, m.Code, m.Name, sheetfmt.KgToGrams(m.CalculatedWeight), m.SerialLot)
	}

	return headers, sheetfmt.SanitizeRow(cells)
}

// SerialLotCode derives the synthetic lot code from the expiry date and the
// product lot: "2025-08-09" + "AA" → "25.08.09_AA".
func SerialLotCode(expiry, lot string) string {
	formatted := expiry
	if len(formatted) >= 2 {
		formatted = formatted[2:] // drop the century prefix
	}
	formatted = strings.ReplaceAll(formatted, "-", ".")
	return formatted + "_" + lot
}
