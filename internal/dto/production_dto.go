package dto

import "github.com/chobyoungjae/interface/internal/model"

// CalculateRequest carries the selected product plus the requested output
// weight in grams. The product fields echo what /v1/products returned; the
// server does not re-read the BOM for the calculation.
type CalculateRequest struct {
	ProductCode  string           `json:"productCode"  validate:"required"`
	ProductName  string           `json:"productName"`
	BaseQuantity float64          `json:"baseQuantity"`
	Materials    []model.Material `json:"materials"`
	InputWeight  float64          `json:"inputWeight"`
}

type CalculateResponse struct {
	ProductCode string           `json:"productCode"`
	ProductName string           `json:"productName"`
	InputWeight float64          `json:"inputWeight"`
	Materials   []model.Material `json:"materials"`
}

// SaveResponse reports where a record landed. Data is only populated when
// the live store was unreachable and the row went to the local fallback.
type SaveResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Data      []any  `json:"data,omitempty"`
}
