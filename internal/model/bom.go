package model

// RawBOMRow is one row of the BOM sheet before grouping.
// Quantities are kilograms, exactly as the sheet stores them.
type RawBOMRow struct {
	ProducingCode string  // 생산품목코드
	ProducingName string  // 생산품목명
	BaseQuantity  float64 // 생산수량 (kg)
	ConsumedCode  string  // 소모품목코드
	ConsumedName  string  // 소모품목명
	ConsumedQty   float64 // 소모수량 (kg)
}

// Material is one raw material inside a product's bill of materials.
// Quantity stays in kilograms everywhere inside the service layer; the
// composer multiplies by 1000 when emitting gram cells to the sheet.
type Material struct {
	Code     string  `json:"code"`
	Name     string  `json:"name,omitempty"`
	Quantity float64 `json:"quantity"`
}

// Product groups BOM rows under one (code, name) pair.
// BaseQuantity is the reference batch size in kilograms the material
// quantities are defined against.
type Product struct {
	ProductCode  string     `json:"productCode"`
	ProductName  string     `json:"productName"`
	BaseQuantity float64    `json:"baseQuantity"`
	Materials    []Material `json:"materials"`
}
