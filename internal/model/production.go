package model

// ProductionMaterial is one material line of a submitted mixing-log record.
// CalculatedWeight is kilograms; SerialLot and StockQuantity come from the
// lot inventory sheet and are kept as strings verbatim.
type ProductionMaterial struct {
	Code             string  `json:"code"`
	Name             string  `json:"name"`
	CalculatedWeight float64 `json:"calculatedWeight"`
	SerialLot        string  `json:"serialLot"`
	StockQuantity    string  `json:"stockQuantity"`
}

// ProductionData is the full mixing-log submission. It is built client-side
// from form state, validated and flattened server-side, and appended as one
// row; it is never mutated after persistence.
type ProductionData struct {
	ProductCode   string               `json:"productCode"`
	ProductName   string               `json:"productName"`
	InputWeight   float64              `json:"inputWeight"`   // grams
	ProductExpiry string               `json:"productExpiry"` // YYYY-MM-DD
	ProductLot    string               `json:"productLot"`
	Author        string               `json:"author"`
	Machine       string               `json:"machine"`
	IsExport      bool                 `json:"isExport"`
	SampleType    string               `json:"sampleType"`
	Materials     []ProductionMaterial `json:"materials"`
}

// ValidationError is one user-correctable failure. Validation collects every
// failure before returning; it never aborts on the first.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
