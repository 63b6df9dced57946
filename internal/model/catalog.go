package model

// CatalogProduct is a product as listed for the defect-check form:
// code, name and the spec/category string from the 기초코드 sub-table.
type CatalogProduct struct {
	ProductCode string `json:"productCode"`
	ProductName string `json:"productName"`
	Category    string `json:"category"`
}

// PackagingItem is a consumable (packaging bag or box) tied to a product.
type PackagingItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// SerialLot is one inventory batch of an item with its on-hand quantity.
// StockQuantity stays a string because the sheet mixes comma-formatted
// numbers and free text.
type SerialLot struct {
	Code          string `json:"code"`
	ProductName   string `json:"productName,omitempty"`
	SerialLot     string `json:"serialLot"`
	StockQuantity string `json:"stockQuantity"`
}

// SheetInfo is the A1 banner of an inventory sheet: the raw company info
// string plus the YYYY/MM/DD last-update date extracted from it.
type SheetInfo struct {
	CompanyInfo    string `json:"companyInfo"`
	LastUpdateDate string `json:"lastUpdateDate"`
}
