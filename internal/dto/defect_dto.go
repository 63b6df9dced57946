package dto

import "github.com/chobyoungjae/interface/internal/model"

// PackagingResponse pairs the packaging bag and box assigned to a product.
// Either side is null when the BOM lists no matching consumable.
type PackagingResponse struct {
	Packaging *model.PackagingItem `json:"packaging"`
	Box       *model.PackagingItem `json:"box"`
}

type DefectSaveResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
