package service

import (
	"fmt"

	"github.com/chobyoungjae/interface/internal/model"
)

// AggregateBOM groups raw BOM rows into products with nested material lists.
//
// Rows with any empty field are skipped. The emptiness check treats a zero
// quantity the same as a missing one, so a row whose consumed quantity is
// legitimately 0 is also dropped — inherited behavior, kept as-is.
func AggregateBOM(rows []model.RawBOMRow) []model.Product {
	type group struct {
		product *model.Product
		seen    map[string]bool
	}

	groups := make(map[string]*group)
	var order []string

	for _, row := range rows {
		if row.ProducingCode == "" || row.ProducingName == "" || row.BaseQuantity == 0 ||
			row.ConsumedCode == "" || row.ConsumedName == "" || row.ConsumedQty == 0 {
			continue
		}

		key := row.ProducingCode + "_" + row.ProducingName
		g, ok := groups[key]
		if !ok {
			// First row for a key fixes the base quantity; later rows
			// re-affirm it, they never update it.
			g = &group{
				product: &model.Product{
					ProductCode:  row.ProducingCode,
					ProductName:  row.ProducingName,
					BaseQuantity: row.BaseQuantity,
				},
				seen: make(map[string]bool),
			}
			groups[key] = g
			order = append(order, key)
		}

		// First occurrence wins for a duplicated consumed code.
		if g.seen[row.ConsumedCode] {
			continue
		}
		g.seen[row.ConsumedCode] = true
		g.product.Materials = append(g.product.Materials, model.Material{
			Code:     row.ConsumedCode,
			Name:     row.ConsumedName,
			Quantity: row.ConsumedQty,
		})
	}

	products := make([]model.Product, 0, len(order))
	for _, key := range order {
		products = append(products, *groups[key].product)
	}
	return products
}

// maxInputWeightGrams is 10 metric tons expressed in grams.
const maxInputWeightGrams = 10_000_000

// ValidateInputWeight checks a requested output weight in grams, collecting
// human-readable messages. Callers decide whether to abort.
func ValidateInputWeight(grams float64) []string {
	var errs []string
	if grams <= 0 {
		errs = append(errs, "중량은 0보다 큰 값이어야 합니다.")
	}
	if grams > maxInputWeightGrams {
		errs = append(errs, fmt.Sprintf("중량은 %dg (10톤)을 초과할 수 없습니다.", maxInputWeightGrams))
	}
	return errs
}

// ScaleMaterials computes each material's quantity for the requested output
// weight by linear ratio. Input weight is grams; base quantity and material
// quantities are kilograms, so the base is converted to grams for a like-unit
// ratio. Results stay in kilograms and are not rounded here.
//
// A product with BaseQuantity == 0 yields Inf/NaN quantities; upstream data
// is expected to never contain one.
func ScaleMaterials(p model.Product, inputWeightGrams float64) []model.Material {
	ratio := inputWeightGrams / (p.BaseQuantity * 1000)

	scaled := make([]model.Material, len(p.Materials))
	for i, m := range p.Materials {
		scaled[i] = model.Material{
			Code:     m.Code,
			Name:     m.Name,
			Quantity: m.Quantity * ratio,
		}
	}
	return scaled
}
