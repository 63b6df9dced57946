package service

import (
	"testing"

	"github.com/chobyoungjae/interface/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateBOM_GroupsByProduct(t *testing.T) {
	rows := []model.RawBOMRow{
		{ProducingCode: "310021", ProducingName: "제품A", BaseQuantity: 100, ConsumedCode: "500001", ConsumedName: "원료1", ConsumedQty: 50},
		{ProducingCode: "310021", ProducingName: "제품A", BaseQuantity: 100, ConsumedCode: "500002", ConsumedName: "원료2", ConsumedQty: 30},
		{ProducingCode: "310022", ProducingName: "제품B", BaseQuantity: 200, ConsumedCode: "500001", ConsumedName: "원료1", ConsumedQty: 80},
	}

	products := AggregateBOM(rows)
	require.Len(t, products, 2)

	assert.Equal(t, "310021", products[0].ProductCode)
	assert.Equal(t, 100.0, products[0].BaseQuantity)
	assert.Len(t, products[0].Materials, 2)

	assert.Equal(t, "310022", products[1].ProductCode)
	assert.Len(t, products[1].Materials, 1)
}

func TestAggregateBOM_SkipsIncompleteRows(t *testing.T) {
	rows := []model.RawBOMRow{
		{ProducingCode: "", ProducingName: "제품A", BaseQuantity: 100, ConsumedCode: "500001", ConsumedName: "원료1", ConsumedQty: 50},
		{ProducingCode: "310021", ProducingName: "", BaseQuantity: 100, ConsumedCode: "500001", ConsumedName: "원료1", ConsumedQty: 50},
		{ProducingCode: "310021", ProducingName: "제품A", BaseQuantity: 100, ConsumedCode: "", ConsumedName: "원료1", ConsumedQty: 50},
		// Zero quantities count as missing and drop the row too.
		{ProducingCode: "310021", ProducingName: "제품A", BaseQuantity: 0, ConsumedCode: "500001", ConsumedName: "원료1", ConsumedQty: 50},
		{ProducingCode: "310021", ProducingName: "제품A", BaseQuantity: 100, ConsumedCode: "500001", ConsumedName: "원료1", ConsumedQty: 0},
	}

	assert.Empty(t, AggregateBOM(rows))
}

func TestAggregateBOM_FirstRowWins(t *testing.T) {
	rows := []model.RawBOMRow{
		{ProducingCode: "310021", ProducingName: "제품A", BaseQuantity: 100, ConsumedCode: "500001", ConsumedName: "원료1", ConsumedQty: 50},
		// Conflicting base quantity on a later row never updates the group.
		{ProducingCode: "310021", ProducingName: "제품A", BaseQuantity: 999, ConsumedCode: "500002", ConsumedName: "원료2", ConsumedQty: 30},
		// Duplicate consumed code is dropped, first occurrence kept.
		{ProducingCode: "310021", ProducingName: "제품A", BaseQuantity: 100, ConsumedCode: "500001", ConsumedName: "원료1-중복", ConsumedQty: 77},
	}

	products := AggregateBOM(rows)
	require.Len(t, products, 1)
	assert.Equal(t, 100.0, products[0].BaseQuantity)
	require.Len(t, products[0].Materials, 2)
	assert.Equal(t, "원료1", products[0].Materials[0].Name)
	assert.Equal(t, 50.0, products[0].Materials[0].Quantity)
}

func TestValidateInputWeight(t *testing.T) {
	assert.Empty(t, ValidateInputWeight(50000))
	assert.Empty(t, ValidateInputWeight(10_000_000))

	assert.Len(t, ValidateInputWeight(0), 1)
	assert.Len(t, ValidateInputWeight(-5), 1)
	assert.Len(t, ValidateInputWeight(10_000_001), 1)
}

func TestScaleMaterials_LinearRatio(t *testing.T) {
	product := model.Product{
		ProductCode:  "310021",
		BaseQuantity: 100, // kg
		Materials: []model.Material{
			{Code: "500001", Name: "원료1", Quantity: 50},
			{Code: "500002", Name: "원료2", Quantity: 30},
		},
	}

	// Requesting half the base output halves every material.
	scaled := ScaleMaterials(product, 50000) // 50 kg in grams
	require.Len(t, scaled, 2)
	assert.InDelta(t, 25.0, scaled[0].Quantity, 1e-9)
	assert.InDelta(t, 15.0, scaled[1].Quantity, 1e-9)

	// Requesting the base output exactly reproduces the recipe.
	scaled = ScaleMaterials(product, 100000)
	assert.InDelta(t, 50.0, scaled[0].Quantity, 1e-9)
	assert.InDelta(t, 30.0, scaled[1].Quantity, 1e-9)
}
