package service

import "github.com/chobyoungjae/interface/internal/model"

// SampleProducts is the built-in catalog served when the BOM sheet cannot be
// read, so the mixing-log form stays usable during store outages. The same
// data seeds the local development workbook (cmd/seedbook).
var SampleProducts = []model.Product{
	{
		ProductCode:  "310013",
		ProductName:  "미스터 떡볶이소스 순한맛_분체품",
		BaseQuantity: 115,
		Materials: []model.Material{
			{Code: "500002", Name: "정백당", Quantity: 65},
			{Code: "500004", Name: "쇠고기다시다", Quantity: 30},
			{Code: "500007", Name: "조미고추맛분말5.0", Quantity: 4},
			{Code: "500008", Name: "L-글루탐산나트륨", Quantity: 16},
		},
	},
	{
		ProductCode:  "310014",
		ProductName:  "미스터 떡볶이소스 매운맛_분체품",
		BaseQuantity: 100,
		Materials: []model.Material{
			{Code: "500002", Name: "정백당", Quantity: 50},
			{Code: "500004", Name: "쇠고기다시다", Quantity: 25},
			{Code: "500007", Name: "조미고추맛분말5.0", Quantity: 5},
			{Code: "500008", Name: "L-글루탐산나트륨", Quantity: 15},
			{Code: "500009", Name: "기타원료", Quantity: 5},
		},
	},
	{
		ProductCode:  "310015",
		ProductName:  "치킨소스 오리지널_액상품",
		BaseQuantity: 200,
		Materials: []model.Material{
			{Code: "500010", Name: "치킨베이스", Quantity: 120},
			{Code: "500011", Name: "식용유", Quantity: 40},
			{Code: "500012", Name: "향신료", Quantity: 30},
			{Code: "500013", Name: "보존료", Quantity: 10},
		},
	},
}
