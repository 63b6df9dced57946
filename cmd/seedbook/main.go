// cmd/seedbook/main.go — builds the local development workbook with sample
// reference data so the server can run with STORE_MODE=local.
// Usage: go run ./cmd/seedbook [-out testdata/workbook.xlsx]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/chobyoungjae/interface/internal/service"

	"github.com/xuri/excelize/v2"
)

func main() {
	out := flag.String("out", "testdata/workbook.xlsx", "output workbook path")
	flag.Parse()

	f := excelize.NewFile()

	// 시트1 — raw BOM rows, one row per consumed material
	f.SetSheetName("Sheet1", "시트1")
	writeRow(f, "시트1", 1, []any{"생산품목코드", "생산품목명", "생산수량", "소모품목코드", "소모품목명", "소모수량"})
	row := 2
	for _, p := range service.SampleProducts {
		for _, m := range p.Materials {
			writeRow(f, "시트1", row, []any{p.ProductCode, p.ProductName, p.BaseQuantity, m.Code, m.Name, m.Quantity})
			row++
		}
	}

	// 시트2 — defect-app catalog: products with their packaging consumables
	// (6xxxxx = 포장지, 7xxxxx = 박스)
	mustNewSheet(f, "시트2")
	writeRow(f, "시트2", 1, []any{"생산품목코드", "생산품목명", "소모품목코드", "소모품목명"})
	catalog := [][]any{
		{"310013", "미스터 떡볶이소스 순한맛_분체품", "610013", "떡볶이 순한맛 포장지"},
		{"310013", "미스터 떡볶이소스 순한맛_분체품", "710013", "떡볶이 순한맛 박스"},
		{"310014", "미스터 떡볶이소스 매운맛_분체품", "610014", "떡볶이 매운맛 포장지"},
		{"310014", "미스터 떡볶이소스 매운맛_분체품", "710014", "떡볶이 매운맛 박스"},
		{"310015", "치킨소스 오리지널_액상품", "610015", "치킨소스 파우치"},
	}
	for i, c := range catalog {
		writeRow(f, "시트2", i+2, c)
	}

	// 비밀번호 — login password in A1
	mustNewSheet(f, "비밀번호")
	writeRow(f, "비밀번호", 1, []any{"bom2024!"})

	// B시트 — team roster, header on row 4
	mustNewSheet(f, "B시트")
	writeRow(f, "B시트", 1, []any{"전체 직원 명단"})
	writeRow(f, "B시트", 4, []any{"이름", "부서"})
	members := [][]any{
		{"김철수", "생산팀"},
		{"이영희", "생산팀"},
		{"박민수", "생산팀"},
		{"최지원", "품질팀"},
	}
	for i, m := range members {
		writeRow(f, "B시트", i+5, m)
	}

	// 기초코드 — product code → spec info, header on row 2
	mustNewSheet(f, "기초코드")
	writeRow(f, "기초코드", 1, []any{"기초코드 관리 시트"})
	writeRow(f, "기초코드", 2, []any{"품목코드", "규격정보"})
	writeRow(f, "기초코드", 3, []any{"310013", "1kg x 10"})
	writeRow(f, "기초코드", 4, []any{"310014", "1kg x 10"})
	writeRow(f, "기초코드", 5, []any{"310015", "2kg x 6"})

	// 시리얼로트 — lot inventory, A1 banner with update date, header on row 2
	mustNewSheet(f, "시리얼로트")
	writeRow(f, "시리얼로트", 1, []any{"시리얼로트 재고 현황 (업데이트: 2025/08/01)"})
	writeRow(f, "시리얼로트", 2, []any{"품목코드", "품목명", "시리얼/로트No.", "재고수량"})
	lots := [][]any{
		{"500002", "정백당", "25.08.01_AA", "1,200"},
		{"500004", "쇠고기다시다", "25.07.15_BB", "800"},
		{"610013", "떡볶이 순한맛 포장지", "25.06.20_CC", "5,000"},
		{"710013", "떡볶이 순한맛 박스", "25.06.20_CD", "300"},
	}
	for i, l := range lots {
		writeRow(f, "시리얼로트", i+3, l)
	}

	// 포장지 — A1 info banner
	mustNewSheet(f, "포장지")
	writeRow(f, "포장지", 1, []any{"(주)샘플식품 포장재 관리 대장"})

	if dir := filepath.Dir(*out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("mkdir error: %v", err)
		}
	}
	if err := f.SaveAs(*out); err != nil {
		log.Fatalf("save error: %v", err)
	}
	fmt.Printf("✅ workbook written to %s\n", *out)
}

func writeRow(f *excelize.File, sheet string, rowIdx int, cells []any) {
	cell, err := excelize.CoordinatesToCellName(1, rowIdx)
	if err != nil {
		log.Fatalf("cell name error: %v", err)
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		log.Fatalf("write row error (%s): %v", sheet, err)
	}
}

func mustNewSheet(f *excelize.File, name string) {
	if _, err := f.NewSheet(name); err != nil {
		log.Fatalf("new sheet error (%s): %v", name, err)
	}
}
