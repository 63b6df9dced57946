package model

// PackagingDefect holds the four packaging defect counters of one check.
type PackagingDefect struct {
	SealingDefect int `json:"sealingDefect"` // 실링불량
	WeightDefect  int `json:"weightDefect"`  // 중량불량
	PrintDefect   int `json:"printDefect"`   // 날인불량
	SelfDefect    int `json:"selfDefect"`    // 자체불량
}

// BoxDefect holds the four box defect counters.
type BoxDefect struct {
	Contamination int `json:"contamination"` // 박스오염
	Damage        int `json:"damage"`        // 파손
	PrintDefect   int `json:"printDefect"`   // 날인불량
	Other         int `json:"other"`         // 기타
}

// SpecialNote carries the free-text tail of a defect check row.
type SpecialNote struct {
	Content          string `json:"content"`
	Improvement      string `json:"improvement"`
	CompletionStatus string `json:"completionStatus"`
}

// DefectCheckData is the full defect-check submission, persisted as one
// 21-cell row in the output log.
type DefectCheckData struct {
	Worker        string          `json:"worker"`
	Line          string          `json:"line"`
	ProductCode   string          `json:"productCode"`
	ProductName   string          `json:"productName"`
	PackagingCode string          `json:"packagingCode"`
	PackagingName string          `json:"packagingName"`
	PackagingLot  string          `json:"packagingLot"`
	Packaging     PackagingDefect `json:"packagingDefect"`
	BoxCode       string          `json:"boxCode"`
	BoxName       string          `json:"boxName"`
	Box           BoxDefect       `json:"boxDefect"`
	Note          SpecialNote     `json:"specialNote"`
}

// LineOptions are the fixed production lines offered by the defect form.
var LineOptions = []string{"1라인", "2라인", "3라인", "4라인", "수작업", "배합실"}
