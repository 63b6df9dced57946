package sheetfmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCell(t *testing.T) {
	assert.Equal(t, "'=1+1", SanitizeCell("=1+1"))
	assert.Equal(t, "'+541112223344", SanitizeCell("+541112223344"))
	assert.Equal(t, "'-5", SanitizeCell("-5"))
	assert.Equal(t, "'@import", SanitizeCell("@import"))
	assert.Equal(t, "'\tpad", SanitizeCell("\tpad"))
	assert.Equal(t, "hello", SanitizeCell("hello"))
	assert.Equal(t, "", SanitizeCell(""))
	assert.Equal(t, "   ", SanitizeCell("   "))

	// Numbers pass through untouched
	assert.Equal(t, 42, SanitizeCell(42))
	assert.Equal(t, 25000.0, SanitizeCell(25000.0))
}

func TestSanitizeRow(t *testing.T) {
	row := SanitizeRow([]any{"=SUM(A1)", "ok", 7.5})
	assert.Equal(t, []any{"'=SUM(A1)", "ok", 7.5}, row)
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, 1234.5, ParseNumber("1,234.5"))
	assert.Equal(t, 100.0, ParseNumber("100"))
	assert.Equal(t, 0.0, ParseNumber(""))
	assert.Equal(t, 0.0, ParseNumber("재고없음"))
	assert.Equal(t, 1000000.0, ParseNumber(" 1,000,000 "))
}

func TestKgToGrams(t *testing.T) {
	assert.Equal(t, 25000.0, KgToGrams(25))
	assert.Equal(t, 16100.0, KgToGrams(16.1))
	assert.Equal(t, 0.0, KgToGrams(0))
}

func TestFormatKoreanDateTime(t *testing.T) {
	// 2025-08-09 00:05:07 UTC == 09:05:07 KST → 오전 9
	ts := time.Date(2025, 8, 9, 0, 5, 7, 0, time.UTC)
	assert.Equal(t, "2025. 8. 9 오전 9:05:07", FormatKoreanDateTime(ts))

	// Midnight KST → 오전 12
	ts = time.Date(2025, 1, 2, 15, 0, 0, 0, time.UTC) // 00:00:00 KST Jan 3
	assert.Equal(t, "2025. 1. 3 오전 12:00:00", FormatKoreanDateTime(ts))

	// Noon KST → 오후 12
	ts = time.Date(2025, 1, 3, 3, 0, 1, 0, time.UTC) // 12:00:01 KST
	assert.Equal(t, "2025. 1. 3 오후 12:00:01", FormatKoreanDateTime(ts))

	// 13:09:30 KST → 오후 1
	ts = time.Date(2025, 12, 31, 4, 9, 30, 0, time.UTC)
	assert.Equal(t, "2025. 12. 31 오후 1:09:30", FormatKoreanDateTime(ts))
}

func TestFormatKoreanDateTime24(t *testing.T) {
	// Afternoon stays on the 24-hour clock, month/day/hour zero-padded.
	ts := time.Date(2025, 8, 9, 5, 5, 3, 0, time.UTC) // 14:05:03 KST
	assert.Equal(t, "2025. 08. 09. 14:05:03", FormatKoreanDateTime24(ts))

	// Midnight KST → 00, not 12
	ts = time.Date(2025, 1, 2, 15, 0, 0, 0, time.UTC) // 00:00:00 KST Jan 3
	assert.Equal(t, "2025. 01. 03. 00:00:00", FormatKoreanDateTime24(ts))
}
