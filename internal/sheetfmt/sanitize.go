// Package sheetfmt holds the small formatting rules shared by everything that
// writes to or reads from the spreadsheet store: formula-injection
// sanitization, comma-tolerant number parsing and the Korean timestamp format
// the downstream sheet consumers depend on.
package sheetfmt

import "strings"

// dangerous prefixes that make a spreadsheet treat a cell as a formula.
var formulaPrefixes = []string{"=", "+", "-", "@", "\t", "\r", "\n"}

// SanitizeCell neutralizes formula injection for string cells by prefixing a
// literal apostrophe. Non-string cells pass through unchanged.
func SanitizeCell(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	if strings.TrimSpace(s) == "" {
		return s
	}
	for _, p := range formulaPrefixes {
		if strings.HasPrefix(s, p) {
			return "'" + s
		}
	}
	return s
}

// SanitizeRow sanitizes every cell of a row in place order.
func SanitizeRow(cells []any) []any {
	out := make([]any, len(cells))
	for i, c := range cells {
		out[i] = SanitizeCell(c)
	}
	return out
}
