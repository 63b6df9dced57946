package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const sheetsBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"

// SheetsClient talks to the Google Sheets values API over HTTPS.
// Every call goes through the circuit breaker so that a dead upstream
// fast-fails into the local fallbacks instead of hanging each request.
type SheetsClient struct {
	tokens     *TokenSource
	httpClient *http.Client
	breaker    *CircuitBreaker
	baseURL    string
}

func NewSheetsClient(tokens *TokenSource, breaker *CircuitBreaker) *SheetsClient {
	return &SheetsClient{
		tokens:     tokens,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		breaker:    breaker,
		baseURL:    sheetsBaseURL,
	}
}

// valueRange mirrors the values API payload.
type valueRange struct {
	Values [][]any `json:"values"`
}

// ReadRows fetches the whole sheet and maps data rows by the header row.
// Rows above the header are skipped, matching loadHeaderRow semantics.
func (c *SheetsClient) ReadRows(ctx context.Context, spreadsheetID, sheet string, headerRow int) ([]Row, error) {
	var vr valueRange
	err := c.breaker.Execute(func() error {
		return c.getJSON(ctx, c.valuesURL(spreadsheetID, sheetRange(sheet), nil), &vr)
	})
	if err != nil {
		return nil, err
	}

	if headerRow < 1 || len(vr.Values) < headerRow {
		return nil, nil
	}

	headers := make([]string, len(vr.Values[headerRow-1]))
	for i, h := range vr.Values[headerRow-1] {
		headers[i] = cellString(h)
	}

	rows := make([]Row, 0, len(vr.Values)-headerRow)
	for _, raw := range vr.Values[headerRow:] {
		row := make(Row, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(raw) {
				row[h] = cellString(raw[i])
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (c *SheetsClient) ReadCell(ctx context.Context, spreadsheetID, sheet string, rowIdx, colIdx int) (string, error) {
	a1 := fmt.Sprintf("%s!%s%d", sheetRange(sheet), columnLetter(colIdx), rowIdx+1)
	var vr valueRange
	err := c.breaker.Execute(func() error {
		return c.getJSON(ctx, c.valuesURL(spreadsheetID, a1, nil), &vr)
	})
	if err != nil {
		return "", err
	}
	if len(vr.Values) == 0 || len(vr.Values[0]) == 0 {
		return "", nil
	}
	return cellString(vr.Values[0][0]), nil
}

func (c *SheetsClient) AppendRow(ctx context.Context, spreadsheetID, sheet string, cells []any) error {
	u := c.valuesURL(spreadsheetID, sheetRange(sheet), url.Values{"valueInputOption": {"USER_ENTERED"}})
	return c.breaker.Execute(func() error {
		return c.sendJSON(ctx, http.MethodPost, u+":append", valueRange{Values: [][]any{cells}})
	})
}

func (c *SheetsClient) SetHeaderRow(ctx context.Context, spreadsheetID, sheet string, headers []string) error {
	cells := make([]any, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	a1 := fmt.Sprintf("%s!1:1", sheetRange(sheet))
	u := c.valuesURL(spreadsheetID, a1, url.Values{"valueInputOption": {"RAW"}})
	return c.breaker.Execute(func() error {
		return c.sendJSON(ctx, http.MethodPut, u, valueRange{Values: [][]any{cells}})
	})
}

// ── HTTP plumbing ────────────────────────────────────────────────────────────

func (c *SheetsClient) valuesURL(spreadsheetID, a1Range string, q url.Values) string {
	u := fmt.Sprintf("%s/%s/values/%s", c.baseURL, spreadsheetID, url.PathEscape(a1Range))
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

func (c *SheetsClient) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("sheets: create request: %w", err)
	}
	return c.do(req, out)
}

func (c *SheetsClient) sendJSON(ctx context.Context, method, rawURL string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("sheets: marshal payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("sheets: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, nil)
}

func (c *SheetsClient) do(req *http.Request, out any) error {
	token, err := c.tokens.Token(req.Context())
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sheets: api unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sheets: api returned %d", resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("sheets: decode response: %w", err)
		}
	}
	return nil
}

// sheetRange quotes a sheet name for use in an A1 range.
func sheetRange(sheet string) string { return "'" + sheet + "'" }

// columnLetter converts a 0-based column index to its A1 letters.
func columnLetter(idx int) string {
	s := ""
	for idx >= 0 {
		s = string(rune('A'+idx%26)) + s
		idx = idx/26 - 1
	}
	return s
}

// cellString renders an API cell value as a string. The values API returns
// formatted strings by default, but numbers can still arrive as JSON numbers.
func cellString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}
