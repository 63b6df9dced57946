//go:build integration

package e2e

// End-to-end tests over the full HTTP surface in local store mode, with a
// real Redis (via testcontainers) backing the login-attempt counters.
// Run with: go test -tags integration ./tests/e2e/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/chobyoungjae/interface/internal/config"
	"github.com/chobyoungjae/interface/internal/infra"
	"github.com/chobyoungjae/interface/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/xuri/excelize/v2"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

type client struct {
	srv     *httptest.Server
	cookies []*http.Cookie
}

func (c *client) do(t *testing.T, method, path string, body *bytes.Buffer) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, c.srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, c.srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	resp, err := c.srv.Client().Do(req)
	require.NoError(t, err)
	if cs := resp.Cookies(); len(cs) > 0 {
		c.cookies = cs
	}
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// seedWorkbook writes the reference workbook the local store mode reads.
func seedWorkbook(t *testing.T, path string) {
	t.Helper()

	f := excelize.NewFile()
	set := func(sheet string, rowIdx int, cells []any) {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &cells))
	}

	f.SetSheetName("Sheet1", "시트1")
	set("시트1", 1, []any{"생산품목코드", "생산품목명", "생산수량", "소모품목코드", "소모품목명", "소모수량"})
	set("시트1", 2, []any{"310021", "제품A", "100", "500001", "원료1", "50"})
	set("시트1", 3, []any{"310021", "제품A", "100", "500002", "원료2", "30"})

	for _, sheet := range []string{"시트2", "비밀번호", "B시트", "기초코드", "시리얼로트", "포장지"} {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	set("시트2", 1, []any{"생산품목코드", "생산품목명", "소모품목코드", "소모품목명"})
	set("시트2", 2, []any{"310021", "제품A", "610021", "포장지A"})
	set("시트2", 3, []any{"310021", "제품A", "710021", "박스A"})
	set("비밀번호", 1, []any{"e2e-pass!"})
	set("B시트", 4, []any{"이름", "부서"})
	set("B시트", 5, []any{"김철수", "생산팀"})
	set("기초코드", 2, []any{"품목코드", "규격정보"})
	set("기초코드", 3, []any{"310021", "1kg x 10"})
	set("시리얼로트", 1, []any{"재고 현황 (업데이트: 2025/08/01)"})
	set("시리얼로트", 2, []any{"품목코드", "품목명", "시리얼/로트No.", "재고수량"})
	set("시리얼로트", 3, []any{"500001", "원료1", "25.08.01_AA", "1,200"})
	set("시리얼로트", 4, []any{"610021", "포장지A", "25.06.20_CC", "5,000"})
	set("포장지", 1, []any{"(주)샘플식품 포장재 관리 대장"})

	require.NoError(t, f.SaveAs(path))
}

func setupTestEnv(t *testing.T) *client {
	t.Helper()
	ctx := context.Background()

	redisC, err := tcRedis.Run(ctx, "redis:7-alpine",
		testcontainers.WithWaitStrategy(wait.ForLog("Ready to accept connections")),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = redisC.Terminate(ctx) })

	redisURL, err := redisC.ConnectionString(ctx)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(redisURL)
	require.NoError(t, err)

	dir := t.TempDir()
	workbook := filepath.Join(dir, "workbook.xlsx")
	seedWorkbook(t, workbook)

	cfg := &config.Config{
		Port:                 0,
		Env:                  "development",
		StoreMode:            "local",
		LocalWorkbookPath:    workbook,
		FallbackWorkbookPath: filepath.Join(dir, "fallback.xlsx"),
		SessionSecret:        "e2e-secret",
		SessionTTLHours:      8,
		LoginMaxFails:        5,
		LoginWindowMin:       15,
	}

	srv := httptest.NewServer(router.New(cfg, rdb))
	t.Cleanup(srv.Close)
	return &client{srv: srv}
}

func login(t *testing.T, c *client, password string) *http.Response {
	t.Helper()
	return c.do(t, http.MethodPost, "/v1/auth/password", jsonBody(t, map[string]any{"password": password}))
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_FullProductionFlow(t *testing.T) {
	c := setupTestEnv(t)

	// Unauthenticated requests are rejected.
	resp := c.do(t, http.MethodGet, "/v1/products", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Login sets the session cookie.
	resp = login(t, c, "e2e-pass!")
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, c.cookies)

	// Products aggregate out of the BOM sheet.
	var products []map[string]any
	decodeJSON(t, c.do(t, http.MethodGet, "/v1/products", nil), &products)
	require.Len(t, products, 1)
	assert.Equal(t, "310021", products[0]["productCode"])

	// Calculate scales the recipe to half the base output.
	var calc struct {
		Materials []struct {
			Code     string  `json:"code"`
			Quantity float64 `json:"quantity"`
		} `json:"materials"`
	}
	decodeJSON(t, c.do(t, http.MethodPost, "/v1/calculate", jsonBody(t, map[string]any{
		"productCode":  "310021",
		"productName":  "제품A",
		"baseQuantity": 100,
		"inputWeight":  50000,
		"materials": []map[string]any{
			{"code": "500001", "name": "원료1", "quantity": 50},
			{"code": "500002", "name": "원료2", "quantity": 30},
		},
	})), &calc)
	require.Len(t, calc.Materials, 2)
	assert.InDelta(t, 25.0, calc.Materials[0].Quantity, 1e-9)

	// Save appends the record.
	var saved struct {
		Message string `json:"message"`
	}
	decodeJSON(t, c.do(t, http.MethodPost, "/v1/save", jsonBody(t, map[string]any{
		"productCode":   "310021",
		"productName":   "제품A",
		"inputWeight":   50000,
		"productExpiry": "2025-08-09",
		"productLot":    "AA",
		"author":        "김철수",
		"machine":       "1호기",
		"materials": []map[string]any{
			{"code": "500001", "name": "원료1", "calculatedWeight": 25, "serialLot": "25.08.01_AA", "stockQuantity": "1,200"},
		},
	})), &saved)
	assert.Contains(t, saved.Message, "저장되었습니다")
}

func TestE2E_DefectFlow(t *testing.T) {
	c := setupTestEnv(t)

	resp := login(t, c, "e2e-pass!")
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var workers []string
	decodeJSON(t, c.do(t, http.MethodGet, "/v1/defect/workers", nil), &workers)
	assert.Equal(t, []string{"김철수"}, workers)

	var packaging struct {
		Packaging *struct {
			Code string `json:"code"`
		} `json:"packaging"`
		Box *struct {
			Code string `json:"code"`
		} `json:"box"`
	}
	decodeJSON(t, c.do(t, http.MethodGet, "/v1/defect/packaging?productCode=310021", nil), &packaging)
	require.NotNil(t, packaging.Packaging)
	require.NotNil(t, packaging.Box)
	assert.Equal(t, "610021", packaging.Packaging.Code)
	assert.Equal(t, "710021", packaging.Box.Code)

	var lots []map[string]any
	decodeJSON(t, c.do(t, http.MethodGet, "/v1/defect/serial-lots?packagingCode=610021", nil), &lots)
	require.Len(t, lots, 1)
	assert.Equal(t, "25.06.20_CC", lots[0]["serialLot"])

	var saved struct {
		Success bool `json:"success"`
	}
	decodeJSON(t, c.do(t, http.MethodPost, "/v1/defect/save", jsonBody(t, map[string]any{
		"worker":        "김철수",
		"line":          "1라인",
		"productCode":   "310021",
		"productName":   "제품A",
		"packagingCode": "610021",
	})), &saved)
	assert.True(t, saved.Success)
}

func TestE2E_LoginLockoutViaRedis(t *testing.T) {
	c := setupTestEnv(t)

	for i := 0; i < 5; i++ {
		resp := login(t, c, "wrong")
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}

	resp := login(t, c, "e2e-pass!")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))

	var body struct {
		RetryAfter int `json:"retryAfterSeconds"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Greater(t, body.RetryAfter, 0)
	assert.LessOrEqual(t, body.RetryAfter, 15*60)
}
