package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sarbotrikbasu/Financial-Tracker/internal/app"
	"github.com/sarbotrikbasu/Financial-Tracker/internal/common"
	"github.com/sarbotrikbasu/Financial-Tracker/internal/models"
	"github.com/sarbotrikbasu/Financial-Tracker/internal/services/analyzer"
	"github.com/sarbotrikbasu/Financial-Tracker/internal/services/portfolio"
	"github.com/sarbotrikbasu/Financial-Tracker/internal/services/report"
	"github.com/sarbotrikbasu/Financial-Tracker/internal/storage/userdb"
)

// stubFundClient serves canned mutual fund data for handler tests.
type stubFundClient struct {
	searchResults []models.FundSearchResult
	meta          map[string]*models.FundMeta
	history       models.TimeSeries
}

func (c *stubFundClient) SearchFunds(context.Context, string) ([]models.FundSearchResult, error) {
	return c.searchResults, nil
}

func (c *stubFundClient) GetFundMeta(_ context.Context, schemeCode string) (*models.FundMeta, error) {
	if meta, ok := c.meta[schemeCode]; ok {
		return meta, nil
	}
	return nil, &mfapiError{schemeCode}
}

func (c *stubFundClient) GetNAVHistory(context.Context, string) (models.TimeSeries, error) {
	return c.history, nil
}

type mfapiError struct{ scheme string }

func (e *mfapiError) Error() string { return "scheme '" + e.scheme + "' not found" }

// stubStockClient serves canned stock data for handler tests.
type stubStockClient struct {
	meta    map[string]*models.StockMeta
	history models.TimeSeries
}

func (c *stubStockClient) LookupSymbol(_ context.Context, symbol string) (*models.StockMeta, error) {
	if meta, ok := c.meta[symbol]; ok {
		return meta, nil
	}
	return nil, &mfapiError{symbol}
}

func (c *stubStockClient) GetPriceHistory(context.Context, string) (models.TimeSeries, error) {
	return c.history, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testHistory() models.TimeSeries {
	return models.NewTimeSeries([]models.PricePoint{
		{Date: date(2023, 1, 1), Price: 100},
		{Date: date(2023, 6, 1), Price: 120},
	})
}

// newTestServer creates a server over a real store in a temp directory with
// stub market data clients.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := common.NewSilentLogger()
	cfg := common.NewDefaultConfig()
	cfg.Storage.Path = t.TempDir()

	store, err := userdb.NewStore(logger, cfg.Storage.Path)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	fund := &stubFundClient{
		searchResults: []models.FundSearchResult{{SchemeCode: "120503", SchemeName: "Axis Bluechip Fund"}},
		meta: map[string]*models.FundMeta{
			"120503": {SchemeCode: "120503", SchemeName: "Axis Bluechip Fund", FundHouse: "Axis Mutual Fund"},
		},
		history: testHistory(),
	}
	stock := &stubStockClient{
		meta: map[string]*models.StockMeta{
			"RELIANCE.NS": {Symbol: "RELIANCE.NS", Name: "Reliance Industries", Exchange: "NSI"},
		},
		history: testHistory(),
	}

	analyzerSvc := analyzer.NewService(logger, fund, stock)
	portfolioSvc := portfolio.NewService(logger, analyzerSvc, store)
	reportSvc := report.NewService(logger, store, portfolioSvc, fund, stock, nil)

	a := &app.App{
		Config:           cfg,
		Logger:           logger,
		UserStore:        store,
		FundClient:       fund,
		StockClient:      stock,
		AnalyzerService:  analyzerSvc,
		PortfolioService: portfolioSvc,
		ReportService:    reportSvc,
	}
	return &Server{app: a, logger: logger}
}

// serveRequest runs a request through the full route table.
func serveRequest(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	srv.registerRoutes(mux)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal JSON: %v", err)
	}
	return bytes.NewBuffer(data)
}

// createTestUser creates a user via the handler and returns its ID.
func createTestUser(t *testing.T, srv *Server, name, mobile, password string) string {
	t.Helper()
	body := jsonBody(t, map[string]string{
		"name":     name,
		"mobile":   mobile,
		"password": password,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/users", body)
	rec := httptest.NewRecorder()
	srv.handleUserCreate(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("createTestUser: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]interface{}
	json.NewDecoder(rec.Body).Decode(&resp)
	data := resp["data"].(map[string]interface{})
	return data["user_id"].(string)
}

func TestHandleUserCreate_Success(t *testing.T) {
	srv := newTestServer(t)

	body := jsonBody(t, map[string]string{
		"name":     "Asha Verma",
		"mobile":   "9876543210",
		"password": "secretpass",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/users", body)
	rec := httptest.NewRecorder()
	srv.handleUserCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]interface{}
	json.NewDecoder(rec.Body).Decode(&resp)
	if resp["status"] != "ok" {
		t.Errorf("expected status 'ok', got %v", resp["status"])
	}
	data := resp["data"].(map[string]interface{})
	if data["name"] != "Asha Verma" {
		t.Errorf("expected name 'Asha Verma', got %v", data["name"])
	}
	if data["user_id"] == "" {
		t.Error("expected user_id to be set")
	}
	if _, ok := data["PasswordHash"]; ok {
		t.Error("password hash must not appear in response")
	}
}

func TestHandleUserCreate_MissingFields(t *testing.T) {
	srv := newTestServer(t)

	cases := []map[string]string{
		{"mobile": "9876543210", "password": "x"},
		{"name": "Asha", "password": "x"},
		{"name": "Asha", "mobile": "9876543210"},
	}
	for i, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/users", jsonBody(t, body))
		rec := httptest.NewRecorder()
		srv.handleUserCreate(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("case %d: expected 400, got %d", i, rec.Code)
		}
	}
}

func TestHandleUserCreate_DuplicateMobile(t *testing.T) {
	srv := newTestServer(t)
	createTestUser(t, srv, "First", "9000000001", "pass1")

	req := httptest.NewRequest(http.MethodPost, "/api/users", jsonBody(t, map[string]string{
		"name":     "Second",
		"mobile":   "9000000001",
		"password": "pass2",
	}))
	rec := httptest.NewRecorder()
	srv.handleUserCreate(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHandleUserGetAndDelete(t *testing.T) {
	srv := newTestServer(t)
	userID := createTestUser(t, srv, "Ravi", "9000000002", "pass")

	rec := serveRequest(srv, httptest.NewRequest(http.MethodGet, "/api/users/"+userID, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = serveRequest(srv, httptest.NewRequest(http.MethodDelete, "/api/users/"+userID, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = serveRequest(srv, httptest.NewRequest(http.MethodGet, "/api/users/"+userID, nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestHandleUserList(t *testing.T) {
	srv := newTestServer(t)
	createTestUser(t, srv, "A", "9000000003", "pass")
	createTestUser(t, srv, "B", "9000000004", "pass")

	rec := serveRequest(srv, httptest.NewRequest(http.MethodGet, "/api/users", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data []models.User `json:"data"`
	}
	json.NewDecoder(rec.Body).Decode(&resp)
	if len(resp.Data) != 2 {
		t.Errorf("expected 2 users, got %d", len(resp.Data))
	}
}

func TestHandleAuthLogin(t *testing.T) {
	srv := newTestServer(t)
	createTestUser(t, srv, "Meera", "9000000005", "correct-horse")

	rec := serveRequest(srv, httptest.NewRequest(http.MethodPost, "/api/auth/login", jsonBody(t, map[string]string{
		"mobile":   "9000000005",
		"password": "correct-horse",
	})))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]interface{}
	json.NewDecoder(rec.Body).Decode(&resp)
	data := resp["data"].(map[string]interface{})
	if data["token"] == "" {
		t.Error("expected a session token")
	}
}

func TestHandleAuthLogin_WrongPassword(t *testing.T) {
	srv := newTestServer(t)
	createTestUser(t, srv, "Meera", "9000000006", "correct-horse")

	rec := serveRequest(srv, httptest.NewRequest(http.MethodPost, "/api/auth/login", jsonBody(t, map[string]string{
		"mobile":   "9000000006",
		"password": "battery-staple",
	})))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestHandleAuthLogin_UnknownMobile(t *testing.T) {
	srv := newTestServer(t)

	rec := serveRequest(srv, httptest.NewRequest(http.MethodPost, "/api/auth/login", jsonBody(t, map[string]string{
		"mobile":   "0000000000",
		"password": "whatever",
	})))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}
