package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"brokerfolio/internal/config"
	"brokerfolio/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type apiClient struct {
	t      *testing.T
	router *gin.Engine
}

func newAPIClient(t *testing.T) *apiClient {
	t.Helper()
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })
	return &apiClient{t: t, router: New(db, &config.Config{ReportCurrency: "BRL", CORSAllowedOrigin: "*"})}
}

func (a *apiClient) do(method, path string, body interface{}, wantStatus int) map[string]interface{} {
	a.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			a.t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	if w.Code != wantStatus {
		a.t.Fatalf("%s %s: expected %d, got %d: %s", method, path, wantStatus, w.Code, w.Body.String())
	}
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		a.t.Fatalf("%s %s: decode response: %v", method, path, err)
	}
	return out
}

// createdID extracts obj.id from a {"<key>": {...}} response.
func createdID(t *testing.T, resp map[string]interface{}, key string) string {
	t.Helper()
	obj, ok := resp[key].(map[string]interface{})
	if !ok {
		t.Fatalf("response has no %q object: %v", key, resp)
	}
	id, _ := obj["id"].(string)
	if id == "" {
		t.Fatalf("%q has no id: %v", key, obj)
	}
	return id
}

func assertDecimal(t *testing.T, label string, got interface{}, want string) {
	t.Helper()
	s, ok := got.(string)
	if !ok {
		t.Fatalf("%s: expected decimal string, got %T (%v)", label, got, got)
	}
	if !decimal.RequireFromString(s).Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s: expected %s, got %s", label, want, s)
	}
}

func TestHealth(t *testing.T) {
	api := newAPIClient(t)
	resp := api.do(http.MethodGet, "/api/health", nil, http.StatusOK)
	if resp["status"] != "ok" {
		t.Errorf("expected status ok, got %v", resp["status"])
	}
}

func TestTradeLifecycle(t *testing.T) {
	api := newAPIClient(t)

	typeID := createdID(t, api.do(http.MethodPost, "/api/v1/asset-types",
		map[string]interface{}{"name": "Stocks"}, http.StatusCreated), "asset_type")
	assetID := createdID(t, api.do(http.MethodPost, "/api/v1/assets",
		map[string]interface{}{"ticker": "petr4", "name": "Petrobras", "asset_type_id": typeID}, http.StatusCreated), "asset")
	brokerID := createdID(t, api.do(http.MethodPost, "/api/v1/brokers",
		map[string]interface{}{"name": "Clear", "code": "CLR"}, http.StatusCreated), "broker")

	trades := []map[string]interface{}{
		{"operation": "buy", "quantity": 10, "unit_price": "5.00", "transaction_date": "2024-01-10"},
		{"operation": "buy", "quantity": 5, "unit_price": "8.00", "transaction_date": "2024-02-10"},
		{"operation": "sell", "quantity": 6, "unit_price": "7.00", "transaction_date": "2024-03-10"},
	}
	for _, trade := range trades {
		trade["asset_id"] = assetID
		trade["broker_id"] = brokerID
		api.do(http.MethodPost, "/api/v1/transactions", trade, http.StatusCreated)
	}

	t.Run("ticker lookup is case-insensitive", func(t *testing.T) {
		resp := api.do(http.MethodGet, "/api/v1/assets/ticker/PETR4", nil, http.StatusOK)
		if createdID(t, resp, "asset") != assetID {
			t.Error("expected ticker lookup to return the created asset")
		}
	})

	t.Run("asset type search and stats", func(t *testing.T) {
		resp := api.do(http.MethodGet, "/api/v1/asset-types/search?q=stock", nil, http.StatusOK)
		if data, _ := resp["data"].([]interface{}); len(data) != 1 {
			t.Errorf("expected 1 matching asset type, got %v", resp["data"])
		}
		resp = api.do(http.MethodGet, "/api/v1/asset-types/stats", nil, http.StatusOK)
		stats, _ := resp["stats"].(map[string]interface{})
		if stats["total_asset_types"] != float64(1) || stats["asset_types_with_assets"] != float64(1) {
			t.Errorf("unexpected asset type stats %v", resp["stats"])
		}
	})

	t.Run("position report", func(t *testing.T) {
		resp := api.do(http.MethodGet, "/api/v1/reports/position", nil, http.StatusOK)
		lines, _ := resp["posicaoAtual"].([]interface{})
		if len(lines) != 1 {
			t.Fatalf("expected 1 position, got %v", resp["posicaoAtual"])
		}
		line := lines[0].(map[string]interface{})
		if line["ticker"] != "PETR4" || line["quantidadeTotal"] != float64(9) {
			t.Errorf("unexpected position line %v", line)
		}
		assertDecimal(t, "valorTotalInvestido", line["valorTotalInvestido"], "48")
		assertDecimal(t, "totalInvestido", resp["totalInvestido"], "48")
	})

	t.Run("movement report for a month", func(t *testing.T) {
		resp := api.do(http.MethodGet, "/api/v1/reports/movement?period=monthly&year=2024&month=3", nil, http.StatusOK)
		assertDecimal(t, "totalCompras", resp["totalCompras"], "0")
		assertDecimal(t, "totalVendas", resp["totalVendas"], "42")
		assertDecimal(t, "saldo", resp["saldo"], "42")
	})

	t.Run("transaction list filtered by operation", func(t *testing.T) {
		resp := api.do(http.MethodGet, "/api/v1/transactions?operation=buy", nil, http.StatusOK)
		if resp["total_items"] != float64(2) {
			t.Errorf("expected 2 buys, got %v", resp["total_items"])
		}
	})

	t.Run("broker summary", func(t *testing.T) {
		resp := api.do(http.MethodGet, "/api/v1/brokers/"+brokerID+"/summary", nil, http.StatusOK)
		summary := resp["summary"].(map[string]interface{})
		if summary["total_operations"] != float64(3) {
			t.Errorf("expected 3 operations, got %v", summary["total_operations"])
		}
		assertDecimal(t, "net_invested", summary["net_invested"], "48")
	})

	t.Run("referenced broker cannot be deleted", func(t *testing.T) {
		resp := api.do(http.MethodDelete, "/api/v1/brokers/"+brokerID, nil, http.StatusConflict)
		errObj := resp["error"].(map[string]interface{})
		if errObj["code"] != "BROKER_IN_USE" {
			t.Errorf("expected BROKER_IN_USE, got %v", errObj["code"])
		}
	})

	t.Run("report for unknown broker", func(t *testing.T) {
		api.do(http.MethodGet, "/api/v1/reports/position?broker_id=01890a5d-ac96-774b-bcce-b302099a8057", nil, http.StatusNotFound)
	})
}
