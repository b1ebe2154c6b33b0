package kiwoom

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"token":      "test-token",
			"token_type": "Bearer",
			"expires_dt": "20991231235959",
		})
	})

	mux.HandleFunc("/api/dostk/thme", func(w http.ResponseWriter, r *http.Request) {
		switch r.Header.Get("api-id") {
		case apiIDThemeGroups:
			json.NewEncoder(w).Encode(map[string]interface{}{
				"return_code": 0,
				"thema_grp": []map[string]string{
					{"thema_grp_cd": "100", "thema_nm": "AI", "dt_prft_rt": "+20.00", "flu_rt": "+2.10", "stk_num": "15", "rising_stk_num": "9", "main_stk": "대표주"},
					{"thema_grp_cd": "101", "thema_nm": "반도체", "dt_prft_rt": "+8.00", "flu_rt": "+1.00", "stk_num": "30", "rising_stk_num": "12", "main_stk": "대표주"},
				},
			})
		case apiIDThemeStocks:
			json.NewEncoder(w).Encode(map[string]interface{}{
				"return_code": 0,
				"flu_rt":      "+2.10",
				"dt_prft_rt":  "+20.00",
				"thema_comp_stk": []map[string]string{
					{"stk_cd": "005930", "stk_nm": "삼성전자", "cur_prc": "+61500", "flu_sig": "2", "flu_rt": "+3.20", "acc_trde_qty": "1,234,567"},
				},
			})
		default:
			http.Error(w, "unknown api-id", http.StatusBadRequest)
		}
	})

	return httptest.NewServer(mux)
}

func TestClient_IssueToken(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	client := NewClient(server.URL, "app", "secret")
	if err := client.IssueToken(); err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	if client.token != "test-token" {
		t.Errorf("token = %q, want test-token", client.token)
	}
}

func TestClient_GetTopThemes(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	client := NewClient(server.URL, "app", "secret")

	themes, err := client.GetTopThemes(10)
	if err != nil {
		t.Fatalf("GetTopThemes failed: %v", err)
	}
	if len(themes) != 2 {
		t.Fatalf("expected 2 themes, got %d", len(themes))
	}
	if themes[0].ThemeName != "AI" || themes[0].ProfitRate != "+20.00" {
		t.Errorf("unexpected first theme: %+v", themes[0])
	}
}

func TestClient_GetTopThemes_Truncates(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	client := NewClient(server.URL, "app", "secret")

	themes, err := client.GetTopThemes(1)
	if err != nil {
		t.Fatalf("GetTopThemes failed: %v", err)
	}
	if len(themes) != 1 {
		t.Errorf("expected truncation to 1 theme, got %d", len(themes))
	}
}

func TestClient_GetThemeStocks(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	client := NewClient(server.URL, "app", "secret")

	payload, err := client.GetThemeStocks("100")
	if err != nil {
		t.Fatalf("GetThemeStocks failed: %v", err)
	}
	if len(payload.Stocks) != 1 {
		t.Fatalf("expected 1 stock, got %d", len(payload.Stocks))
	}
	stk := payload.Stocks[0]
	if stk.StockCode != "005930" || stk.FlucSign != "2" || stk.AccVolume != "1,234,567" {
		t.Errorf("unexpected stock record: %+v", stk)
	}
	if payload.ProfitRate != "+20.00" {
		t.Errorf("profit rate = %q, want +20.00", payload.ProfitRate)
	}
}

func TestClient_ErrorOnBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, "app", "secret")
	if _, err := client.GetTopThemes(10); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}
