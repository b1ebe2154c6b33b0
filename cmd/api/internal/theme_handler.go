package internal

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func queryFloat(r *http.Request, key string, fallback float64) float64 {
	if raw := r.URL.Query().Get(key); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
	}
	return fallback
}

func queryInt(r *http.Request, key string, fallback int) int {
	if raw := r.URL.Query().Get(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}

// HandleGetHotThemes lists themes above the profit-rate floor.
// GET /api/themes/hot?limit=10&min_profit=5.0
func (api *API) HandleGetHotThemes(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", api.Config.Themes.HotThemeLimit)
	minProfit := queryFloat(r, "min_profit", api.Config.Themes.MinProfitRate)

	themes := api.Themes.FindHotThemes(limit, minProfit)

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(themes),
		"data":    themes,
	})
}

// HandleGetThemeAnalysis breaks one theme down into its constituents.
// GET /api/themes/{code}/analysis?name=AI
func (api *API) HandleGetThemeAnalysis(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		WriteError(w, http.StatusBadRequest, "theme code is required")
		return
	}

	analysis := api.Themes.AnalyzeThemeStocks(code, r.URL.Query().Get("name"))

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    analysis,
	})
}

// HandleGetCandidates runs the full theme pipeline and returns the
// ranked candidate list.
// GET /api/candidates?min_theme_profit=10&min_change=2&limit=5
func (api *API) HandleGetCandidates(w http.ResponseWriter, r *http.Request) {
	minThemeProfit := queryFloat(r, "min_theme_profit", api.Config.Themes.CandidateProfit)
	minChange := queryFloat(r, "min_change", api.Config.Themes.CandidateChange)
	limit := queryInt(r, "limit", api.Config.Themes.CandidateLimit)

	candidates := api.Themes.GetThemeInvestmentCandidates(minThemeProfit, minChange, limit)

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(candidates),
		"data":    candidates,
	})
}
