package internal

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// HandleGetSentiment analyzes one stock's news sentiment.
// GET /api/sentiment/{code}?name=삼성전자&real=true
func (api *API) HandleGetSentiment(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		WriteError(w, http.StatusBadRequest, "stock code is required")
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		name = code
	}
	useRealData := r.URL.Query().Get("real") != "false"

	result := api.Sentiment.AnalyzeStockSentiment(code, name, useRealData)

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    result,
	})
}
