package internal

import (
	"encoding/json"
	"net/http"

	newsscraping "github.com/fazecat/thememaker/Internal/news_scraping"
	"github.com/fazecat/thememaker/Internal/theme"
	"github.com/fazecat/thememaker/Internal/utils/config"
)

type API struct {
	Sentiment  *newsscraping.StockSentimentAnalyzer
	Themes     *theme.Ranker
	Config     *config.Config
	JWTManager *JWTManager
}

func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}
