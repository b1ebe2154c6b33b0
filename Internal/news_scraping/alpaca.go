package newsscraping

import (
	"log"
	"os"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"

	"github.com/fazecat/thememaker/Internal/types"
)

// adrSymbols maps KRX display names to their US-listed ADR tickers.
// Only these names get supplemental English-language coverage.
var adrSymbols = map[string]string{
	"POSCO홀딩스": "PKX",
	"KB금융":     "KB",
	"신한지주":     "SHG",
	"우리금융지주":   "WF",
	"SK텔레콤":    "SKM",
	"KT":       "KT",
	"LG디스플레이":  "LPL",
	"한국전력":     "KEP",
}

// AlpacaNewsFetcher pulls headlines from Alpaca's news API for KRX names
// that trade in the US as ADRs. The query is the stock's display name;
// names without an ADR listing get zero articles.
type AlpacaNewsFetcher struct {
	client      *marketdata.Client
	maxArticles int
}

// NewAlpacaNewsFetcher returns nil when Alpaca keys are not configured;
// the capability is decided here, at construction, not per call.
func NewAlpacaNewsFetcher(maxArticles int) *AlpacaNewsFetcher {
	apiKey := os.Getenv("ALPACA_API_KEY")
	secretKey := os.Getenv("ALPACA_API_SECRET")
	if apiKey == "" || secretKey == "" {
		return nil
	}
	if maxArticles <= 0 {
		maxArticles = 20
	}

	return &AlpacaNewsFetcher{
		client: marketdata.NewClient(marketdata.ClientOpts{
			APIKey:    apiKey,
			APISecret: secretKey,
		}),
		maxArticles: maxArticles,
	}
}

func (f *AlpacaNewsFetcher) Name() string { return "alpaca_news" }

func (f *AlpacaNewsFetcher) FetchNews(query string, days int) []types.NewsArticle {
	symbol, ok := adrSymbols[query]
	if !ok {
		return nil
	}
	if days <= 0 {
		days = 7
	}

	news, err := f.client.GetNews(marketdata.GetNewsRequest{
		Symbols:    []string{symbol},
		Start:      time.Now().AddDate(0, 0, -days),
		TotalLimit: f.maxArticles,
	})
	if err != nil {
		log.Printf("Alpaca news: fetch failed for %s (%s): %v", query, symbol, err)
		return nil
	}

	articles := make([]types.NewsArticle, 0, len(news))
	for _, item := range news {
		articles = append(articles, types.NewsArticle{
			Title:  item.Headline,
			URL:    item.URL,
			Source: "alpaca_news",
		})
	}
	return articles
}
