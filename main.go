package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	datafeed "github.com/fazecat/thememaker/Internal/database"
	"github.com/fazecat/thememaker/Internal/kiwoom"
	newsscraping "github.com/fazecat/thememaker/Internal/news_scraping"
	"github.com/fazecat/thememaker/Internal/theme"
	"github.com/fazecat/thememaker/Internal/types"
	"github.com/fazecat/thememaker/Internal/utils"
	"github.com/fazecat/thememaker/Internal/utils/config"
)

// One full analysis run: rank theme candidates, score each candidate's
// news sentiment, keep the ones where both pipelines agree, persist.
func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("Warning: could not load config.yaml (%v), using defaults", err)
		cfg = config.DefaultConfig()
	}

	err = datafeed.InitDatabase()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer datafeed.CloseDatabase()

	status, isOpen := utils.CheckMarketStatus(time.Now())
	fmt.Printf("Market Status: %s (Open: %v)\n\n", status, isOpen)

	keywords, err := newsscraping.NewKeywordSet(cfg.Sentiment.PositiveKeywords, cfg.Sentiment.NegativeKeywords)
	if err != nil {
		log.Fatalf("Invalid keyword configuration: %v", err)
	}

	var fetcher newsscraping.NewsFetcher = newsscraping.NewNaverNewsClient(
		time.Duration(cfg.Sentiment.FetchTimeoutSeconds)*time.Second,
		cfg.Sentiment.MaxArticles,
	)
	if alpacaFetcher := newsscraping.NewAlpacaNewsFetcher(cfg.Sentiment.MaxArticles); alpacaFetcher != nil {
		log.Println("Alpaca news fetcher available for ADR-listed names")
		fetcher = combinedFetcher{primary: fetcher, secondary: alpacaFetcher}
	}

	analyzer := newsscraping.NewStockSentimentAnalyzer(keywords, fetcher,
		cfg.Sentiment.LookbackDays, cfg.Sentiment.MaxArticles)

	client := kiwoom.NewClient(cfg.Kiwoom.BaseURL,
		os.Getenv("KIWOOM_APP_KEY"), os.Getenv("KIWOOM_SECRET_KEY"))
	if err := client.IssueToken(); err != nil {
		log.Fatalf("Kiwoom token issue failed: %v", err)
	}
	ranker := theme.NewRanker(client)

	candidates := ranker.GetThemeInvestmentCandidates(
		cfg.Themes.CandidateProfit, cfg.Themes.CandidateChange, cfg.Themes.CandidateLimit)
	log.Printf("Theme pipeline produced %d candidate(s)", len(candidates))

	ctx := context.Background()
	var selected []types.CandidateStock

	for _, c := range candidates {
		result := analyzer.AnalyzeStockSentiment(c.StockCode, c.StockName, true)

		if err := datafeed.SaveSentimentResult(ctx, result); err != nil {
			log.Printf("Warning: could not save sentiment for %s: %v", c.StockCode, err)
		}

		// fallback results carry no signal; keep those candidates on theme
		// strength alone, drop only real negative sentiment
		if result.DataSource != newsscraping.FallbackDataSource && result.SentimentScore < -20 {
			log.Printf("Dropping %s (%s): negative news sentiment %.1f",
				c.StockName, c.StockCode, result.SentimentScore)
			continue
		}
		selected = append(selected, c)
	}

	if len(selected) > 0 {
		if err := datafeed.SaveCandidates(ctx, selected); err != nil {
			log.Printf("Warning: could not save candidates: %v", err)
		}
	}

	fmt.Printf("\nFinal selection: %d candidate(s)\n", len(selected))
	for i, c := range selected {
		fmt.Printf("%2d. %s (%s)  %d KRW  %+.2f%%  [%s %+.2f%%]\n",
			i+1, c.StockName, c.StockCode, c.CurrentPrice, c.ChangeRate,
			c.ThemeName, c.ThemeProfitRate)
	}
}

// combinedFetcher tries the primary source first and falls back to the
// secondary (ADR coverage) when the primary finds nothing.
type combinedFetcher struct {
	primary   newsscraping.NewsFetcher
	secondary newsscraping.NewsFetcher
}

func (c combinedFetcher) FetchNews(query string, days int) []types.NewsArticle {
	if articles := c.primary.FetchNews(query, days); len(articles) > 0 {
		return articles
	}
	return c.secondary.FetchNews(query, days)
}

func (c combinedFetcher) Name() string { return c.primary.Name() }
