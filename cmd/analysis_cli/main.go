package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/fazecat/thememaker/Internal/kiwoom"
	newsscraping "github.com/fazecat/thememaker/Internal/news_scraping"
	"github.com/fazecat/thememaker/Internal/theme"
	"github.com/fazecat/thememaker/Internal/types"
	"github.com/fazecat/thememaker/Internal/utils/config"
)

var sampleStocks = []struct {
	code string
	name string
}{
	{"005930", "삼성전자"},
	{"000660", "SK하이닉스"},
	{"035420", "NAVER"},
}

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../../.env")

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Config load failed (%v), using defaults\n", err)
		cfg = config.DefaultConfig()
	}

	keywords, err := newsscraping.NewKeywordSet(cfg.Sentiment.PositiveKeywords, cfg.Sentiment.NegativeKeywords)
	if err != nil {
		fmt.Printf("Invalid keyword configuration: %v\n", err)
		os.Exit(1)
	}

	fetcher := newsscraping.NewNaverNewsClient(
		time.Duration(cfg.Sentiment.FetchTimeoutSeconds)*time.Second,
		cfg.Sentiment.MaxArticles,
	)
	analyzer := newsscraping.NewStockSentimentAnalyzer(keywords, fetcher,
		cfg.Sentiment.LookbackDays, cfg.Sentiment.MaxArticles)

	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Println("NEWS SENTIMENT ANALYSIS")
	fmt.Println(strings.Repeat("=", 80))

	for _, stock := range sampleStocks {
		result := analyzer.AnalyzeStockSentiment(stock.code, stock.name, true)
		printSentiment(result)
	}

	appKey := os.Getenv("KIWOOM_APP_KEY")
	secretKey := os.Getenv("KIWOOM_SECRET_KEY")
	if appKey == "" || secretKey == "" {
		fmt.Println("\nKIWOOM_APP_KEY / KIWOOM_SECRET_KEY not set - skipping theme analysis")
		return
	}

	client := kiwoom.NewClient(cfg.Kiwoom.BaseURL, appKey, secretKey)
	if err := client.IssueToken(); err != nil {
		fmt.Printf("\nKiwoom token issue failed: %v - skipping theme analysis\n", err)
		return
	}
	ranker := theme.NewRanker(client)

	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Println("HOT THEMES")
	fmt.Println(strings.Repeat("=", 80))

	hot := ranker.FindHotThemes(cfg.Themes.HotThemeLimit, cfg.Themes.MinProfitRate)
	if len(hot) == 0 {
		fmt.Println("No themes above the profit-rate floor right now.")
	}
	for i, th := range hot {
		fmt.Printf("%2d. %-20s profit %+6.2f%%  change %+6.2f%%  rising %d/%d  main: %s\n",
			i+1, th.ThemeName, th.ProfitRate, th.ChangeRate, th.RisingCount, th.StockCount, th.MainStock)
	}

	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Println("INVESTMENT CANDIDATES")
	fmt.Println(strings.Repeat("=", 80))

	candidates := ranker.GetThemeInvestmentCandidates(
		cfg.Themes.CandidateProfit, cfg.Themes.CandidateChange, cfg.Themes.CandidateLimit)
	if len(candidates) == 0 {
		fmt.Println("No candidates passed the filters.")
	}
	for i, c := range candidates {
		fmt.Printf("%2d. %s (%s)  %d KRW  %+.2f%%  vol %d  [%s %+.2f%%]\n",
			i+1, c.StockName, c.StockCode, c.CurrentPrice, c.ChangeRate, c.Volume,
			c.ThemeName, c.ThemeProfitRate)
	}

	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Println("Analysis Complete!")
	fmt.Println(strings.Repeat("=", 80))
}

func printSentiment(r types.SentimentResult) {
	fmt.Printf("\n %s (%s)\n", r.StockName, r.StockCode)
	fmt.Printf(" Score: %.1f  Label: %s  Articles: %d\n", r.SentimentScore, r.SentimentLabel, r.NewsCount)
	fmt.Printf(" Source: %s\n", r.DataSource)
	if r.Note != "" {
		fmt.Printf(" Note: %s\n", r.Note)
	}
}
