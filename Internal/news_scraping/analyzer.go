package newsscraping

import (
	"fmt"
	"log"
	"time"

	"github.com/fazecat/thememaker/Internal/types"
)

// FallbackDataSource marks a SentimentResult that carries the neutral
// estimate instead of real news data.
const FallbackDataSource = "quant_based_estimation"

// StockSentimentAnalyzer produces a SentimentResult for one stock, either
// from fetched headlines or from the neutral fallback estimate. It is a
// total function: it never returns an error.
type StockSentimentAnalyzer struct {
	analyzer     *SentimentAnalyzer
	fetcher      NewsFetcher // nil means the capability is absent
	lookbackDays int
	maxArticles  int
}

func NewStockSentimentAnalyzer(keywords *KeywordSet, fetcher NewsFetcher, lookbackDays, maxArticles int) *StockSentimentAnalyzer {
	if lookbackDays <= 0 {
		lookbackDays = 7
	}
	if maxArticles <= 0 {
		maxArticles = 20
	}
	return &StockSentimentAnalyzer{
		analyzer:     NewSentimentAnalyzer(keywords),
		fetcher:      fetcher,
		lookbackDays: lookbackDays,
		maxArticles:  maxArticles,
	}
}

// AnalyzeStockSentiment scores a stock from recent headlines. When
// useRealData is false, the fetcher is absent, or the fetch yields
// nothing, it returns the fallback estimate instead.
func (a *StockSentimentAnalyzer) AnalyzeStockSentiment(stockCode, stockName string, useRealData bool) types.SentimentResult {
	var articles []types.NewsArticle
	if useRealData && a.fetcher != nil {
		articles = a.fetcher.FetchNews(stockName, a.lookbackDays)
		if len(articles) > a.maxArticles {
			articles = articles[:a.maxArticles]
		}
	}

	if len(articles) == 0 {
		return a.fallbackResult(stockCode, stockName)
	}

	score := a.analyzer.ScoreHeadlines(articles)

	positiveRatio := 0.0
	negativeRatio := 0.0
	if score > 0 {
		positiveRatio = score / 100
	} else if score < 0 {
		negativeRatio = -score / 100
	}

	log.Printf("Sentiment %s (%s): score=%.1f from %d headlines via %s",
		stockName, stockCode, score, len(articles), a.fetcher.Name())

	return types.SentimentResult{
		StockCode:      stockCode,
		StockName:      stockName,
		SentimentScore: score,
		SentimentLabel: ClassifySentiment(score),
		NewsCount:      len(articles),
		PositiveRatio:  positiveRatio,
		NegativeRatio:  negativeRatio,
		DataSource:     a.fetcher.Name(),
		AnalyzedAt:     time.Now(),
	}
}

// fallbackResult is the fixed no-data shape. It deliberately carries no
// directional signal; callers detect it through DataSource.
func (a *StockSentimentAnalyzer) fallbackResult(stockCode, stockName string) types.SentimentResult {
	return types.SentimentResult{
		StockCode:      stockCode,
		StockName:      stockName,
		SentimentScore: 50.0,
		SentimentLabel: types.Neutral,
		NewsCount:      0,
		PositiveRatio:  0.5,
		NegativeRatio:  0.5,
		DataSource:     FallbackDataSource,
		AnalyzedAt:     time.Now(),
		Note:           fmt.Sprintf("no news data for %s; returning neutral estimate", stockName),
	}
}
