package newsscraping

import (
	"testing"

	"github.com/fazecat/thememaker/Internal/types"
)

type fakeFetcher struct {
	articles []types.NewsArticle
	queries  []string
}

func (f *fakeFetcher) FetchNews(query string, days int) []types.NewsArticle {
	f.queries = append(f.queries, query)
	return f.articles
}

func (f *fakeFetcher) Name() string { return "fake_news" }

func assertFallback(t *testing.T, result types.SentimentResult) {
	t.Helper()
	if result.SentimentScore != 50.0 {
		t.Errorf("fallback score = %v, want 50.0", result.SentimentScore)
	}
	if result.SentimentLabel != types.Neutral {
		t.Errorf("fallback label = %s, want neutral", result.SentimentLabel)
	}
	if result.NewsCount != 0 {
		t.Errorf("fallback news count = %d, want 0", result.NewsCount)
	}
	if result.PositiveRatio != 0.5 || result.NegativeRatio != 0.5 {
		t.Errorf("fallback ratios = %v/%v, want 0.5/0.5", result.PositiveRatio, result.NegativeRatio)
	}
	if result.DataSource != FallbackDataSource {
		t.Errorf("fallback data source = %q, want %q", result.DataSource, FallbackDataSource)
	}
	if result.Note == "" {
		t.Error("fallback should carry an explanatory note")
	}
}

func TestAnalyzeStockSentiment_FallbackWhenRealDataDisabled(t *testing.T) {
	fetcher := &fakeFetcher{articles: []types.NewsArticle{{Title: "상승 호재"}}}
	analyzer := NewStockSentimentAnalyzer(testKeywordSet(t), fetcher, 7, 20)

	result := analyzer.AnalyzeStockSentiment("005930", "삼성전자", false)

	assertFallback(t, result)
	if len(fetcher.queries) != 0 {
		t.Errorf("fetcher should not be called when real data is disabled, got %d calls", len(fetcher.queries))
	}
}

func TestAnalyzeStockSentiment_FallbackWhenFetcherAbsent(t *testing.T) {
	analyzer := NewStockSentimentAnalyzer(testKeywordSet(t), nil, 7, 20)
	assertFallback(t, analyzer.AnalyzeStockSentiment("005930", "삼성전자", true))
}

func TestAnalyzeStockSentiment_FallbackWhenFetchEmpty(t *testing.T) {
	analyzer := NewStockSentimentAnalyzer(testKeywordSet(t), &fakeFetcher{}, 7, 20)
	assertFallback(t, analyzer.AnalyzeStockSentiment("005930", "삼성전자", true))
}

func TestAnalyzeStockSentiment_RealData(t *testing.T) {
	fetcher := &fakeFetcher{articles: []types.NewsArticle{
		{Title: "삼성전자 실적 개선 기대"},
		{Title: "SK하이닉스 거래 지연 우려"},
		{Title: "NAVER 신고가 돌파 성공"},
	}}
	analyzer := NewStockSentimentAnalyzer(testKeywordSet(t), fetcher, 7, 20)

	result := analyzer.AnalyzeStockSentiment("005930", "삼성전자", true)

	if result.SentimentScore != 10.0 {
		t.Errorf("score = %v, want 10.0", result.SentimentScore)
	}
	if result.SentimentLabel != types.Neutral {
		t.Errorf("label = %s, want neutral", result.SentimentLabel)
	}
	if result.NewsCount != 3 {
		t.Errorf("news count = %d, want 3", result.NewsCount)
	}
	if result.PositiveRatio != 0.1 {
		t.Errorf("positive ratio = %v, want 0.1", result.PositiveRatio)
	}
	if result.NegativeRatio != 0 {
		t.Errorf("negative ratio = %v, want 0", result.NegativeRatio)
	}
	if result.DataSource != "fake_news" {
		t.Errorf("data source = %q, want fetcher name", result.DataSource)
	}
	if len(fetcher.queries) != 1 || fetcher.queries[0] != "삼성전자" {
		t.Errorf("fetcher queried with %v, want stock name", fetcher.queries)
	}
}

func TestAnalyzeStockSentiment_NegativeScoreRatios(t *testing.T) {
	fetcher := &fakeFetcher{articles: []types.NewsArticle{
		{Title: "급락 우려 확산"},
		{Title: "적자 전환 손실 소송"},
	}}
	analyzer := NewStockSentimentAnalyzer(testKeywordSet(t), fetcher, 7, 20)

	result := analyzer.AnalyzeStockSentiment("000660", "SK하이닉스", true)

	if result.SentimentScore >= 0 {
		t.Fatalf("expected negative score, got %v", result.SentimentScore)
	}
	if result.PositiveRatio != 0 {
		t.Errorf("positive ratio = %v, want 0 for negative score", result.PositiveRatio)
	}
	want := -result.SentimentScore / 100
	if result.NegativeRatio != want {
		t.Errorf("negative ratio = %v, want %v", result.NegativeRatio, want)
	}
}

func TestAnalyzeStockSentiment_RetainsAtMostMaxArticles(t *testing.T) {
	articles := make([]types.NewsArticle, 25)
	for i := range articles {
		articles[i] = types.NewsArticle{Title: "상승 기대"}
	}
	analyzer := NewStockSentimentAnalyzer(testKeywordSet(t), &fakeFetcher{articles: articles}, 7, 20)

	result := analyzer.AnalyzeStockSentiment("035420", "NAVER", true)
	if result.NewsCount != 20 {
		t.Errorf("news count = %d, want 20", result.NewsCount)
	}
}

func TestAnalyzeStockSentiment_Idempotent(t *testing.T) {
	fetcher := &fakeFetcher{articles: []types.NewsArticle{
		{Title: "수주 계약 성공"},
		{Title: "부진 우려"},
	}}
	analyzer := NewStockSentimentAnalyzer(testKeywordSet(t), fetcher, 7, 20)

	first := analyzer.AnalyzeStockSentiment("005380", "현대차", true)
	second := analyzer.AnalyzeStockSentiment("005380", "현대차", true)

	// identical apart from the timestamp
	first.AnalyzedAt = second.AnalyzedAt
	if first != second {
		t.Errorf("results differ for identical input:\n%+v\n%+v", first, second)
	}
}
