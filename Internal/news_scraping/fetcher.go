package newsscraping

import "github.com/fazecat/thememaker/Internal/types"

// NewsFetcher is the news-search capability consumed by the sentiment
// analyzer. Implementations never return an error: any failure yields an
// empty slice, which the analyzer treats the same as "no news found".
// days bounds the search query only; fetched articles are not re-filtered
// by publication date.
type NewsFetcher interface {
	FetchNews(query string, days int) []types.NewsArticle
	Name() string
}

// NoopFetcher is the absent-capability implementation. Wiring it in (or a
// nil fetcher) routes every analysis to the fallback estimate.
type NoopFetcher struct{}

func (NoopFetcher) FetchNews(query string, days int) []types.NewsArticle { return nil }

func (NoopFetcher) Name() string { return "none" }
