package newsscraping

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/fazecat/thememaker/Internal/types"
)

const naverSearchURL = "https://search.naver.com/search.naver"

// NaverNewsClient scrapes headlines from Naver news search. It is a
// best-effort fetcher: every failure (network, non-200, parse) is logged
// and reported as zero articles, never as an error.
type NaverNewsClient struct {
	httpClient  *http.Client
	maxArticles int
}

func NewNaverNewsClient(timeout time.Duration, maxArticles int) *NaverNewsClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if maxArticles <= 0 {
		maxArticles = 20
	}
	return &NaverNewsClient{
		httpClient:  &http.Client{Timeout: timeout},
		maxArticles: maxArticles,
	}
}

func (c *NaverNewsClient) Name() string { return "naver_news" }

func (c *NaverNewsClient) FetchNews(query string, days int) []types.NewsArticle {
	if days <= 0 {
		days = 7
	}

	// nso=so:r,p:7d sorts by recency and bounds the search window
	searchURL := fmt.Sprintf("%s?where=news&query=%s&sort=1&nso=so:r,p:%dd",
		naverSearchURL, url.QueryEscape(query), days)

	req, err := http.NewRequest("GET", searchURL, nil)
	if err != nil {
		log.Printf("Naver news: failed to build request for %q: %v", query, err)
		return nil
	}
	// Naver serves a degraded page to unidentified clients
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64)")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("Naver news: fetch failed for %q: %v", query, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Naver news: status %d for %q", resp.StatusCode, query)
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		log.Printf("Naver news: parse failed for %q: %v", query, err)
		return nil
	}

	var articles []types.NewsArticle
	doc.Find("div.news_area").EachWithBreak(func(i int, s *goquery.Selection) bool {
		titleLink := s.Find("a.news_tit").First()
		title := strings.TrimSpace(titleLink.AttrOr("title", titleLink.Text()))
		if title == "" {
			return true
		}

		articles = append(articles, types.NewsArticle{
			Title:  title,
			URL:    titleLink.AttrOr("href", ""),
			Source: strings.TrimSpace(s.Find("a.info.press").First().Text()),
		})
		return len(articles) < c.maxArticles
	})

	return articles
}
