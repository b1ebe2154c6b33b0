package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/fazecat/thememaker/Internal/kiwoom"
	newsscraping "github.com/fazecat/thememaker/Internal/news_scraping"
	"github.com/fazecat/thememaker/Internal/theme"
	"github.com/fazecat/thememaker/Internal/utils/config"
	"github.com/fazecat/thememaker/cmd/api/internal"
)

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../../.env")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("Warning: could not load config.yaml (%v), using defaults", err)
		cfg = config.DefaultConfig()
	}

	keywords, err := newsscraping.NewKeywordSet(cfg.Sentiment.PositiveKeywords, cfg.Sentiment.NegativeKeywords)
	if err != nil {
		log.Fatalf("Invalid keyword configuration: %v", err)
	}

	// Primary news source is Naver; Alpaca covers ADR names when keys are set
	var fetcher newsscraping.NewsFetcher = newsscraping.NewNaverNewsClient(
		time.Duration(cfg.Sentiment.FetchTimeoutSeconds)*time.Second,
		cfg.Sentiment.MaxArticles,
	)
	if os.Getenv("NEWS_FETCH_DISABLED") == "true" {
		fetcher = newsscraping.NoopFetcher{}
		log.Println("News fetching disabled - sentiment will use the neutral estimate")
	}

	sentiment := newsscraping.NewStockSentimentAnalyzer(keywords, fetcher,
		cfg.Sentiment.LookbackDays, cfg.Sentiment.MaxArticles)

	kiwoomClient := kiwoom.NewClient(cfg.Kiwoom.BaseURL,
		os.Getenv("KIWOOM_APP_KEY"), os.Getenv("KIWOOM_SECRET_KEY"))
	if err := kiwoomClient.IssueToken(); err != nil {
		log.Printf("Warning: Kiwoom token issue failed (%v) - theme endpoints will return empty results", err)
	}
	ranker := theme.NewRanker(kiwoomClient)

	jwtManager := internal.NewJWTManager()

	apiServer := &internal.API{
		Sentiment:  sentiment,
		Themes:     ranker,
		Config:     cfg,
		JWTManager: jwtManager,
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(internal.CorsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    "healthy",
		})
	})

	// Public routes
	r.Post("/api/token", apiServer.HandleGenerateToken)

	// Analysis routes
	r.Group(func(r chi.Router) {
		r.Use(internal.JWTAuthMiddleware(jwtManager))

		r.Get("/api/sentiment/{code}", apiServer.HandleGetSentiment)
		r.Get("/api/themes/hot", apiServer.HandleGetHotThemes)
		r.Get("/api/themes/{code}/analysis", apiServer.HandleGetThemeAnalysis)
		r.Get("/api/candidates", apiServer.HandleGetCandidates)
	})

	log.Println("Starting API server on :8080")
	if err := http.ListenAndServe(":8080", r); err != nil {
		log.Fatal(err)
	}
}
