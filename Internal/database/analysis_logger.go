package datafeed

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fazecat/thememaker/Internal/types"
)

// The core pipelines never persist anything themselves; callers that want
// history store results through these writers.

func SaveSentimentResult(ctx context.Context, r types.SentimentResult) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}

	_, err := DB.ExecContext(ctx, `
		INSERT INTO sentiment_history
			(stock_code, stock_name, sentiment_score, sentiment_label, news_count,
			 positive_ratio, negative_ratio, data_source, note, analyzed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		r.StockCode, r.StockName, r.SentimentScore, string(r.SentimentLabel), r.NewsCount,
		r.PositiveRatio, r.NegativeRatio, r.DataSource, r.Note, r.AnalyzedAt)
	if err != nil {
		return fmt.Errorf("failed to save sentiment result: %w", err)
	}

	log.Printf("Sentiment saved: %s (%s) score=%.1f label=%s",
		r.StockName, r.StockCode, r.SentimentScore, r.SentimentLabel)
	return nil
}

func SaveCandidates(ctx context.Context, candidates []types.CandidateStock) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}

	capturedAt := time.Now()
	for _, c := range candidates {
		_, err := DB.ExecContext(ctx, `
			INSERT INTO candidate_snapshots
				(stock_code, stock_name, current_price, change_rate, volume,
				 theme_name, theme_profit_rate, captured_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			c.StockCode, c.StockName, c.CurrentPrice, c.ChangeRate, c.Volume,
			c.ThemeName, c.ThemeProfitRate, capturedAt)
		if err != nil {
			return fmt.Errorf("failed to save candidate %s: %w", c.StockCode, err)
		}
	}

	log.Printf("✅ %d candidate(s) saved to database", len(candidates))
	return nil
}

func GetRecentSentiment(ctx context.Context, stockCode string, limit int) ([]types.SentimentResult, error) {
	if DB == nil {
		return nil, fmt.Errorf("database not initialized")
	}
	if limit <= 0 {
		limit = 10
	}

	rows, err := DB.QueryContext(ctx, `
		SELECT stock_code, stock_name, sentiment_score, sentiment_label, news_count,
		       positive_ratio, negative_ratio, data_source, note, analyzed_at
		FROM sentiment_history
		WHERE stock_code = $1
		ORDER BY analyzed_at DESC
		LIMIT $2`, stockCode, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sentiment history: %w", err)
	}
	defer rows.Close()

	var results []types.SentimentResult
	for rows.Next() {
		var r types.SentimentResult
		var label string
		err := rows.Scan(&r.StockCode, &r.StockName, &r.SentimentScore, &label, &r.NewsCount,
			&r.PositiveRatio, &r.NegativeRatio, &r.DataSource, &r.Note, &r.AnalyzedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sentiment row: %w", err)
		}
		r.SentimentLabel = types.SentimentLabel(label)
		results = append(results, r)
	}
	return results, rows.Err()
}
