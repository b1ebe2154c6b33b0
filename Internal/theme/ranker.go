package theme

import (
	"log"
	"sort"

	"github.com/fazecat/thememaker/Internal/types"
)

// flu_sig value marking upward movement in Kiwoom responses
const risingSign = "2"

const (
	topStockCount        = 5
	defaultHotThemeLimit = 10
)

// DataSource is the external theme capability. Both calls block on the
// backend; raw records come back with string-encoded numerics.
type DataSource interface {
	GetTopThemes(limit int) ([]types.ThemeGroupRecord, error)
	GetThemeStocks(themeCode string) (*types.ThemeStocksPayload, error)
}

// Ranker discovers hot themes and filters their constituents into trade
// candidates. Every public method is best-effort: on any failure it logs
// and returns an empty result rather than surfacing an error.
type Ranker struct {
	source DataSource
}

func NewRanker(source DataSource) *Ranker {
	return &Ranker{source: source}
}

// FindHotThemes returns up to limit themes whose profit rate is at least
// minProfitRate, sorted descending by profit rate.
func (r *Ranker) FindHotThemes(limit int, minProfitRate float64) []types.ThemeSummary {
	if limit <= 0 {
		limit = defaultHotThemeLimit
	}

	// over-fetch so the profit filter still leaves enough themes
	records, err := r.source.GetTopThemes(limit * 2)
	if err != nil {
		log.Printf("Theme ranker: fetching top themes failed: %v", err)
		return []types.ThemeSummary{}
	}

	hot := make([]types.ThemeSummary, 0, len(records))
	for _, rec := range records {
		profitRate := ParseRate(rec.ProfitRate)
		if profitRate < minProfitRate {
			continue
		}
		hot = append(hot, types.ThemeSummary{
			ThemeCode:   rec.ThemeCode,
			ThemeName:   rec.ThemeName,
			ProfitRate:  profitRate,
			ChangeRate:  ParseRate(rec.FlucRate),
			StockCount:  ParseCount(rec.StockCount),
			RisingCount: ParseCount(rec.RisingCount),
			MainStock:   rec.MainStock,
		})
	}

	sort.Slice(hot, func(i, j int) bool {
		return hot[i].ProfitRate > hot[j].ProfitRate
	})

	if len(hot) > limit {
		hot = hot[:limit]
	}
	return hot
}

// AnalyzeThemeStocks breaks one theme down into its rising constituents
// and its top stocks by volume and by change rate. An empty analysis
// means "skip this theme".
func (r *Ranker) AnalyzeThemeStocks(themeCode, themeName string) types.ThemeAnalysis {
	analysis := types.ThemeAnalysis{
		ThemeCode: themeCode,
		ThemeName: themeName,
	}

	payload, err := r.source.GetThemeStocks(themeCode)
	if err != nil {
		log.Printf("Theme ranker: fetching stocks for theme %s failed: %v", themeCode, err)
		return analysis
	}
	if payload == nil || len(payload.Stocks) == 0 {
		return analysis
	}

	var rising []types.ThemeStockRecord
	for _, stk := range payload.Stocks {
		if stk.FlucSign == risingSign && ParseRate(stk.FlucRate) > 0 {
			rising = append(rising, stk)
		}
	}

	analysis.TotalStocks = len(payload.Stocks)
	analysis.RisingStocks = len(rising)
	analysis.ThemeChangeRate = ParseRate(payload.FlucRate)
	analysis.ThemeProfitRate = ParseRate(payload.ProfitRate)
	analysis.TopVolumeStocks = topByVolume(payload.Stocks, topStockCount)
	analysis.TopRisingStocks = topByChangeRate(rising, topStockCount)

	return analysis
}

// GetThemeInvestmentCandidates walks the hot themes in ranked order,
// keeps each theme's top risers at or above minStockChange, and returns
// the combined list sorted descending by change rate, truncated to limit.
func (r *Ranker) GetThemeInvestmentCandidates(minThemeProfit, minStockChange float64, limit int) []types.CandidateStock {
	if limit <= 0 {
		limit = 5
	}

	themes := r.FindHotThemes(defaultHotThemeLimit, minThemeProfit)

	var candidates []types.CandidateStock
	for _, t := range themes {
		analysis := r.AnalyzeThemeStocks(t.ThemeCode, t.ThemeName)
		if analysis.TotalStocks == 0 {
			continue
		}

		for _, stk := range analysis.TopRisingStocks {
			changeRate := ParseRate(stk.FlucRate)
			if changeRate < minStockChange {
				continue
			}
			candidates = append(candidates, types.CandidateStock{
				StockCode:       stk.StockCode,
				StockName:       stk.StockName,
				CurrentPrice:    ParsePrice(stk.CurrentPrice),
				ChangeRate:      changeRate,
				Volume:          ParseVolume(stk.AccVolume),
				ThemeName:       t.ThemeName,
				ThemeProfitRate: t.ProfitRate,
			})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ChangeRate > candidates[j].ChangeRate
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

func topByVolume(stocks []types.ThemeStockRecord, n int) []types.ThemeStockRecord {
	sorted := make([]types.ThemeStockRecord, len(stocks))
	copy(sorted, stocks)
	sort.Slice(sorted, func(i, j int) bool {
		return ParseVolume(sorted[i].AccVolume) > ParseVolume(sorted[j].AccVolume)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func topByChangeRate(stocks []types.ThemeStockRecord, n int) []types.ThemeStockRecord {
	sorted := make([]types.ThemeStockRecord, len(stocks))
	copy(sorted, stocks)
	sort.Slice(sorted, func(i, j int) bool {
		return ParseRate(sorted[i].FlucRate) > ParseRate(sorted[j].FlucRate)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
