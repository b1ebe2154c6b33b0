package types

import "time"

// SentimentLabel is the five-band classification of a sentiment score.
type SentimentLabel string

const (
	VeryPositive SentimentLabel = "very_positive"
	Positive     SentimentLabel = "positive"
	Neutral      SentimentLabel = "neutral"
	Negative     SentimentLabel = "negative"
	VeryNegative SentimentLabel = "very_negative"
)

// NewsArticle is one headline returned by a news fetcher.
type NewsArticle struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source string `json:"source"`
}

// SentimentResult is the output of a single sentiment analysis call.
// DataSource distinguishes real news data from the neutral fallback
// estimate ("quant_based_estimation") - callers must branch on it.
type SentimentResult struct {
	StockCode      string         `json:"stock_code"`
	StockName      string         `json:"stock_name"`
	SentimentScore float64        `json:"sentiment_score"` // always within [-100, 100]
	SentimentLabel SentimentLabel `json:"sentiment_label"`
	NewsCount      int            `json:"news_count"`
	PositiveRatio  float64        `json:"positive_ratio"`
	NegativeRatio  float64        `json:"negative_ratio"`
	DataSource     string         `json:"data_source,omitempty"`
	AnalyzedAt     time.Time      `json:"analyzed_at"`
	Note           string         `json:"note,omitempty"`
}

// ThemeGroupRecord is a raw theme row as Kiwoom returns it. Numeric
// fields are strings, sometimes with a leading '+' or '-'.
type ThemeGroupRecord struct {
	ThemeCode   string `json:"thema_grp_cd"`
	ThemeName   string `json:"thema_nm"`
	StockCount  string `json:"stk_num"`
	RisingCount string `json:"rising_stk_num"`
	FlucSign    string `json:"flu_sig"`
	FlucRate    string `json:"flu_rt"`
	ProfitRate  string `json:"dt_prft_rt"`
	MainStock   string `json:"main_stk"`
}

// ThemeStockRecord is a raw constituent-stock row of a theme.
type ThemeStockRecord struct {
	StockCode    string `json:"stk_cd"`
	StockName    string `json:"stk_nm"`
	CurrentPrice string `json:"cur_prc"`
	FlucSign     string `json:"flu_sig"`
	FlucRate     string `json:"flu_rt"`
	AccVolume    string `json:"acc_trde_qty"`
}

// ThemeStocksPayload is the raw response for one theme's constituents.
type ThemeStocksPayload struct {
	Stocks     []ThemeStockRecord `json:"thema_comp_stk"`
	FlucRate   string             `json:"flu_rt"`
	ProfitRate string             `json:"dt_prft_rt"`
}

// ThemeSummary is one hot theme after parsing and filtering.
type ThemeSummary struct {
	ThemeCode   string  `json:"theme_code"`
	ThemeName   string  `json:"theme_name"`
	ProfitRate  float64 `json:"profit_rate"`
	ChangeRate  float64 `json:"change_rate"`
	StockCount  int     `json:"stock_count"`
	RisingCount int     `json:"rising_count"`
	MainStock   string  `json:"main_stock"`
}

// ThemeAnalysis is the per-theme constituent breakdown. An all-zero
// analysis means "no data, skip this theme".
type ThemeAnalysis struct {
	ThemeCode       string             `json:"theme_code"`
	ThemeName       string             `json:"theme_name"`
	TotalStocks     int                `json:"total_stocks"`
	RisingStocks    int                `json:"rising_stocks"`
	ThemeChangeRate float64            `json:"theme_change_rate"`
	ThemeProfitRate float64            `json:"theme_profit_rate"`
	TopVolumeStocks []ThemeStockRecord `json:"top_volume_stocks"`
	TopRisingStocks []ThemeStockRecord `json:"top_rising_stocks"`
}

// CandidateStock is the final output unit of the theme pipeline,
// ordered descending by ChangeRate.
type CandidateStock struct {
	StockCode       string  `json:"stock_code"`
	StockName       string  `json:"stock_name"`
	CurrentPrice    int64   `json:"current_price"`
	ChangeRate      float64 `json:"change_rate"`
	Volume          int64   `json:"volume"`
	ThemeName       string  `json:"theme_name"`
	ThemeProfitRate float64 `json:"theme_profit_rate"`
}
