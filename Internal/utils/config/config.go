package config

import (
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Sentiment SentimentConfig `yaml:"sentiment"`
	Themes    ThemeConfig     `yaml:"themes"`
	Kiwoom    KiwoomConfig    `yaml:"kiwoom"`
}

type SentimentConfig struct {
	PositiveKeywords    []string `yaml:"positive_keywords"`
	NegativeKeywords    []string `yaml:"negative_keywords"`
	LookbackDays        int      `yaml:"lookback_days"`
	MaxArticles         int      `yaml:"max_articles"`
	FetchTimeoutSeconds int      `yaml:"fetch_timeout_seconds"`
}

type ThemeConfig struct {
	HotThemeLimit   int     `yaml:"hot_theme_limit"`
	MinProfitRate   float64 `yaml:"min_profit_rate"`
	CandidateProfit float64 `yaml:"candidate_min_theme_profit"`
	CandidateChange float64 `yaml:"candidate_min_stock_change"`
	CandidateLimit  int     `yaml:"candidate_limit"`
}

type KiwoomConfig struct {
	BaseURL string `yaml:"base_url"`
}

func LoadConfig() (*Config, error) {
	// Resolve path relative to this file first
	_, filePath, _, ok := runtime.Caller(0)
	var basePath string
	if ok {
		basePath = filepath.Dir(filePath)
	}

	// Get current working directory as fallback
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	// Try multiple paths to find config.yaml
	possiblePaths := []string{}
	if basePath != "" {
		possiblePaths = append(possiblePaths, filepath.Join(basePath, "config.yaml"))
	}
	possiblePaths = append(possiblePaths,
		filepath.Join(cwd, "Internal", "utils", "config", "config.yaml"),
		"Internal/utils/config/config.yaml",
		"config.yaml",
		filepath.Join("Internal", "utils", "config", "config.yaml"),
	)

	var data []byte
	for _, path := range possiblePaths {
		data, err = os.ReadFile(path)
		if err == nil {
			break
		}
	}

	if err != nil {
		return nil, err
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// DefaultConfig returns the compiled-in configuration used when no
// config.yaml can be found.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if len(c.Sentiment.PositiveKeywords) == 0 {
		c.Sentiment.PositiveKeywords = defaultPositiveKeywords()
	}
	if len(c.Sentiment.NegativeKeywords) == 0 {
		c.Sentiment.NegativeKeywords = defaultNegativeKeywords()
	}
	if c.Sentiment.LookbackDays == 0 {
		c.Sentiment.LookbackDays = 7
	}
	if c.Sentiment.MaxArticles == 0 {
		c.Sentiment.MaxArticles = 20
	}
	if c.Sentiment.FetchTimeoutSeconds == 0 {
		c.Sentiment.FetchTimeoutSeconds = 5
	}
	if c.Themes.HotThemeLimit == 0 {
		c.Themes.HotThemeLimit = 10
	}
	if c.Themes.MinProfitRate == 0 {
		c.Themes.MinProfitRate = 5.0
	}
	if c.Themes.CandidateProfit == 0 {
		c.Themes.CandidateProfit = 10.0
	}
	if c.Themes.CandidateChange == 0 {
		c.Themes.CandidateChange = 2.0
	}
	if c.Themes.CandidateLimit == 0 {
		c.Themes.CandidateLimit = 5
	}
	if c.Kiwoom.BaseURL == "" {
		c.Kiwoom.BaseURL = "https://api.kiwoom.com"
	}
}

func defaultPositiveKeywords() []string {
	return []string{
		"상승", "급등", "호재", "성장", "개선", "확대", "증가", "상향",
		"돌파", "신고가", "기대", "성공", "수주", "계약", "흑자", "호조",
	}
}

func defaultNegativeKeywords() []string {
	return []string{
		"하락", "급락", "악재", "감소", "축소", "부진", "우려", "하향",
		"적자", "손실", "지연", "취소", "연기", "리스크", "규제", "소송",
	}
}

func SaveConfig(cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	err = os.WriteFile("Internal/utils/config/config.yaml", data, 0644)
	if err != nil {
		return err
	}
	return nil
}
