package newsscraping

import (
	"testing"

	"github.com/fazecat/thememaker/Internal/types"
	"github.com/fazecat/thememaker/Internal/utils"
	"github.com/fazecat/thememaker/Internal/utils/config"
)

func testKeywordSet(t *testing.T) *KeywordSet {
	t.Helper()
	cfg := config.DefaultConfig()
	ks, err := NewKeywordSet(cfg.Sentiment.PositiveKeywords, cfg.Sentiment.NegativeKeywords)
	if err != nil {
		t.Fatalf("default keyword sets should be valid: %v", err)
	}
	return ks
}

func TestNewKeywordSet_RejectsOverlap(t *testing.T) {
	_, err := NewKeywordSet([]string{"상승", "호재"}, []string{"하락", "호재"})
	if err == nil {
		t.Fatal("expected error for keyword present in both sets")
	}
}

func TestNewKeywordSet_RejectsEmpty(t *testing.T) {
	_, err := NewKeywordSet(nil, []string{"하락"})
	if err == nil {
		t.Fatal("expected error for empty positive set")
	}
}

func TestCountMatches_DistinctKeywordsOnly(t *testing.T) {
	ks := testKeywordSet(t)

	// repeated keyword counts once - the count is over matching keywords,
	// not total occurrences
	pos, neg := ks.CountMatches("상승 또 상승, 연속 상승")
	if pos != 1 {
		t.Errorf("expected 1 positive match for repeated keyword, got %d", pos)
	}
	if neg != 0 {
		t.Errorf("expected 0 negative matches, got %d", neg)
	}
}

func TestHeadlineContribution(t *testing.T) {
	sa := NewSentimentAnalyzer(testKeywordSet(t))

	tests := []struct {
		name  string
		title string
		want  float64
	}{
		{
			name:  "two positive keywords",
			title: "삼성전자 실적 개선 기대",
			want:  20,
		},
		{
			name:  "two negative keywords",
			title: "SK하이닉스 거래 지연 우려",
			want:  -20,
		},
		{
			name:  "three positive keywords",
			title: "NAVER 신고가 돌파 성공",
			want:  30,
		},
		{
			name:  "four positive keywords capped at 30",
			title: "상승 급등 호재 성장 종합",
			want:  30,
		},
		{
			name:  "no keywords",
			title: "오늘의 시장 동향 정리",
			want:  0,
		},
		{
			name:  "tied counts cancel out",
			title: "상승 기대 속 하락 우려 공존",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sa.HeadlineContribution(tt.title)
			if got != tt.want {
				t.Errorf("HeadlineContribution(%q) = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}

func TestScoreHeadlines_AveragesContributions(t *testing.T) {
	sa := NewSentimentAnalyzer(testKeywordSet(t))

	articles := []types.NewsArticle{
		{Title: "삼성전자 실적 개선 기대"},   // +20
		{Title: "SK하이닉스 거래 지연 우려"}, // -20
		{Title: "NAVER 신고가 돌파 성공"},  // +30
	}

	got := sa.ScoreHeadlines(articles)
	want := 10.0
	if utils.Abs(got-want) > 1e-9 {
		t.Errorf("ScoreHeadlines = %v, want %v", got, want)
	}

	if ClassifySentiment(got) != types.Neutral {
		t.Errorf("score 10 should classify as neutral, got %s", ClassifySentiment(got))
	}
}

func TestScoreHeadlines_StaysWithinBounds(t *testing.T) {
	sa := NewSentimentAnalyzer(testKeywordSet(t))

	negative := make([]types.NewsArticle, 30)
	for i := range negative {
		negative[i] = types.NewsArticle{Title: "급락 악재 적자 손실 규제"}
	}

	got := sa.ScoreHeadlines(negative)
	if got < -100 || got > 100 {
		t.Errorf("score %v outside [-100, 100]", got)
	}
}

func TestScoreHeadlines_EmptyInput(t *testing.T) {
	sa := NewSentimentAnalyzer(testKeywordSet(t))
	if got := sa.ScoreHeadlines(nil); got != 0 {
		t.Errorf("expected 0 for no articles, got %v", got)
	}
}

func TestClassifySentiment_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  types.SentimentLabel
	}{
		{100, types.VeryPositive},
		{60, types.VeryPositive}, // lower edge is closed
		{59.9, types.Positive},
		{20, types.Positive},
		{19.9, types.Neutral},
		{0, types.Neutral},
		{-20, types.Neutral},
		{-20.1, types.Negative},
		{-60, types.Negative},
		{-60.1, types.VeryNegative},
		{-100, types.VeryNegative},
	}

	for _, tt := range tests {
		if got := ClassifySentiment(tt.score); got != tt.want {
			t.Errorf("ClassifySentiment(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}
