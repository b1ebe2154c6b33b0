package newsscraping

import (
	"fmt"
	"strings"

	"github.com/fazecat/thememaker/Internal/types"
	"github.com/fazecat/thememaker/Internal/utils"
)

const (
	// per-headline contribution: min(matches*10, 30)
	keywordPoints      = 10.0
	headlineContribCap = 30.0
	scoreFloor         = -100.0
	scoreCeiling       = 100.0
)

// KeywordSet holds the positive and negative keyword sets. Both sets are
// fixed at construction and must be disjoint.
type KeywordSet struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

func NewKeywordSet(positive, negative []string) (*KeywordSet, error) {
	if len(positive) == 0 || len(negative) == 0 {
		return nil, fmt.Errorf("keyword sets must not be empty (positive=%d, negative=%d)", len(positive), len(negative))
	}

	ks := &KeywordSet{
		positive: make(map[string]struct{}, len(positive)),
		negative: make(map[string]struct{}, len(negative)),
	}
	for _, w := range positive {
		ks.positive[w] = struct{}{}
	}
	for _, w := range negative {
		if _, dup := ks.positive[w]; dup {
			return nil, fmt.Errorf("keyword %q appears in both positive and negative sets", w)
		}
		ks.negative[w] = struct{}{}
	}
	return ks, nil
}

// CountMatches counts how many distinct configured keywords appear in the
// title. A keyword counts once no matter how often it repeats; the match is
// substring containment, not word tokenization.
func (ks *KeywordSet) CountMatches(title string) (positive, negative int) {
	for w := range ks.positive {
		if strings.Contains(title, w) {
			positive++
		}
	}
	for w := range ks.negative {
		if strings.Contains(title, w) {
			negative++
		}
	}
	return positive, negative
}

// SentimentAnalyzer scores news headlines with the keyword heuristic.
type SentimentAnalyzer struct {
	keywords *KeywordSet
}

func NewSentimentAnalyzer(keywords *KeywordSet) *SentimentAnalyzer {
	return &SentimentAnalyzer{keywords: keywords}
}

// HeadlineContribution scores one title: +min(pos*10, 30) when positive
// keywords dominate, -min(neg*10, 30) when negative ones do, 0 on a tie.
func (sa *SentimentAnalyzer) HeadlineContribution(title string) float64 {
	pos, neg := sa.keywords.CountMatches(title)
	switch {
	case pos > neg:
		contrib := float64(pos) * keywordPoints
		if contrib > headlineContribCap {
			contrib = headlineContribCap
		}
		return contrib
	case neg > pos:
		contrib := float64(neg) * keywordPoints
		if contrib > headlineContribCap {
			contrib = headlineContribCap
		}
		return -contrib
	default:
		return 0
	}
}

// ScoreHeadlines averages the per-headline contributions and clamps the
// result to [-100, 100]. Zero articles score 0.
func (sa *SentimentAnalyzer) ScoreHeadlines(articles []types.NewsArticle) float64 {
	if len(articles) == 0 {
		return 0
	}

	total := 0.0
	for _, article := range articles {
		total += sa.HeadlineContribution(article.Title)
	}
	score := total / float64(len(articles))

	return utils.Clamp(score, scoreFloor, scoreCeiling)
}

// ClassifySentiment maps a score onto the five labels. Bands are closed at
// the lower edge: exactly 60 is very_positive, exactly -20 is neutral.
func ClassifySentiment(score float64) types.SentimentLabel {
	switch {
	case score >= 60:
		return types.VeryPositive
	case score >= 20:
		return types.Positive
	case score >= -20:
		return types.Neutral
	case score >= -60:
		return types.Negative
	default:
		return types.VeryNegative
	}
}
