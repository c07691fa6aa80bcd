package ui

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/mindanalyzer/internal/client/models"
	"github.com/dmitrijs2005/mindanalyzer/internal/i18n"
)

// Row is one labelled line of the result panel.
type Row struct {
	Label string
	Value string
}

// ResultView is the rendered analysis result, in display order.
type ResultView struct {
	Sentiment   Row
	Confidence  Row
	Emotions    Row
	Skills      Row
	Distortions Row
}

// Rows lists the rows in display order.
func (v ResultView) Rows() []Row {
	return []Row{v.Sentiment, v.Confidence, v.Emotions, v.Skills, v.Distortions}
}

var sentimentKeys = map[string]i18n.Key{
	"positive": i18n.KeySentimentPositive,
	"negative": i18n.KeySentimentNegative,
	"neutral":  i18n.KeySentimentNeutral,
	"mixed":    i18n.KeySentimentMixed,
}

func Result(c i18n.Catalog, lang i18n.Language, r *models.AnalysisResult) ResultView {
	if r == nil {
		r = &models.AnalysisResult{}
	}

	return ResultView{
		Sentiment:   Row{c.T(lang, i18n.KeySentiment), sentiment(c, lang, r.Sentiment)},
		Confidence:  Row{c.T(lang, i18n.KeyConfidence), Percent(r.ConfidenceScore)},
		Emotions:    Row{c.T(lang, i18n.KeyEmotions), list(c, lang, r.Entities.Emotions)},
		Skills:      Row{c.T(lang, i18n.KeySkills), list(c, lang, r.Entities.Skills)},
		Distortions: Row{c.T(lang, i18n.KeyPatterns), list(c, lang, r.Distortions)},
	}
}

// Percent renders a 0..1 score with one decimal, e.g. 0.87 as "87.0%".
func Percent(score float64) string {
	return fmt.Sprintf("%.1f%%", score*100)
}

func sentiment(c i18n.Catalog, lang i18n.Language, s string) string {
	if key, ok := sentimentKeys[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c.T(lang, key)
	}
	return s
}

func list(c i18n.Catalog, lang i18n.Language, items []string) string {
	if len(items) == 0 {
		return c.T(lang, i18n.KeyNone)
	}
	return strings.Join(items, ", ")
}
