package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/newsroom/internal/common"
	"github.com/dmitrijs2005/newsroom/internal/server/models"
)

// AIService is a placeholder for a text generation backend. It returns
// canned content shaped like the real responses.
type AIService struct{}

func NewAIService() *AIService {
	return &AIService{}
}

var wordCounts = map[string]string{
	"short":  "100-200",
	"medium": "300-500",
	"long":   "500+",
}

const generatedTemplate = `# %s

This is a demo article produced by the writing assistant. A real deployment would return unique generated content here.

## Key aspects

The article is written in a %s style and is about %s words long. The assistant analyses the topic and drafts content matching the chosen style.

## Why generate drafts

- Unique content
- Fast drafting
- Different writing styles
- Tailored to the audience

## Conclusion

Generated drafts are a starting point for editors, not a replacement for them.`

// GenerateArticle drafts an article about topic. style defaults to "news"
// and length to "medium".
func (s *AIService) GenerateArticle(_ context.Context, topic, style, length string) (*models.GeneratedArticle, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, fmt.Errorf("%w: topic is required", common.ErrValidation)
	}
	if style == "" {
		style = "news"
	}
	if length == "" {
		length = "medium"
	}
	words, ok := wordCounts[length]
	if !ok {
		words = wordCounts["medium"]
	}

	return &models.GeneratedArticle{
		Title:   "AI article: " + topic,
		Content: fmt.Sprintf(generatedTemplate, topic, style, words),
		Style:   style,
		Length:  length,
	}, nil
}

// Analytics summarises view counts of the given articles.
func (s *AIService) Analytics(_ context.Context, articles []models.ArticleStats) *models.Analytics {
	stats := models.AnalyticsStats{TotalArticles: len(articles)}
	for _, a := range articles {
		stats.TotalViews += a.Views
	}
	stats.AvgViews = float64(stats.TotalViews) / float64(max(stats.TotalArticles, 1))

	return &models.Analytics{
		Insights: fmt.Sprintf("You have published %d articles with %d views in total. Average popularity: %.1f views per article.",
			stats.TotalArticles, stats.TotalViews, stats.AvgViews),
		Recommendations: "Publish more in your most popular categories and add media to increase engagement.",
		Stats:           stats,
	}
}

// Recommendations returns reading suggestions.
func (s *AIService) Recommendations(_ context.Context) []models.Recommendation {
	return []models.Recommendation{
		{Title: "Latest trends in artificial intelligence", Category: "tech", Reason: "Based on your interest in technology"},
		{Title: "How to write effective articles", Category: "news", Reason: "To sharpen your writing"},
		{Title: "The future of mobile apps", Category: "tech", Reason: "Given your activity in technical topics"},
	}
}
