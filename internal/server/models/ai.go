package models

// GeneratedArticle is a draft produced by the AI assistant.
type GeneratedArticle struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Style   string `json:"style"`
	Length  string `json:"length"`
}

// ArticleStats is the input the AI analytics work on.
type ArticleStats struct {
	Title string `json:"title"`
	Views int64  `json:"views"`
}

type AnalyticsStats struct {
	TotalArticles int     `json:"total_articles"`
	TotalViews    int64   `json:"total_views"`
	AvgViews      float64 `json:"avg_views"`
}

type Analytics struct {
	Insights        string         `json:"insights"`
	Recommendations string         `json:"recommendations"`
	Stats           AnalyticsStats `json:"stats"`
}

type Recommendation struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Reason   string `json:"reason"`
}
