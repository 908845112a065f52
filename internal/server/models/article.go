package models

import "time"

type Article struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Content     string    `json:"content"`
	AuthorID    int64     `json:"author_id"`
	Category    string    `json:"category"`
	LocationLat *float64  `json:"location_lat"`
	LocationLng *float64  `json:"location_lng"`
	Photo       *string   `json:"photo"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ArticleView is an article as listed by the API: with the author's name
// and like/comment counters.
type ArticleView struct {
	Article
	AuthorName    string `json:"author_name"`
	LikesCount    int64  `json:"likes_count"`
	CommentsCount int64  `json:"comments_count"`
}

// ArticleUpdate carries the editable fields of an article. Slug and photo
// are not editable.
type ArticleUpdate struct {
	Title       string
	Content     string
	Category    string
	LocationLat *float64
	LocationLng *float64
}
