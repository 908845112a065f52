package models

import "time"

// Like is the presence of a (user, article) pair. At most one exists per
// pair; its existence is the "liked" state.
type Like struct {
	ID        int64     `json:"id"`
	ArticleID int64     `json:"article_id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// UserLike is a like with the title and slug of the liked article.
type UserLike struct {
	Like
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// LikeState is the outcome of a toggle.
type LikeState struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}
