package models

import "time"

type Comment struct {
	ID        int64     `json:"id"`
	ArticleID int64     `json:"article_id"`
	UserID    int64     `json:"user_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentView is a comment with the commenter's name, as listed under an
// article.
type CommentView struct {
	Comment
	UserName string `json:"username"`
}

// UserComment is a comment with the title and slug of its article, as
// listed on a user's page.
type UserComment struct {
	Comment
	Title string `json:"title"`
	Slug  string `json:"slug"`
}
