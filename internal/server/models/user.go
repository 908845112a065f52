// Package models defines server-side data models persisted in the database
// and the read projections returned by the API.
package models

import "time"

type User struct {
	ID           int64     `json:"id"`
	UserName     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Photo        *string   `json:"photo"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile is a user together with activity counters.
type Profile struct {
	User
	ArticlesCount int64 `json:"articles_count"`
	LikesCount    int64 `json:"likes_count"`
	CommentsCount int64 `json:"comments_count"`
}
