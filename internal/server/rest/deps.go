// Package rest exposes the newsroom JSON API over gin. Handlers decode
// requests, call the services and map service errors to HTTP statuses in
// one place (writeError).
package rest

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/newsroom/internal/server/models"
)

type UserService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Profile(ctx context.Context, userID int64) (*models.Profile, error)
	UpdateProfile(ctx context.Context, userID int64, username, email string, photo *string) (*models.User, error)
}

type ArticleService interface {
	Create(ctx context.Context, authorID int64, draft *models.Article) (*models.Article, error)
	Get(ctx context.Context, slug string) (*models.ArticleView, error)
	List(ctx context.Context) ([]*models.ArticleView, error)
	ListByAuthor(ctx context.Context, userID int64) ([]*models.ArticleView, error)
	ListFavorites(ctx context.Context, userID int64) ([]*models.ArticleView, error)
	Update(ctx context.Context, slug string, userID int64, upd models.ArticleUpdate) (*models.Article, error)
	Delete(ctx context.Context, slug string, userID int64) error
}

type CommentService interface {
	Add(ctx context.Context, slug string, userID int64, text string) (*models.Comment, error)
	ListForArticle(ctx context.Context, slug string) ([]*models.CommentView, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.UserComment, error)
}

type LikeService interface {
	Toggle(ctx context.Context, slug string, userID int64) (*models.LikeState, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.UserLike, error)
}

type PhotoService interface {
	PresignUpload(ctx context.Context, contentType string) (*models.PhotoUpload, error)
	PresignDownload(ctx context.Context, key string) (string, error)
}

type AIService interface {
	GenerateArticle(ctx context.Context, topic, style, length string) (*models.GeneratedArticle, error)
	Analytics(ctx context.Context, articles []models.ArticleStats) *models.Analytics
	Recommendations(ctx context.Context) []models.Recommendation
}

// Authenticator resolves the caller of a request from its headers.
type Authenticator interface {
	Authenticate(h http.Header) (int64, error)
}
