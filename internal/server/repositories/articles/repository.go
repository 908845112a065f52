package articles

import (
	"context"

	"github.com/dmitrijs2005/newsroom/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, article *models.Article) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.ArticleView, error)
	IncrementViews(ctx context.Context, slug string) error
	List(ctx context.Context) ([]*models.ArticleView, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]*models.ArticleView, error)
	ListLikedBy(ctx context.Context, userID int64) ([]*models.ArticleView, error)
	Update(ctx context.Context, slug string, upd models.ArticleUpdate) (*models.Article, error)
	DeleteBySlug(ctx context.Context, slug string) error
	GetAuthorID(ctx context.Context, slug string) (articleID int64, authorID int64, err error)
}
