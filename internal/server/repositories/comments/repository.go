package comments

import (
	"context"

	"github.com/dmitrijs2005/newsroom/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	ListByArticleSlug(ctx context.Context, slug string) ([]*models.CommentView, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.UserComment, error)
	DeleteByArticle(ctx context.Context, articleID int64) error
}
