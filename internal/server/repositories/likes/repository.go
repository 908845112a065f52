package likes

import (
	"context"

	"github.com/dmitrijs2005/newsroom/internal/server/models"
)

type Repository interface {
	Toggle(ctx context.Context, articleID, userID int64) (bool, error)
	Count(ctx context.Context, articleID int64) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.UserLike, error)
	DeleteByArticle(ctx context.Context, articleID int64) error
}
