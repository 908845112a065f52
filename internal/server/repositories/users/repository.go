package users

import (
	"context"

	"github.com/dmitrijs2005/newsroom/internal/server/models"
)

// Stats holds a user's activity counters.
type Stats struct {
	Articles int64
	Likes    int64
	Comments int64
}

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Stats(ctx context.Context, id int64) (*Stats, error)
}
