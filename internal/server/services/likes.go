package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/newsroom/internal/dbx"
	"github.com/dmitrijs2005/newsroom/internal/server/models"
	"github.com/dmitrijs2005/newsroom/internal/server/repositories/repomanager"
)

type LikeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewLikeService(db *sql.DB, m repomanager.RepositoryManager) *LikeService {
	return &LikeService{db: db, repomanager: m}
}

// Toggle flips userID's like of the article and returns the new state with
// the like count read in the same transaction.
func (s *LikeService) Toggle(ctx context.Context, articleSlug string, userID int64) (*models.LikeState, error) {
	state := &models.LikeState{}
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		articleID, _, err := s.repomanager.Articles(tx).GetAuthorID(ctx, articleSlug)
		if err != nil {
			return err
		}
		likeRepo := s.repomanager.Likes(tx)
		if state.Liked, err = likeRepo.Toggle(ctx, articleID, userID); err != nil {
			return err
		}
		state.LikesCount, err = likeRepo.Count(ctx, articleID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error toggling like: %w", err)
	}
	return state, nil
}

func (s *LikeService) ListByUser(ctx context.Context, userID int64) ([]*models.UserLike, error) {
	return s.repomanager.Likes(s.db).ListByUser(ctx, userID)
}
