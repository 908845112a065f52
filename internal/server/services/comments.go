package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/newsroom/internal/common"
	"github.com/dmitrijs2005/newsroom/internal/server/models"
	"github.com/dmitrijs2005/newsroom/internal/server/repositories/repomanager"
)

type CommentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCommentService(db *sql.DB, m repomanager.RepositoryManager) *CommentService {
	return &CommentService{db: db, repomanager: m}
}

// Add attaches a comment by userID to the article with the given slug.
func (s *CommentService) Add(ctx context.Context, articleSlug string, userID int64, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: comment text is required", common.ErrValidation)
	}

	articleID, _, err := s.repomanager.Articles(s.db).GetAuthorID(ctx, articleSlug)
	if err != nil {
		return nil, fmt.Errorf("error loading article: %w", err)
	}

	c, err := s.repomanager.Comments(s.db).Create(ctx, &models.Comment{ArticleID: articleID, UserID: userID, Text: text})
	if err != nil {
		return nil, fmt.Errorf("error creating comment: %w", err)
	}
	return c, nil
}

func (s *CommentService) ListForArticle(ctx context.Context, articleSlug string) ([]*models.CommentView, error) {
	return s.repomanager.Comments(s.db).ListByArticleSlug(ctx, articleSlug)
}

func (s *CommentService) ListByUser(ctx context.Context, userID int64) ([]*models.UserComment, error) {
	return s.repomanager.Comments(s.db).ListByUser(ctx, userID)
}
