package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/newsroom/internal/common"
	"github.com/dmitrijs2005/newsroom/internal/dbx"
	"github.com/dmitrijs2005/newsroom/internal/server/models"
	"github.com/dmitrijs2005/newsroom/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/newsroom/internal/slug"
)

// maxSlugRetries bounds how many suffixed slugs are tried after the first
// timestamped one collides.
const maxSlugRetries = 2

// ArticleService manages articles and their slugs.
type ArticleService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

// NewArticleService constructs an ArticleService.
func NewArticleService(db *sql.DB, m repomanager.RepositoryManager) *ArticleService {
	return &ArticleService{
		db:          db,
		repomanager: m,
		now:         time.Now,
	}
}

// Create stores a new article written by authorID. The slug is derived from
// the title plus the creation second; on collision a random suffix is added
// and the insert retried, at most maxSlugRetries times. A collision on the
// last attempt yields common.ErrConflict.
func (s *ArticleService) Create(ctx context.Context, authorID int64, draft *models.Article) (*models.Article, error) {
	if strings.TrimSpace(draft.Title) == "" || strings.TrimSpace(draft.Content) == "" {
		return nil, fmt.Errorf("%w: title and content are required", common.ErrValidation)
	}

	article := *draft
	article.AuthorID = authorID
	if article.Category == "" {
		article.Category = common.DefaultCategory
	}

	repo := s.repomanager.Articles(s.db)
	base := slug.WithTimestamp(slug.Make(article.Title), s.now())
	candidate := base

	for attempt := 0; ; attempt++ {
		article.Slug = candidate
		created, err := repo.Create(ctx, &article)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, common.ErrAlreadyExists) {
			return nil, fmt.Errorf("error creating article: %w", err)
		}
		if attempt == maxSlugRetries {
			return nil, fmt.Errorf("%w: could not allocate a unique slug for %q", common.ErrConflict, base)
		}
		candidate = slug.WithRandomSuffix(base)
	}
}

// Get returns an article by slug, counting the read as a view.
func (s *ArticleService) Get(ctx context.Context, articleSlug string) (*models.ArticleView, error) {
	repo := s.repomanager.Articles(s.db)

	if err := repo.IncrementViews(ctx, articleSlug); err != nil {
		return nil, fmt.Errorf("error counting view: %w", err)
	}
	v, err := repo.GetBySlug(ctx, articleSlug)
	if err != nil {
		return nil, fmt.Errorf("error loading article: %w", err)
	}
	return v, nil
}

// List returns all articles, newest first.
func (s *ArticleService) List(ctx context.Context) ([]*models.ArticleView, error) {
	return s.repomanager.Articles(s.db).List(ctx)
}

// ListByAuthor returns the articles written by a user.
func (s *ArticleService) ListByAuthor(ctx context.Context, userID int64) ([]*models.ArticleView, error) {
	return s.repomanager.Articles(s.db).ListByAuthor(ctx, userID)
}

// ListFavorites returns the articles a user has liked.
func (s *ArticleService) ListFavorites(ctx context.Context, userID int64) ([]*models.ArticleView, error) {
	return s.repomanager.Articles(s.db).ListLikedBy(ctx, userID)
}

// Update replaces the editable fields of an article. Only its author may
// do so; anyone else gets common.ErrForbidden.
func (s *ArticleService) Update(ctx context.Context, articleSlug string, userID int64, upd models.ArticleUpdate) (*models.Article, error) {
	if strings.TrimSpace(upd.Title) == "" || strings.TrimSpace(upd.Content) == "" {
		return nil, fmt.Errorf("%w: title and content are required", common.ErrValidation)
	}
	if upd.Category == "" {
		upd.Category = common.DefaultCategory
	}

	var updated *models.Article
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Articles(tx)
		if _, err := s.authorize(ctx, repo, articleSlug, userID); err != nil {
			return err
		}
		var err error
		updated, err = repo.Update(ctx, articleSlug, upd)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error updating article: %w", err)
	}
	return updated, nil
}

// Delete removes an article with its comments and likes in one transaction.
// Only its author may do so.
func (s *ArticleService) Delete(ctx context.Context, articleSlug string, userID int64) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		articleRepo := s.repomanager.Articles(tx)
		articleID, err := s.authorize(ctx, articleRepo, articleSlug, userID)
		if err != nil {
			return err
		}
		if err := s.repomanager.Comments(tx).DeleteByArticle(ctx, articleID); err != nil {
			return err
		}
		if err := s.repomanager.Likes(tx).DeleteByArticle(ctx, articleID); err != nil {
			return err
		}
		return articleRepo.DeleteBySlug(ctx, articleSlug)
	})
	if err != nil {
		return fmt.Errorf("error deleting article: %w", err)
	}
	return nil
}

type authorLookup interface {
	GetAuthorID(ctx context.Context, slug string) (int64, int64, error)
}

// authorize resolves the article and checks that userID wrote it.
func (s *ArticleService) authorize(ctx context.Context, repo authorLookup, articleSlug string, userID int64) (int64, error) {
	articleID, authorID, err := repo.GetAuthorID(ctx, articleSlug)
	if err != nil {
		return 0, err
	}
	if authorID != userID {
		return 0, common.ErrForbidden
	}
	return articleID, nil
}
