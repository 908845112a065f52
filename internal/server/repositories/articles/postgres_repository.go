// Package articles provides the PostgreSQL-backed article repository.
package articles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/newsroom/internal/common"
	"github.com/dmitrijs2005/newsroom/internal/dbx"
	"github.com/dmitrijs2005/newsroom/internal/server/models"
)

const articleColumns = `id, title, slug, content, author_id, category, location_lat, location_lng, photo, views, created_at, updated_at`

// viewSelect reads articles together with the author name and counters.
// Callers append the WHERE and ORDER BY clauses.
const viewSelect = `SELECT a.id, a.title, a.slug, a.content, a.author_id, a.category,
		a.location_lat, a.location_lng, a.photo, a.views, a.created_at, a.updated_at,
		COALESCE(u.username, '') AS author_name,
		(SELECT COUNT(*) FROM likes l WHERE l.article_id = a.id) AS likes_count,
		(SELECT COUNT(*) FROM comments c WHERE c.article_id = a.id) AS comments_count
	FROM articles a
	LEFT JOIN users u ON u.id = a.author_id
	`

// PostgresRepository implements article storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanArticle(s scanner, a *models.Article, extra ...any) error {
	dest := []any{
		&a.ID, &a.Title, &a.Slug, &a.Content, &a.AuthorID, &a.Category,
		&a.LocationLat, &a.LocationLng, &a.Photo, &a.Views, &a.CreatedAt, &a.UpdatedAt,
	}
	return s.Scan(append(dest, extra...)...)
}

func scanView(s scanner) (*models.ArticleView, error) {
	v := &models.ArticleView{}
	if err := scanArticle(s, &v.Article, &v.AuthorName, &v.LikesCount, &v.CommentsCount); err != nil {
		return nil, err
	}
	return v, nil
}

// Create inserts an article. A taken slug yields common.ErrAlreadyExists so
// the caller can retry with another one.
func (r *PostgresRepository) Create(ctx context.Context, article *models.Article) (*models.Article, error) {
	query :=
		`INSERT INTO articles (title, slug, content, author_id, category, location_lat, location_lng, photo)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, views, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		article.Title, article.Slug, article.Content, article.AuthorID, article.Category,
		article.LocationLat, article.LocationLng, article.Photo,
	).Scan(&article.ID, &article.Views, &article.CreatedAt, &article.UpdatedAt)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return article, nil
}

func (r *PostgresRepository) GetBySlug(ctx context.Context, slug string) (*models.ArticleView, error) {
	v, err := scanView(r.db.QueryRowContext(ctx, viewSelect+`WHERE a.slug = $1`, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}

// IncrementViews atomically bumps the view counter of an article.
func (r *PostgresRepository) IncrementViews(ctx context.Context, slug string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE articles SET views = views + 1 WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectAffected(res)
}

// List returns all articles, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.ArticleView, error) {
	return r.listViews(ctx, viewSelect+`ORDER BY a.created_at DESC`)
}

// ListByAuthor returns the articles written by authorID, newest first.
func (r *PostgresRepository) ListByAuthor(ctx context.Context, authorID int64) ([]*models.ArticleView, error) {
	return r.listViews(ctx, viewSelect+`WHERE a.author_id = $1 ORDER BY a.created_at DESC`, authorID)
}

// ListLikedBy returns the articles liked by userID, newest first.
func (r *PostgresRepository) ListLikedBy(ctx context.Context, userID int64) ([]*models.ArticleView, error) {
	return r.listViews(ctx,
		viewSelect+`WHERE a.id IN (SELECT article_id FROM likes WHERE user_id = $1) ORDER BY a.created_at DESC`, userID)
}

func (r *PostgresRepository) listViews(ctx context.Context, query string, args ...any) ([]*models.ArticleView, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.ArticleView{}
	for rows.Next() {
		v, err := scanView(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// Update replaces the editable fields of an article and returns the stored row.
func (r *PostgresRepository) Update(ctx context.Context, slug string, upd models.ArticleUpdate) (*models.Article, error) {
	query :=
		`UPDATE articles
		 SET title = $1, content = $2, category = $3, location_lat = $4, location_lng = $5, updated_at = now()
		 WHERE slug = $6
		 RETURNING ` + articleColumns

	a := &models.Article{}
	err := scanArticle(r.db.QueryRowContext(ctx, query,
		upd.Title, upd.Content, upd.Category, upd.LocationLat, upd.LocationLng, slug), a)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) DeleteBySlug(ctx context.Context, slug string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM articles WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectAffected(res)
}

// GetAuthorID resolves a slug to the article ID and its author ID.
func (r *PostgresRepository) GetAuthorID(ctx context.Context, slug string) (int64, int64, error) {
	var articleID, authorID int64
	err := r.db.QueryRowContext(ctx, `SELECT id, author_id FROM articles WHERE slug = $1`, slug).
		Scan(&articleID, &authorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, 0, common.ErrorNotFound
		}
		return 0, 0, fmt.Errorf("db error: %w", err)
	}
	return articleID, authorID, nil
}

func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
