// Package comments provides the PostgreSQL-backed comment repository.
package comments

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/newsroom/internal/dbx"
	"github.com/dmitrijs2005/newsroom/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	query :=
		`INSERT INTO comments (article_id, user_id, text)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query, comment.ArticleID, comment.UserID, comment.Text).
		Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return comment, nil
}

// ListByArticleSlug returns the comments of an article with their authors'
// names, newest first. An unknown slug yields an empty list.
func (r *PostgresRepository) ListByArticleSlug(ctx context.Context, slug string) ([]*models.CommentView, error) {
	query :=
		`SELECT c.id, c.article_id, c.user_id, c.text, c.created_at, u.username
		 FROM comments c
		 JOIN users u ON c.user_id = u.id
		 JOIN articles a ON c.article_id = a.id
		 WHERE a.slug = $1
		 ORDER BY c.created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, slug)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.CommentView{}
	for rows.Next() {
		var item models.CommentView
		if err := rows.Scan(&item.ID, &item.ArticleID, &item.UserID, &item.Text, &item.CreatedAt, &item.UserName); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// ListByUser returns the comments left by userID with the commented article's
// title and slug, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*models.UserComment, error) {
	query :=
		`SELECT c.id, c.article_id, c.user_id, c.text, c.created_at, a.title, a.slug
		 FROM comments c
		 JOIN articles a ON c.article_id = a.id
		 WHERE c.user_id = $1
		 ORDER BY c.created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.UserComment{}
	for rows.Next() {
		var item models.UserComment
		if err := rows.Scan(&item.ID, &item.ArticleID, &item.UserID, &item.Text, &item.CreatedAt, &item.Title, &item.Slug); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) DeleteByArticle(ctx context.Context, articleID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE article_id = $1`, articleID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
