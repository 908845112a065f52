// Package likes provides the PostgreSQL-backed like repository. A like row
// existing for a (user, article) pair is the only record of "liked".
package likes

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

// Toggle removes the user's like of the article if present, otherwise adds
// it, and reports whether the article is liked afterwards. Run it inside a
// transaction together with Count to return a consistent counter.
func (r *PostgresRepository) Toggle(ctx context.Context, articleID, userID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM likes WHERE article_id = $1 AND user_id = $2`, articleID, userID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	// a concurrent insert of the same pair is absorbed by the unique key
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO likes (article_id, user_id) VALUES ($1, $2) ON CONFLICT (article_id, user_id) DO NOTHING`,
		articleID, userID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return true, nil
}

func (r *PostgresRepository) Count(ctx context.Context, articleID int64) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM likes WHERE article_id = $1`, articleID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

// ListByUser returns the likes given by userID with the liked article's title
// and slug, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*models.UserLike, error) {
	query :=
		`SELECT l.id, l.article_id, l.user_id, l.created_at, a.title, a.slug
		 FROM likes l
		 JOIN articles a ON l.article_id = a.id
		 WHERE l.user_id = $1
		 ORDER BY l.created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.UserLike{}
	for rows.Next() {
		var item models.UserLike
		if err := rows.Scan(&item.ID, &item.ArticleID, &item.UserID, &item.CreatedAt, &item.Title, &item.Slug); err != nil {
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
	if _, err := r.db.ExecContext(ctx, `DELETE FROM likes WHERE article_id = $1`, articleID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
