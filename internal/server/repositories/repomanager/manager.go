package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/newsroom/internal/dbx"
	"github.com/dmitrijs2005/newsroom/internal/server/repositories/articles"
	"github.com/dmitrijs2005/newsroom/internal/server/repositories/comments"
	"github.com/dmitrijs2005/newsroom/internal/server/repositories/likes"
	"github.com/dmitrijs2005/newsroom/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a handle, so that a service
// can run several of them inside one transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Articles(db dbx.DBTX) articles.Repository
	Comments(db dbx.DBTX) comments.Repository
	Likes(db dbx.DBTX) likes.Repository
}
