// Package admincli implements the newsroom administration tool: applying
// migrations, creating admin accounts and uploading photos to object storage.
package admincli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/newsroom/internal/dbx"
	"github.com/dmitrijs2005/newsroom/internal/server/config"
	"github.com/dmitrijs2005/newsroom/internal/server/models"
	"github.com/dmitrijs2005/newsroom/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/newsroom/internal/server/services"
)

const usage = `Usage: newsroom-cli <command> [args] [server flags]

Commands:
  migrate                 apply database migrations
  create-admin            create a user with the admin role
  upload-photo <file>     upload an image and print its URL
  help                    show this message
`

// ErrUsage is returned for unknown commands and missing arguments.
var ErrUsage = errors.New("invalid usage")

type photoPresigner interface {
	PresignUpload(ctx context.Context, contentType string) (*models.PhotoUpload, error)
}

var (
	openDB = func(ctx context.Context, c *config.Config) (*sql.DB, error) {
		return dbx.OpenPool(ctx, "pgx", c.DatabaseDSN, dbx.PoolOptions{MaxOpenConns: 2})
	}
	newRepoManager  = repomanager.NewPostgresRepositoryManager
	newPhotoService = func(c *config.Config) photoPresigner { return services.NewPhotoService(c) }
)

type App struct {
	config *config.Config
	in     *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config, in io.Reader, out io.Writer) *App {
	return &App{config: c, in: bufio.NewReader(in), out: out}
}

// Run executes one command. args are the arguments after the command name.
func (a *App) Run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "migrate":
		return a.migrate(ctx)
	case "create-admin":
		return a.createAdmin(ctx)
	case "upload-photo":
		if len(args) == 0 || args[0] == "" || args[0][0] == '-' {
			fmt.Fprint(a.out, usage)
			return fmt.Errorf("%w: upload-photo needs a file", ErrUsage)
		}
		return a.uploadPhoto(ctx, args[0])
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
	}
}

func (a *App) migrate(ctx context.Context) error {
	db, err := openDB(ctx, a.config)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := newRepoManager().RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	fmt.Fprintln(a.out, "Migrations applied")
	return nil
}
