package services

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/newsroom/internal/common"
	"github.com/dmitrijs2005/newsroom/internal/dbx"
	"github.com/dmitrijs2005/newsroom/internal/server/models"
	"github.com/dmitrijs2005/newsroom/internal/server/repositories/articles"
	"github.com/dmitrijs2005/newsroom/internal/server/repositories/comments"
	"github.com/dmitrijs2005/newsroom/internal/server/repositories/likes"
	"github.com/dmitrijs2005/newsroom/internal/server/repositories/users"
)

// store is an in-memory stand-in for the database shared by the fake
// repositories. Slug and like uniqueness are enforced like the real schema.
type store struct {
	mu       sync.Mutex
	nextID   int64
	users    map[int64]*models.User
	articles map[string]*models.Article
	comments []*models.Comment
	likes    map[[2]int64]time.Time

	// createErr, when set, is returned by the next article insert.
	createErr error
	// articleCreates counts article insert attempts.
	articleCreates int
	// collideAll makes every article insert report a taken slug.
	collideAll bool
}

func newStore() *store {
	return &store{
		users:    map[int64]*models.User{},
		articles: map[string]*models.Article{},
		likes:    map[[2]int64]time.Time{},
	}
}

func (s *store) id() int64 {
	s.nextID++
	return s.nextID
}

type fakeRepoManager struct{ st *store }

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository           { return &fakeUsers{m.st} }
func (m *fakeRepoManager) Articles(dbx.DBTX) articles.Repository     { return &fakeArticles{m.st} }
func (m *fakeRepoManager) Comments(dbx.DBTX) comments.Repository     { return &fakeComments{m.st} }
func (m *fakeRepoManager) Likes(dbx.DBTX) likes.Repository           { return &fakeLikes{m.st} }

type fakeUsers struct{ st *store }

func (f *fakeUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	for _, existing := range f.st.users {
		if existing.Email == u.Email || existing.UserName == u.UserName {
			return nil, common.ErrAlreadyExists
		}
	}
	u.ID = f.st.id()
	u.CreatedAt = time.Now()
	cp := *u
	f.st.users[u.ID] = &cp
	return u, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	for _, u := range f.st.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	u, ok := f.st.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) Update(_ context.Context, u *models.User) error {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	cur, ok := f.st.users[u.ID]
	if !ok {
		return common.ErrorNotFound
	}
	for id, other := range f.st.users {
		if id != u.ID && (other.Email == u.Email || other.UserName == u.UserName) {
			return common.ErrAlreadyExists
		}
	}
	cur.UserName, cur.Email, cur.Photo = u.UserName, u.Email, u.Photo
	return nil
}

func (f *fakeUsers) Stats(_ context.Context, id int64) (*users.Stats, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	s := &users.Stats{}
	for _, a := range f.st.articles {
		if a.AuthorID == id {
			s.Articles++
		}
	}
	for k := range f.st.likes {
		if k[1] == id {
			s.Likes++
		}
	}
	for _, c := range f.st.comments {
		if c.UserID == id {
			s.Comments++
		}
	}
	return s, nil
}

type fakeArticles struct{ st *store }

func (f *fakeArticles) Create(_ context.Context, a *models.Article) (*models.Article, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	f.st.articleCreates++
	if err := f.st.createErr; err != nil {
		f.st.createErr = nil
		return nil, err
	}
	if _, taken := f.st.articles[a.Slug]; taken || f.st.collideAll {
		return nil, common.ErrAlreadyExists
	}
	a.ID = f.st.id()
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	cp := *a
	f.st.articles[a.Slug] = &cp
	return a, nil
}

func (f *fakeArticles) view(a *models.Article) *models.ArticleView {
	v := &models.ArticleView{Article: *a}
	if u, ok := f.st.users[a.AuthorID]; ok {
		v.AuthorName = u.UserName
	}
	for k := range f.st.likes {
		if k[0] == a.ID {
			v.LikesCount++
		}
	}
	for _, c := range f.st.comments {
		if c.ArticleID == a.ID {
			v.CommentsCount++
		}
	}
	return v
}

func (f *fakeArticles) GetBySlug(_ context.Context, slug string) (*models.ArticleView, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	a, ok := f.st.articles[slug]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return f.view(a), nil
}

func (f *fakeArticles) IncrementViews(_ context.Context, slug string) error {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	a, ok := f.st.articles[slug]
	if !ok {
		return common.ErrorNotFound
	}
	a.Views++
	return nil
}

func (f *fakeArticles) list(keep func(*models.Article) bool) []*models.ArticleView {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	out := []*models.ArticleView{}
	for _, a := range f.st.articles {
		if keep(a) {
			out = append(out, f.view(a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (f *fakeArticles) List(context.Context) ([]*models.ArticleView, error) {
	return f.list(func(*models.Article) bool { return true }), nil
}

func (f *fakeArticles) ListByAuthor(_ context.Context, authorID int64) ([]*models.ArticleView, error) {
	return f.list(func(a *models.Article) bool { return a.AuthorID == authorID }), nil
}

func (f *fakeArticles) ListLikedBy(_ context.Context, userID int64) ([]*models.ArticleView, error) {
	return f.list(func(a *models.Article) bool {
		_, ok := f.st.likes[[2]int64{a.ID, userID}]
		return ok
	}), nil
}

func (f *fakeArticles) Update(_ context.Context, slug string, upd models.ArticleUpdate) (*models.Article, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	a, ok := f.st.articles[slug]
	if !ok {
		return nil, common.ErrorNotFound
	}
	a.Title, a.Content, a.Category = upd.Title, upd.Content, upd.Category
	a.LocationLat, a.LocationLng = upd.LocationLat, upd.LocationLng
	a.UpdatedAt = time.Now()
	cp := *a
	return &cp, nil
}

func (f *fakeArticles) DeleteBySlug(_ context.Context, slug string) error {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	if _, ok := f.st.articles[slug]; !ok {
		return common.ErrorNotFound
	}
	delete(f.st.articles, slug)
	return nil
}

func (f *fakeArticles) GetAuthorID(_ context.Context, slug string) (int64, int64, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	a, ok := f.st.articles[slug]
	if !ok {
		return 0, 0, common.ErrorNotFound
	}
	return a.ID, a.AuthorID, nil
}

type fakeComments struct{ st *store }

func (f *fakeComments) Create(_ context.Context, c *models.Comment) (*models.Comment, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	c.ID = f.st.id()
	c.CreatedAt = time.Now()
	cp := *c
	f.st.comments = append(f.st.comments, &cp)
	return c, nil
}

func (f *fakeComments) ListByArticleSlug(_ context.Context, slug string) ([]*models.CommentView, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	out := []*models.CommentView{}
	a, ok := f.st.articles[slug]
	if !ok {
		return out, nil
	}
	for i := len(f.st.comments) - 1; i >= 0; i-- {
		c := f.st.comments[i]
		if c.ArticleID == a.ID {
			out = append(out, &models.CommentView{Comment: *c, UserName: f.st.users[c.UserID].UserName})
		}
	}
	return out, nil
}

func (f *fakeComments) ListByUser(_ context.Context, userID int64) ([]*models.UserComment, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	out := []*models.UserComment{}
	for i := len(f.st.comments) - 1; i >= 0; i-- {
		c := f.st.comments[i]
		if c.UserID != userID {
			continue
		}
		uc := &models.UserComment{Comment: *c}
		for _, a := range f.st.articles {
			if a.ID == c.ArticleID {
				uc.Title, uc.Slug = a.Title, a.Slug
			}
		}
		out = append(out, uc)
	}
	return out, nil
}

func (f *fakeComments) DeleteByArticle(_ context.Context, articleID int64) error {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	kept := f.st.comments[:0]
	for _, c := range f.st.comments {
		if c.ArticleID != articleID {
			kept = append(kept, c)
		}
	}
	f.st.comments = kept
	return nil
}

type fakeLikes struct{ st *store }

func (f *fakeLikes) Toggle(_ context.Context, articleID, userID int64) (bool, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	k := [2]int64{articleID, userID}
	if _, ok := f.st.likes[k]; ok {
		delete(f.st.likes, k)
		return false, nil
	}
	f.st.likes[k] = time.Now()
	return true, nil
}

func (f *fakeLikes) Count(_ context.Context, articleID int64) (int64, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	var n int64
	for k := range f.st.likes {
		if k[0] == articleID {
			n++
		}
	}
	return n, nil
}

func (f *fakeLikes) ListByUser(_ context.Context, userID int64) ([]*models.UserLike, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	out := []*models.UserLike{}
	for k, at := range f.st.likes {
		if k[1] != userID {
			continue
		}
		ul := &models.UserLike{Like: models.Like{ArticleID: k[0], UserID: k[1], CreatedAt: at}}
		for _, a := range f.st.articles {
			if a.ID == k[0] {
				ul.Title, ul.Slug = a.Title, a.Slug
			}
		}
		out = append(out, ul)
	}
	return out, nil
}

func (f *fakeLikes) DeleteByArticle(_ context.Context, articleID int64) error {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	for k := range f.st.likes {
		if k[0] == articleID {
			delete(f.st.likes, k)
		}
	}
	return nil
}

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func (s *store) addUser(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id()
	s.users[id] = &models.User{ID: id, UserName: name, Email: name + "@example.com", Role: common.RoleUser}
	return id
}

func (s *store) addArticle(slug string, authorID int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id()
	s.articles[slug] = &models.Article{ID: id, Title: slug, Slug: slug, Content: "body", AuthorID: authorID, Category: common.DefaultCategory}
	return id
}
