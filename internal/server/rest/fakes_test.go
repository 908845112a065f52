package rest

import (
	"context"
	"time"

	"github.com/dmitrijs2005/newsroom/internal/common"
	"github.com/dmitrijs2005/newsroom/internal/server/models"
)

type fakeUsers struct {
	registerErr error
	loginErr    error
	updateErr   error
	gotPhoto    *string
}

func (f *fakeUsers) Register(_ context.Context, username, email, _ string) (*models.User, string, error) {
	if f.registerErr != nil {
		return nil, "", f.registerErr
	}
	return &models.User{ID: 1, UserName: username, Email: email, PasswordHash: "secret-hash", Role: common.RoleUser}, "tok", nil
}

func (f *fakeUsers) Login(_ context.Context, email, _ string) (*models.User, string, error) {
	if f.loginErr != nil {
		return nil, "", f.loginErr
	}
	return &models.User{ID: 1, UserName: "alice", Email: email, Role: common.RoleUser}, "tok", nil
}

func (f *fakeUsers) Profile(_ context.Context, userID int64) (*models.Profile, error) {
	return &models.Profile{User: models.User{ID: userID, UserName: "alice"}, ArticlesCount: 2}, nil
}

func (f *fakeUsers) UpdateProfile(_ context.Context, userID int64, username, email string, photo *string) (*models.User, error) {
	f.gotPhoto = photo
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &models.User{ID: userID, UserName: username, Email: email, Photo: photo}, nil
}

type fakeArticles struct {
	err       error
	gotAuthor int64
	gotDraft  *models.Article
	gotUpdate models.ArticleUpdate
	gotUserID int64
	ownViews  []int64
}

func (f *fakeArticles) Create(_ context.Context, authorID int64, draft *models.Article) (*models.Article, error) {
	f.gotAuthor, f.gotDraft = authorID, draft
	if f.err != nil {
		return nil, f.err
	}
	a := *draft
	a.ID, a.AuthorID, a.Slug = 10, authorID, "hello-1700000000"
	return &a, nil
}

func (f *fakeArticles) Get(_ context.Context, slug string) (*models.ArticleView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.ArticleView{Article: models.Article{ID: 10, Slug: slug, Views: 1}, AuthorName: "alice"}, nil
}

func (f *fakeArticles) List(context.Context) ([]*models.ArticleView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []*models.ArticleView{
		{Article: models.Article{ID: 2, Slug: "b", CreatedAt: time.Unix(2, 0)}},
		{Article: models.Article{ID: 1, Slug: "a", CreatedAt: time.Unix(1, 0)}},
	}, nil
}

func (f *fakeArticles) ListByAuthor(_ context.Context, userID int64) ([]*models.ArticleView, error) {
	f.gotUserID = userID
	out := []*models.ArticleView{}
	for i, v := range f.ownViews {
		out = append(out, &models.ArticleView{Article: models.Article{ID: int64(i + 1), AuthorID: userID, Views: v}})
	}
	return out, nil
}

func (f *fakeArticles) ListFavorites(_ context.Context, userID int64) ([]*models.ArticleView, error) {
	f.gotUserID = userID
	return []*models.ArticleView{}, nil
}

func (f *fakeArticles) Update(_ context.Context, slug string, userID int64, upd models.ArticleUpdate) (*models.Article, error) {
	f.gotUserID, f.gotUpdate = userID, upd
	if f.err != nil {
		return nil, f.err
	}
	return &models.Article{ID: 10, Slug: slug, Title: upd.Title, AuthorID: userID}, nil
}

func (f *fakeArticles) Delete(_ context.Context, _ string, userID int64) error {
	f.gotUserID = userID
	return f.err
}

type fakeComments struct {
	err     error
	gotText string
}

func (f *fakeComments) Add(_ context.Context, _ string, userID int64, text string) (*models.Comment, error) {
	f.gotText = text
	if f.err != nil {
		return nil, f.err
	}
	return &models.Comment{ID: 5, ArticleID: 10, UserID: userID, Text: text}, nil
}

func (f *fakeComments) ListForArticle(context.Context, string) ([]*models.CommentView, error) {
	return []*models.CommentView{{Comment: models.Comment{ID: 5, Text: "hi"}, UserName: "bob"}}, nil
}

func (f *fakeComments) ListByUser(_ context.Context, userID int64) ([]*models.UserComment, error) {
	return []*models.UserComment{{Comment: models.Comment{ID: 5, UserID: userID}, Slug: "hello"}}, nil
}

type fakeLikes struct {
	liked bool
	err   error
}

func (f *fakeLikes) Toggle(context.Context, string, int64) (*models.LikeState, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.liked = !f.liked
	n := int64(0)
	if f.liked {
		n = 1
	}
	return &models.LikeState{Liked: f.liked, LikesCount: n}, nil
}

func (f *fakeLikes) ListByUser(_ context.Context, userID int64) ([]*models.UserLike, error) {
	return []*models.UserLike{{Like: models.Like{ID: 1, UserID: userID}, Slug: "hello"}}, nil
}

type fakePhotos struct {
	gotContentType string
	gotKey         string
	err            error
}

func (f *fakePhotos) PresignUpload(_ context.Context, contentType string) (*models.PhotoUpload, error) {
	f.gotContentType = contentType
	if f.err != nil {
		return nil, f.err
	}
	return &models.PhotoUpload{Key: "photos/k", UploadURL: "http://s3/put", DownloadURL: "/api/photos/photos/k"}, nil
}

func (f *fakePhotos) PresignDownload(_ context.Context, key string) (string, error) {
	f.gotKey = key
	if f.err != nil {
		return "", f.err
	}
	return "http://s3/get", nil
}

type fakeAI struct {
	gotArticles []models.ArticleStats
}

func (f *fakeAI) GenerateArticle(_ context.Context, topic, style, length string) (*models.GeneratedArticle, error) {
	if topic == "" {
		return nil, common.ErrValidation
	}
	return &models.GeneratedArticle{Title: "AI article: " + topic, Style: style, Length: length}, nil
}

func (f *fakeAI) Analytics(_ context.Context, articles []models.ArticleStats) *models.Analytics {
	f.gotArticles = articles
	return &models.Analytics{Stats: models.AnalyticsStats{TotalArticles: len(articles)}}
}

func (f *fakeAI) Recommendations(context.Context) []models.Recommendation {
	return []models.Recommendation{{Title: "x"}}
}
