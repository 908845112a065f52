// Package services contains server-side business logic. Services are built
// over a *sql.DB and a repomanager.RepositoryManager and run multi-step work
// inside dbx.WithTx.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/newsroom/internal/common"
	"github.com/dmitrijs2005/newsroom/internal/server/auth"
	"github.com/dmitrijs2005/newsroom/internal/server/models"
	"github.com/dmitrijs2005/newsroom/internal/server/repositories/repomanager"
)

// TokenIssuer mints access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID int64) (string, error)
}

// UserService handles registration, login and profile management.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	tokens      TokenIssuer
	hasher      auth.PasswordHasher
}

// NewUserService constructs a UserService.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, tokens TokenIssuer, hasher auth.PasswordHasher) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		tokens:      tokens,
		hasher:      hasher,
	}
}

// Register creates a regular user and returns it with a fresh access token.
// A taken username or email yields common.ErrConflict.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, string, error) {
	user, err := s.create(ctx, username, email, password, common.RoleUser)
	if err != nil {
		return nil, "", err
	}
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

// CreateAdmin creates a user with the admin role.
func (s *UserService) CreateAdmin(ctx context.Context, username, email, password string) (*models.User, error) {
	return s.create(ctx, username, email, password, common.RoleAdmin)
}

func (s *UserService) create(ctx context.Context, username, email, password, role string) (*models.User, error) {
	username, email = strings.TrimSpace(username), strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", common.ErrValidation)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{UserName: username, Email: email, PasswordHash: hash, Role: role}
	u, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: user with this email or username already exists", common.ErrConflict)
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login checks the credentials and returns the user with a fresh access token.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", fmt.Errorf("%w: %w", common.ErrUnauthenticated, common.ErrInvalidLogin)
		}
		return nil, "", fmt.Errorf("error loading user: %w", err)
	}
	if !s.hasher.Check(password, user.PasswordHash) {
		return nil, "", fmt.Errorf("%w: %w", common.ErrUnauthenticated, common.ErrInvalidLogin)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

// Profile returns the user with activity counters.
func (s *UserService) Profile(ctx context.Context, userID int64) (*models.Profile, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading user: %w", err)
	}
	stats, err := repo.Stats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading stats: %w", err)
	}

	return &models.Profile{
		User:          *user,
		ArticlesCount: stats.Articles,
		LikesCount:    stats.Likes,
		CommentsCount: stats.Comments,
	}, nil
}

// UpdateProfile replaces the username, email and photo of a user.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, username, email string, photo *string) (*models.User, error) {
	username, email = strings.TrimSpace(username), strings.TrimSpace(email)
	if username == "" || email == "" {
		return nil, fmt.Errorf("%w: username and email are required", common.ErrValidation)
	}

	repo := s.repomanager.Users(s.db)
	err := repo.Update(ctx, &models.User{ID: userID, UserName: username, Email: email, Photo: photo})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: user with this email or username already exists", common.ErrConflict)
		}
		return nil, fmt.Errorf("error updating user: %w", err)
	}

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading user: %w", err)
	}
	return user, nil
}
