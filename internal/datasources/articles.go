package datasources

import (
	"context"
	"errors"
	"time"

	"github.com/jbeshir/reading-queue/internal/domain"
)

var ErrArticleNotFound = errors.New("article not found")

// ArticleRepository combines all saved article operations.
type ArticleRepository interface {
	ArticleCreator
	ArticlesByOwnerLister
	ArticleUpdater
	ArticlesArchiver
	ArticleDeleter
	OwnerArticlesDeleter
}

type ArticleCreator interface {
	CreateArticle(ctx context.Context, article domain.Article) error
}

// ArticlesByOwnerLister lists every article owned by userID, newest first.
type ArticlesByOwnerLister interface {
	ListArticlesByOwner(ctx context.Context, userID string) ([]domain.Article, error)
}

// ArticleUpdater stores the mutable fields of an existing article: status,
// progress, memo, read and update times, and the cached scores.
// Returns ErrArticleNotFound if the article does not exist for its owner.
type ArticleUpdater interface {
	UpdateArticle(ctx context.Context, article domain.Article) error
}

// ArticlesArchiver moves the given articles of userID to archived.
type ArticlesArchiver interface {
	ArchiveArticles(ctx context.Context, userID string, ids []string, updatedAt time.Time) error
}

type ArticleDeleter interface {
	DeleteArticle(ctx context.Context, userID, id string) error
}

type OwnerArticlesDeleter interface {
	DeleteOwnerArticles(ctx context.Context, userID string) error
}

// NullArticleRepository stores nothing and lists nothing.
type NullArticleRepository struct{}

var _ ArticleRepository = NullArticleRepository{}

func (NullArticleRepository) CreateArticle(_ context.Context, _ domain.Article) error {
	return nil
}

func (NullArticleRepository) ListArticlesByOwner(_ context.Context, _ string) ([]domain.Article, error) {
	return nil, nil
}

func (NullArticleRepository) UpdateArticle(_ context.Context, _ domain.Article) error {
	return nil
}

func (NullArticleRepository) ArchiveArticles(_ context.Context, _ string, _ []string, _ time.Time) error {
	return nil
}

func (NullArticleRepository) DeleteArticle(_ context.Context, _, _ string) error {
	return nil
}

func (NullArticleRepository) DeleteOwnerArticles(_ context.Context, _ string) error {
	return nil
}
