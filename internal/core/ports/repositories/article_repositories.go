package repositories

import (
	"context"

	"github.com/ncabrera/purchasing_backend/internal/core/domain"
)

// ArticleReader defines read operations for article data
type ArticleReader interface {
	// FindArticleByID retrieves a specific article by its ID.
	FindArticleByID(ctx context.Context, articleID string) (*domain.Article, error)

	// ListArticles retrieves all articles with their measure unit joined in.
	ListArticles(ctx context.Context) ([]domain.Article, error)
}

// ArticleWriter defines write operations for article data
type ArticleWriter interface {
	// SaveArticle persists a new article.
	SaveArticle(ctx context.Context, article domain.Article) error

	// UpdateArticle persists changes to an existing article.
	UpdateArticle(ctx context.Context, article domain.Article) error

	// DeleteArticle removes an article.
	DeleteArticle(ctx context.Context, articleID string) error
}

// ArticleRepositoryFacade combines all article-related repository interfaces
type ArticleRepositoryFacade interface {
	ArticleReader
	ArticleWriter
}
