package services

import (
	"context"

	"github.com/ncabrera/purchasing_backend/internal/core/domain"
	"github.com/ncabrera/purchasing_backend/internal/dto"
)

// ArticleSvcFacade defines the service surface for articles.
type ArticleSvcFacade interface {
	CreateArticle(ctx context.Context, req dto.CreateArticleRequest, creatorUserID string) (*domain.Article, error)
	GetArticleByID(ctx context.Context, articleID string) (*domain.Article, error)
	ListArticles(ctx context.Context) ([]domain.Article, error)
	UpdateArticle(ctx context.Context, articleID string, req dto.UpdateArticleRequest, userID string) (*domain.Article, error)
	DeleteArticle(ctx context.Context, articleID string) error
}
