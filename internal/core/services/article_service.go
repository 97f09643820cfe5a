package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ncabrera/purchasing_backend/internal/apperrors"
	"github.com/ncabrera/purchasing_backend/internal/core/domain"
	portsrepo "github.com/ncabrera/purchasing_backend/internal/core/ports/repositories"
	"github.com/ncabrera/purchasing_backend/internal/dto"
	"github.com/google/uuid"
)

type ArticleService struct {
	articleRepo     portsrepo.ArticleRepositoryFacade
	measureUnitRepo portsrepo.MeasureUnitReader
}

func NewArticleService(articleRepo portsrepo.ArticleRepositoryFacade, measureUnitRepo portsrepo.MeasureUnitReader) *ArticleService {
	return &ArticleService{
		articleRepo:     articleRepo,
		measureUnitRepo: measureUnitRepo,
	}
}

// requireActiveMeasureUnit checks that the referenced measure unit exists and
// is active. Articles cannot be attached to retired units.
func (s *ArticleService) requireActiveMeasureUnit(ctx context.Context, measureUnitID string) error {
	unit, err := s.measureUnitRepo.FindMeasureUnitByID(ctx, measureUnitID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: measure unit %s does not exist", apperrors.ErrValidation, measureUnitID)
		}
		return fmt.Errorf("failed to check measure unit: %w", err)
	}
	if !unit.IsActive {
		return fmt.Errorf("%w: measure unit %s is inactive", apperrors.ErrValidation, measureUnitID)
	}
	return nil
}

func (s *ArticleService) CreateArticle(ctx context.Context, req dto.CreateArticleRequest, creatorUserID string) (*domain.Article, error) {
	if req.Stock.IsNegative() {
		return nil, fmt.Errorf("%w: stock cannot be negative", apperrors.ErrValidation)
	}
	if err := s.requireActiveMeasureUnit(ctx, req.MeasureUnitID); err != nil {
		return nil, err
	}

	now := time.Now()
	article := domain.Article{
		ArticleID:     uuid.NewString(),
		Description:   strings.TrimSpace(req.Description),
		Brand:         req.Brand,
		MeasureUnitID: req.MeasureUnitID,
		Stock:         req.Stock,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.articleRepo.SaveArticle(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to create article in service: %w", err)
	}

	return &article, nil
}

func (s *ArticleService) GetArticleByID(ctx context.Context, articleID string) (*domain.Article, error) {
	article, err := s.articleRepo.FindArticleByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get article by ID in service: %w", err)
	}
	return article, nil
}

func (s *ArticleService) ListArticles(ctx context.Context) ([]domain.Article, error) {
	articles, err := s.articleRepo.ListArticles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles in service: %w", err)
	}
	if articles == nil {
		return []domain.Article{}, nil
	}
	return articles, nil
}

func (s *ArticleService) UpdateArticle(ctx context.Context, articleID string, req dto.UpdateArticleRequest, userID string) (*domain.Article, error) {
	article, err := s.articleRepo.FindArticleByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to find article for update: %w", err)
	}

	if req.Description != nil {
		article.Description = strings.TrimSpace(*req.Description)
	}
	if req.Brand != nil {
		article.Brand = req.Brand
	}
	if req.MeasureUnitID != nil {
		if err := s.requireActiveMeasureUnit(ctx, *req.MeasureUnitID); err != nil {
			return nil, err
		}
		article.MeasureUnitID = *req.MeasureUnitID
		article.MeasureUnit = nil
	}
	if req.Stock != nil {
		if req.Stock.IsNegative() {
			return nil, fmt.Errorf("%w: stock cannot be negative", apperrors.ErrValidation)
		}
		article.Stock = *req.Stock
	}
	if req.IsActive != nil {
		article.IsActive = *req.IsActive
	}

	article.LastUpdatedAt = time.Now()
	article.LastUpdatedBy = userID

	if err := s.articleRepo.UpdateArticle(ctx, *article); err != nil {
		return nil, fmt.Errorf("failed to update article in service: %w", err)
	}

	return article, nil
}

func (s *ArticleService) DeleteArticle(ctx context.Context, articleID string) error {
	if err := s.articleRepo.DeleteArticle(ctx, articleID); err != nil {
		return fmt.Errorf("failed to delete article in service: %w", err)
	}
	return nil
}
