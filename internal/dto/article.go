package dto

import (
	"time"

	"github.com/ncabrera/purchasing_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateArticleRequest defines the data needed to create a new article.
type CreateArticleRequest struct {
	Description   string          `json:"description" binding:"required,max=200"`
	Brand         *string         `json:"brand,omitempty" binding:"omitempty,max=100"`
	MeasureUnitID string          `json:"measureUnitID" binding:"required,uuid"`
	Stock         decimal.Decimal `json:"stock"`
}

// UpdateArticleRequest defines the updatable fields of an article.
type UpdateArticleRequest struct {
	Description   *string          `json:"description,omitempty" binding:"omitempty,max=200"`
	Brand         *string          `json:"brand,omitempty" binding:"omitempty,max=100"`
	MeasureUnitID *string          `json:"measureUnitID,omitempty" binding:"omitempty,uuid"`
	Stock         *decimal.Decimal `json:"stock,omitempty"`
	IsActive      *bool            `json:"isActive,omitempty"`
}

// ArticleResponse defines the data returned for an article.
type ArticleResponse struct {
	ArticleID     string               `json:"articleID"`
	Description   string               `json:"description"`
	Brand         *string              `json:"brand,omitempty"`
	MeasureUnitID string               `json:"measureUnitID"`
	MeasureUnit   *MeasureUnitResponse `json:"measureUnit,omitempty"`
	Stock         decimal.Decimal      `json:"stock"`
	IsActive      bool                 `json:"isActive"`
	CreatedAt     time.Time            `json:"createdAt"`
	LastUpdatedAt time.Time            `json:"lastUpdatedAt"`
}

// ToArticleResponse converts a domain.Article to ArticleResponse DTO
func ToArticleResponse(a *domain.Article) ArticleResponse {
	resp := ArticleResponse{
		ArticleID:     a.ArticleID,
		Description:   a.Description,
		Brand:         a.Brand,
		MeasureUnitID: a.MeasureUnitID,
		Stock:         a.Stock,
		IsActive:      a.IsActive,
		CreatedAt:     a.CreatedAt,
		LastUpdatedAt: a.LastUpdatedAt,
	}
	if a.MeasureUnit != nil {
		mu := ToMeasureUnitResponse(a.MeasureUnit)
		resp.MeasureUnit = &mu
	}
	return resp
}

// ToArticleResponses converts a slice of domain.Article to DTOs
func ToArticleResponses(as []domain.Article) []ArticleResponse {
	res := make([]ArticleResponse, len(as))
	for i := range as {
		res[i] = ToArticleResponse(&as[i])
	}
	return res
}
