package mapping

import (
	"github.com/ncabrera/purchasing_backend/internal/core/domain"
	"github.com/ncabrera/purchasing_backend/internal/models"
)

// ToModelArticle converts a domain Article to a model Article
func ToModelArticle(d domain.Article) models.Article {
	return models.Article{
		ArticleID:     d.ArticleID,
		Description:   d.Description,
		Brand:         d.Brand,
		MeasureUnitID: d.MeasureUnitID,
		Stock:         d.Stock,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainArticle converts a model Article to a domain Article
func ToDomainArticle(m models.Article) domain.Article {
	return domain.Article{
		ArticleID:     m.ArticleID,
		Description:   m.Description,
		Brand:         m.Brand,
		MeasureUnitID: m.MeasureUnitID,
		Stock:         m.Stock,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainArticleSlice converts a slice of model Articles to domain Articles
func ToDomainArticleSlice(ms []models.Article) []domain.Article {
	ds := make([]domain.Article, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainArticle(m)
	}
	return ds
}
