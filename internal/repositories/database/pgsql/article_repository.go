package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/ncabrera/purchasing_backend/internal/apperrors"
	"github.com/ncabrera/purchasing_backend/internal/core/domain"
	portsrepo "github.com/ncabrera/purchasing_backend/internal/core/ports/repositories"
	"github.com/ncabrera/purchasing_backend/internal/models"
	"github.com/ncabrera/purchasing_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxArticleRepository struct {
	BaseRepository
}

// newPgxArticleRepository creates a new repository for article data.
func newPgxArticleRepository(pool *pgxpool.Pool) portsrepo.ArticleRepositoryFacade {
	return &PgxArticleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ArticleRepositoryFacade = (*PgxArticleRepository)(nil)

// SaveArticle inserts a new article.
func (r *PgxArticleRepository) SaveArticle(ctx context.Context, article domain.Article) error {
	modelArticle := mapping.ToModelArticle(article)

	query := `
		INSERT INTO articles (article_id, description, brand, measure_unit_id, stock, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelArticle.ArticleID,
		modelArticle.Description,
		modelArticle.Brand,
		modelArticle.MeasureUnitID,
		modelArticle.Stock,
		modelArticle.IsActive,
		modelArticle.CreatedAt,
		modelArticle.CreatedBy,
		modelArticle.LastUpdatedAt,
		modelArticle.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save article: %w", err)
	}
	return nil
}

// UpdateArticle persists field changes to an existing article.
func (r *PgxArticleRepository) UpdateArticle(ctx context.Context, article domain.Article) error {
	modelArticle := mapping.ToModelArticle(article)

	query := `
		UPDATE articles
		SET description = $2, brand = $3, measure_unit_id = $4, stock = $5, is_active = $6, last_updated_at = $7, last_updated_by = $8
		WHERE article_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelArticle.ArticleID,
		modelArticle.Description,
		modelArticle.Brand,
		modelArticle.MeasureUnitID,
		modelArticle.Stock,
		modelArticle.IsActive,
		modelArticle.LastUpdatedAt,
		modelArticle.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update article %s: %w", modelArticle.ArticleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteArticle removes an article.
func (r *PgxArticleRepository) DeleteArticle(ctx context.Context, articleID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM articles WHERE article_id = $1;`, articleID)
	if err != nil {
		return fmt.Errorf("failed to delete article %s: %w", articleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindArticleByID retrieves an article by its ID with its measure unit joined in.
func (r *PgxArticleRepository) FindArticleByID(ctx context.Context, articleID string) (*domain.Article, error) {
	query := `
		SELECT a.article_id, a.description, a.brand, a.measure_unit_id, a.stock, a.is_active,
		       a.created_at, a.created_by, a.last_updated_at, a.last_updated_by,
		       mu.description, mu.is_active
		FROM articles a
		JOIN measure_units mu ON mu.measure_unit_id = a.measure_unit_id
		WHERE a.article_id = $1;
	`
	var modelArticle models.Article
	var modelUnit models.MeasureUnit
	err := r.Pool.QueryRow(ctx, query, articleID).Scan(
		&modelArticle.ArticleID,
		&modelArticle.Description,
		&modelArticle.Brand,
		&modelArticle.MeasureUnitID,
		&modelArticle.Stock,
		&modelArticle.IsActive,
		&modelArticle.CreatedAt,
		&modelArticle.CreatedBy,
		&modelArticle.LastUpdatedAt,
		&modelArticle.LastUpdatedBy,
		&modelUnit.Description,
		&modelUnit.IsActive,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find article by ID %s: %w", articleID, err)
	}

	modelUnit.MeasureUnitID = modelArticle.MeasureUnitID
	domainArticle := mapping.ToDomainArticle(modelArticle)
	domainUnit := mapping.ToDomainMeasureUnit(modelUnit)
	domainArticle.MeasureUnit = &domainUnit
	return &domainArticle, nil
}

// ListArticles retrieves all articles with their measure unit joined in,
// ordered by description.
func (r *PgxArticleRepository) ListArticles(ctx context.Context) ([]domain.Article, error) {
	query := `
		SELECT a.article_id, a.description, a.brand, a.measure_unit_id, a.stock, a.is_active,
		       a.created_at, a.created_by, a.last_updated_at, a.last_updated_by,
		       mu.description, mu.is_active
		FROM articles a
		JOIN measure_units mu ON mu.measure_unit_id = a.measure_unit_id
		ORDER BY a.description;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	articles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Article, error) {
		var modelArticle models.Article
		var modelUnit models.MeasureUnit
		err := row.Scan(
			&modelArticle.ArticleID,
			&modelArticle.Description,
			&modelArticle.Brand,
			&modelArticle.MeasureUnitID,
			&modelArticle.Stock,
			&modelArticle.IsActive,
			&modelArticle.CreatedAt,
			&modelArticle.CreatedBy,
			&modelArticle.LastUpdatedAt,
			&modelArticle.LastUpdatedBy,
			&modelUnit.Description,
			&modelUnit.IsActive,
		)
		if err != nil {
			return domain.Article{}, err
		}
		modelUnit.MeasureUnitID = modelArticle.MeasureUnitID
		domainArticle := mapping.ToDomainArticle(modelArticle)
		domainUnit := mapping.ToDomainMeasureUnit(modelUnit)
		domainArticle.MeasureUnit = &domainUnit
		return domainArticle, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan articles: %w", err)
	}

	return articles, nil
}
