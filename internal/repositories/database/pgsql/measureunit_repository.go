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

type PgxMeasureUnitRepository struct {
	BaseRepository
}

// newPgxMeasureUnitRepository creates a new repository for measure unit data.
func newPgxMeasureUnitRepository(pool *pgxpool.Pool) portsrepo.MeasureUnitRepositoryFacade {
	return &PgxMeasureUnitRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.MeasureUnitRepositoryFacade = (*PgxMeasureUnitRepository)(nil)

// SaveMeasureUnit inserts a new measure unit.
func (r *PgxMeasureUnitRepository) SaveMeasureUnit(ctx context.Context, unit domain.MeasureUnit) error {
	modelUnit := mapping.ToModelMeasureUnit(unit)

	query := `
		INSERT INTO measure_units (measure_unit_id, description, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelUnit.MeasureUnitID,
		modelUnit.Description,
		modelUnit.IsActive,
		modelUnit.CreatedAt,
		modelUnit.CreatedBy,
		modelUnit.LastUpdatedAt,
		modelUnit.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save measure unit: %w", err)
	}
	return nil
}

// UpdateMeasureUnit persists field changes to an existing measure unit.
func (r *PgxMeasureUnitRepository) UpdateMeasureUnit(ctx context.Context, unit domain.MeasureUnit) error {
	modelUnit := mapping.ToModelMeasureUnit(unit)

	query := `
		UPDATE measure_units
		SET description = $2, is_active = $3, last_updated_at = $4, last_updated_by = $5
		WHERE measure_unit_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelUnit.MeasureUnitID,
		modelUnit.Description,
		modelUnit.IsActive,
		modelUnit.LastUpdatedAt,
		modelUnit.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update measure unit %s: %w", modelUnit.MeasureUnitID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteMeasureUnit removes a measure unit.
func (r *PgxMeasureUnitRepository) DeleteMeasureUnit(ctx context.Context, measureUnitID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM measure_units WHERE measure_unit_id = $1;`, measureUnitID)
	if err != nil {
		return fmt.Errorf("failed to delete measure unit %s: %w", measureUnitID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindMeasureUnitByID retrieves a measure unit by its ID.
func (r *PgxMeasureUnitRepository) FindMeasureUnitByID(ctx context.Context, measureUnitID string) (*domain.MeasureUnit, error) {
	query := `
		SELECT measure_unit_id, description, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM measure_units
		WHERE measure_unit_id = $1;
	`
	var modelUnit models.MeasureUnit
	err := r.Pool.QueryRow(ctx, query, measureUnitID).Scan(
		&modelUnit.MeasureUnitID,
		&modelUnit.Description,
		&modelUnit.IsActive,
		&modelUnit.CreatedAt,
		&modelUnit.CreatedBy,
		&modelUnit.LastUpdatedAt,
		&modelUnit.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find measure unit by ID %s: %w", measureUnitID, err)
	}

	domainUnit := mapping.ToDomainMeasureUnit(modelUnit)
	return &domainUnit, nil
}

// ListMeasureUnits retrieves all measure units ordered by description.
func (r *PgxMeasureUnitRepository) ListMeasureUnits(ctx context.Context) ([]domain.MeasureUnit, error) {
	query := `
		SELECT measure_unit_id, description, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM measure_units
		ORDER BY description;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query measure units: %w", err)
	}
	defer rows.Close()

	modelUnits, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.MeasureUnit, error) {
		var unit models.MeasureUnit
		err := row.Scan(
			&unit.MeasureUnitID,
			&unit.Description,
			&unit.IsActive,
			&unit.CreatedAt,
			&unit.CreatedBy,
			&unit.LastUpdatedAt,
			&unit.LastUpdatedBy,
		)
		return unit, err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan measure units: %w", err)
	}

	return mapping.ToDomainMeasureUnitSlice(modelUnits), nil
}
