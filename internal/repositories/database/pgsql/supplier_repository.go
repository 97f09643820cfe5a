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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSupplierRepository struct {
	BaseRepository
}

// newPgxSupplierRepository creates a new repository for supplier data.
func newPgxSupplierRepository(pool *pgxpool.Pool) portsrepo.SupplierRepositoryFacade {
	return &PgxSupplierRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SupplierRepositoryFacade = (*PgxSupplierRepository)(nil)

// SaveSupplier inserts a new supplier. The fiscal_id column carries a unique
// constraint, so a repeated cédula or RNC surfaces as ErrDuplicate.
func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	modelSupplier := mapping.ToModelSupplier(supplier)

	query := `
		INSERT INTO suppliers (supplier_id, fiscal_id, display_name, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelSupplier.SupplierID,
		modelSupplier.FiscalID,
		modelSupplier.DisplayName,
		modelSupplier.IsActive,
		modelSupplier.CreatedAt,
		modelSupplier.CreatedBy,
		modelSupplier.LastUpdatedAt,
		modelSupplier.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: supplier with fiscal ID %s already exists", apperrors.ErrDuplicate, modelSupplier.FiscalID)
		}
		return fmt.Errorf("failed to save supplier: %w", err)
	}
	return nil
}

// UpdateSupplier persists field changes to an existing supplier.
func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	modelSupplier := mapping.ToModelSupplier(supplier)

	query := `
		UPDATE suppliers
		SET fiscal_id = $2, display_name = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE supplier_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelSupplier.SupplierID,
		modelSupplier.FiscalID,
		modelSupplier.DisplayName,
		modelSupplier.IsActive,
		modelSupplier.LastUpdatedAt,
		modelSupplier.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: supplier with fiscal ID %s already exists", apperrors.ErrDuplicate, modelSupplier.FiscalID)
		}
		return fmt.Errorf("failed to update supplier %s: %w", modelSupplier.SupplierID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteSupplier removes a supplier.
func (r *PgxSupplierRepository) DeleteSupplier(ctx context.Context, supplierID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM suppliers WHERE supplier_id = $1;`, supplierID)
	if err != nil {
		return fmt.Errorf("failed to delete supplier %s: %w", supplierID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindSupplierByID retrieves a supplier by its ID.
func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	query := `
		SELECT supplier_id, fiscal_id, display_name, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM suppliers
		WHERE supplier_id = $1;
	`
	var modelSupplier models.Supplier
	err := r.Pool.QueryRow(ctx, query, supplierID).Scan(
		&modelSupplier.SupplierID,
		&modelSupplier.FiscalID,
		&modelSupplier.DisplayName,
		&modelSupplier.IsActive,
		&modelSupplier.CreatedAt,
		&modelSupplier.CreatedBy,
		&modelSupplier.LastUpdatedAt,
		&modelSupplier.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find supplier by ID %s: %w", supplierID, err)
	}

	domainSupplier := mapping.ToDomainSupplier(modelSupplier)
	return &domainSupplier, nil
}

// ListSuppliers retrieves all suppliers ordered by display name.
func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	query := `
		SELECT supplier_id, fiscal_id, display_name, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM suppliers
		ORDER BY display_name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	modelSuppliers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Supplier, error) {
		var supplier models.Supplier
		err := row.Scan(
			&supplier.SupplierID,
			&supplier.FiscalID,
			&supplier.DisplayName,
			&supplier.IsActive,
			&supplier.CreatedAt,
			&supplier.CreatedBy,
			&supplier.LastUpdatedAt,
			&supplier.LastUpdatedBy,
		)
		return supplier, err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan suppliers: %w", err)
	}

	return mapping.ToDomainSupplierSlice(modelSuppliers), nil
}
