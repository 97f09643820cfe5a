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

type PgxDepartmentRepository struct {
	BaseRepository
}

// newPgxDepartmentRepository creates a new repository for department data.
func newPgxDepartmentRepository(pool *pgxpool.Pool) portsrepo.DepartmentRepositoryFacade {
	return &PgxDepartmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.DepartmentRepositoryFacade = (*PgxDepartmentRepository)(nil)

// SaveDepartment inserts a new department.
func (r *PgxDepartmentRepository) SaveDepartment(ctx context.Context, department domain.Department) error {
	modelDept := mapping.ToModelDepartment(department)

	query := `
		INSERT INTO departments (department_id, name, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelDept.DepartmentID,
		modelDept.Name,
		modelDept.IsActive,
		modelDept.CreatedAt,
		modelDept.CreatedBy,
		modelDept.LastUpdatedAt,
		modelDept.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: department %q already exists", apperrors.ErrDuplicate, modelDept.Name)
		}
		return fmt.Errorf("failed to save department: %w", err)
	}
	return nil
}

// UpdateDepartment persists field changes to an existing department.
func (r *PgxDepartmentRepository) UpdateDepartment(ctx context.Context, department domain.Department) error {
	modelDept := mapping.ToModelDepartment(department)

	query := `
		UPDATE departments
		SET name = $2, is_active = $3, last_updated_at = $4, last_updated_by = $5
		WHERE department_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelDept.DepartmentID,
		modelDept.Name,
		modelDept.IsActive,
		modelDept.LastUpdatedAt,
		modelDept.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update department %s: %w", modelDept.DepartmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteDepartment removes a department.
func (r *PgxDepartmentRepository) DeleteDepartment(ctx context.Context, departmentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM departments WHERE department_id = $1;`, departmentID)
	if err != nil {
		return fmt.Errorf("failed to delete department %s: %w", departmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindDepartmentByID retrieves a department by its ID.
func (r *PgxDepartmentRepository) FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	query := `
		SELECT department_id, name, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM departments
		WHERE department_id = $1;
	`
	var modelDept models.Department
	err := r.Pool.QueryRow(ctx, query, departmentID).Scan(
		&modelDept.DepartmentID,
		&modelDept.Name,
		&modelDept.IsActive,
		&modelDept.CreatedAt,
		&modelDept.CreatedBy,
		&modelDept.LastUpdatedAt,
		&modelDept.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find department by ID %s: %w", departmentID, err)
	}

	domainDept := mapping.ToDomainDepartment(modelDept)
	return &domainDept, nil
}

// ListDepartments retrieves all departments ordered by name.
func (r *PgxDepartmentRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	query := `
		SELECT department_id, name, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM departments
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	modelDepts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Department, error) {
		var dept models.Department
		err := row.Scan(
			&dept.DepartmentID,
			&dept.Name,
			&dept.IsActive,
			&dept.CreatedAt,
			&dept.CreatedBy,
			&dept.LastUpdatedAt,
			&dept.LastUpdatedBy,
		)
		return dept, err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan departments: %w", err)
	}

	return mapping.ToDomainDepartmentSlice(modelDepts), nil
}
