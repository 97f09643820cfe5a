package services

import (
	"context"

	"github.com/ncabrera/purchasing_backend/internal/core/domain"
	"github.com/ncabrera/purchasing_backend/internal/dto"
)

// DepartmentSvcFacade defines the service surface for departments.
type DepartmentSvcFacade interface {
	CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest, creatorUserID string) (*domain.Department, error)
	GetDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error)
	ListDepartments(ctx context.Context) ([]domain.Department, error)
	UpdateDepartment(ctx context.Context, departmentID string, req dto.UpdateDepartmentRequest, userID string) (*domain.Department, error)
	DeleteDepartment(ctx context.Context, departmentID string) error
}
