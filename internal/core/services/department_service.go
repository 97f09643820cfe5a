package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ncabrera/purchasing_backend/internal/apperrors"
	"github.com/ncabrera/purchasing_backend/internal/core/domain"
	portsrepo "github.com/ncabrera/purchasing_backend/internal/core/ports/repositories"
	"github.com/ncabrera/purchasing_backend/internal/dto"
	"github.com/google/uuid"
)

// departmentNamePattern accepts letters (including accented ones and ñ/ü)
// and spaces. Digits and punctuation are rejected.
var departmentNamePattern = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑüÜ ]+$`)

const departmentNameMaxLen = 50

type DepartmentService struct {
	departmentRepo portsrepo.DepartmentRepositoryFacade
}

func NewDepartmentService(departmentRepo portsrepo.DepartmentRepositoryFacade) *DepartmentService {
	return &DepartmentService{departmentRepo: departmentRepo}
}

func validateDepartmentName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("%w: department name is required", apperrors.ErrValidation)
	}
	if len([]rune(trimmed)) > departmentNameMaxLen {
		return fmt.Errorf("%w: department name exceeds %d characters", apperrors.ErrValidation, departmentNameMaxLen)
	}
	if !departmentNamePattern.MatchString(trimmed) {
		return fmt.Errorf("%w: department name may only contain letters and spaces", apperrors.ErrValidation)
	}
	return nil
}

func (s *DepartmentService) CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest, creatorUserID string) (*domain.Department, error) {
	if err := validateDepartmentName(req.Name); err != nil {
		return nil, err
	}

	now := time.Now()
	department := domain.Department{
		DepartmentID: uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.departmentRepo.SaveDepartment(ctx, department); err != nil {
		return nil, fmt.Errorf("failed to create department in service: %w", err)
	}

	return &department, nil
}

func (s *DepartmentService) GetDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	department, err := s.departmentRepo.FindDepartmentByID(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get department by ID in service: %w", err)
	}
	return department, nil
}

func (s *DepartmentService) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	departments, err := s.departmentRepo.ListDepartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments in service: %w", err)
	}
	if departments == nil {
		return []domain.Department{}, nil
	}
	return departments, nil
}

func (s *DepartmentService) UpdateDepartment(ctx context.Context, departmentID string, req dto.UpdateDepartmentRequest, userID string) (*domain.Department, error) {
	department, err := s.departmentRepo.FindDepartmentByID(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find department for update: %w", err)
	}

	if req.Name != nil {
		if err := validateDepartmentName(*req.Name); err != nil {
			return nil, err
		}
		department.Name = strings.TrimSpace(*req.Name)
	}
	if req.IsActive != nil {
		department.IsActive = *req.IsActive
	}

	department.LastUpdatedAt = time.Now()
	department.LastUpdatedBy = userID

	if err := s.departmentRepo.UpdateDepartment(ctx, *department); err != nil {
		return nil, fmt.Errorf("failed to update department in service: %w", err)
	}

	return department, nil
}

func (s *DepartmentService) DeleteDepartment(ctx context.Context, departmentID string) error {
	if err := s.departmentRepo.DeleteDepartment(ctx, departmentID); err != nil {
		return fmt.Errorf("failed to delete department in service: %w", err)
	}
	return nil
}
