package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ncabrera/purchasing_backend/internal/apperrors"
	"github.com/ncabrera/purchasing_backend/internal/core/domain"
	portsrepo "github.com/ncabrera/purchasing_backend/internal/core/ports/repositories"
	"github.com/ncabrera/purchasing_backend/internal/dto"
	"github.com/google/uuid"
)

type MeasureUnitService struct {
	measureUnitRepo portsrepo.MeasureUnitRepositoryFacade
}

func NewMeasureUnitService(measureUnitRepo portsrepo.MeasureUnitRepositoryFacade) *MeasureUnitService {
	return &MeasureUnitService{measureUnitRepo: measureUnitRepo}
}

func (s *MeasureUnitService) CreateMeasureUnit(ctx context.Context, req dto.CreateMeasureUnitRequest, creatorUserID string) (*domain.MeasureUnit, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: measure unit description is required", apperrors.ErrValidation)
	}

	now := time.Now()
	unit := domain.MeasureUnit{
		MeasureUnitID: uuid.NewString(),
		Description:   description,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.measureUnitRepo.SaveMeasureUnit(ctx, unit); err != nil {
		return nil, fmt.Errorf("failed to create measure unit in service: %w", err)
	}

	return &unit, nil
}

func (s *MeasureUnitService) GetMeasureUnitByID(ctx context.Context, measureUnitID string) (*domain.MeasureUnit, error) {
	unit, err := s.measureUnitRepo.FindMeasureUnitByID(ctx, measureUnitID)
	if err != nil {
		return nil, fmt.Errorf("failed to get measure unit by ID in service: %w", err)
	}
	return unit, nil
}

func (s *MeasureUnitService) ListMeasureUnits(ctx context.Context) ([]domain.MeasureUnit, error) {
	units, err := s.measureUnitRepo.ListMeasureUnits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list measure units in service: %w", err)
	}
	if units == nil {
		return []domain.MeasureUnit{}, nil
	}
	return units, nil
}

func (s *MeasureUnitService) UpdateMeasureUnit(ctx context.Context, measureUnitID string, req dto.UpdateMeasureUnitRequest, userID string) (*domain.MeasureUnit, error) {
	unit, err := s.measureUnitRepo.FindMeasureUnitByID(ctx, measureUnitID)
	if err != nil {
		return nil, fmt.Errorf("failed to find measure unit for update: %w", err)
	}

	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			return nil, fmt.Errorf("%w: measure unit description is required", apperrors.ErrValidation)
		}
		unit.Description = description
	}
	if req.IsActive != nil {
		unit.IsActive = *req.IsActive
	}

	unit.LastUpdatedAt = time.Now()
	unit.LastUpdatedBy = userID

	if err := s.measureUnitRepo.UpdateMeasureUnit(ctx, *unit); err != nil {
		return nil, fmt.Errorf("failed to update measure unit in service: %w", err)
	}

	return unit, nil
}

func (s *MeasureUnitService) DeleteMeasureUnit(ctx context.Context, measureUnitID string) error {
	if err := s.measureUnitRepo.DeleteMeasureUnit(ctx, measureUnitID); err != nil {
		return fmt.Errorf("failed to delete measure unit in service: %w", err)
	}
	return nil
}
