package services

import (
	"context"

	"github.com/ncabrera/purchasing_backend/internal/core/domain"
	"github.com/ncabrera/purchasing_backend/internal/dto"
)

// MeasureUnitSvcFacade defines the service surface for measure units.
type MeasureUnitSvcFacade interface {
	CreateMeasureUnit(ctx context.Context, req dto.CreateMeasureUnitRequest, creatorUserID string) (*domain.MeasureUnit, error)
	GetMeasureUnitByID(ctx context.Context, measureUnitID string) (*domain.MeasureUnit, error)
	ListMeasureUnits(ctx context.Context) ([]domain.MeasureUnit, error)
	UpdateMeasureUnit(ctx context.Context, measureUnitID string, req dto.UpdateMeasureUnitRequest, userID string) (*domain.MeasureUnit, error)
	DeleteMeasureUnit(ctx context.Context, measureUnitID string) error
}
