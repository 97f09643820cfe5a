package repositories

import (
	"context"

	"github.com/ncabrera/purchasing_backend/internal/core/domain"
)

// MeasureUnitReader defines read operations for measure unit data
type MeasureUnitReader interface {
	// FindMeasureUnitByID retrieves a specific measure unit by its ID.
	FindMeasureUnitByID(ctx context.Context, measureUnitID string) (*domain.MeasureUnit, error)

	// ListMeasureUnits retrieves all measure units ordered by description.
	ListMeasureUnits(ctx context.Context) ([]domain.MeasureUnit, error)
}

// MeasureUnitWriter defines write operations for measure unit data
type MeasureUnitWriter interface {
	// SaveMeasureUnit persists a new measure unit.
	SaveMeasureUnit(ctx context.Context, unit domain.MeasureUnit) error

	// UpdateMeasureUnit persists changes to an existing measure unit.
	UpdateMeasureUnit(ctx context.Context, unit domain.MeasureUnit) error

	// DeleteMeasureUnit removes a measure unit.
	DeleteMeasureUnit(ctx context.Context, measureUnitID string) error
}

// MeasureUnitRepositoryFacade combines all measure-unit-related repository interfaces
type MeasureUnitRepositoryFacade interface {
	MeasureUnitReader
	MeasureUnitWriter
}
