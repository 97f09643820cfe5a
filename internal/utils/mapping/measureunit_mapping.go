package mapping

import (
	"github.com/ncabrera/purchasing_backend/internal/core/domain"
	"github.com/ncabrera/purchasing_backend/internal/models"
)

// ToModelMeasureUnit converts a domain MeasureUnit to a model MeasureUnit
func ToModelMeasureUnit(d domain.MeasureUnit) models.MeasureUnit {
	return models.MeasureUnit{
		MeasureUnitID: d.MeasureUnitID,
		Description:   d.Description,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMeasureUnit converts a model MeasureUnit to a domain MeasureUnit
func ToDomainMeasureUnit(m models.MeasureUnit) domain.MeasureUnit {
	return domain.MeasureUnit{
		MeasureUnitID: m.MeasureUnitID,
		Description:   m.Description,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMeasureUnitSlice converts a slice of model MeasureUnits to domain MeasureUnits
func ToDomainMeasureUnitSlice(ms []models.MeasureUnit) []domain.MeasureUnit {
	ds := make([]domain.MeasureUnit, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMeasureUnit(m)
	}
	return ds
}
