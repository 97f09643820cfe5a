package dto

import (
	"time"

	"github.com/ncabrera/purchasing_backend/internal/core/domain"
)

// CreateMeasureUnitRequest defines the data needed to create a new measure unit.
type CreateMeasureUnitRequest struct {
	Description string `json:"description" binding:"required,max=100"`
}

// UpdateMeasureUnitRequest defines the updatable fields of a measure unit.
type UpdateMeasureUnitRequest struct {
	Description *string `json:"description,omitempty" binding:"omitempty,max=100"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// MeasureUnitResponse defines the data returned for a measure unit.
type MeasureUnitResponse struct {
	MeasureUnitID string    `json:"measureUnitID"`
	Description   string    `json:"description"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToMeasureUnitResponse converts a domain.MeasureUnit to MeasureUnitResponse DTO
func ToMeasureUnitResponse(u *domain.MeasureUnit) MeasureUnitResponse {
	return MeasureUnitResponse{
		MeasureUnitID: u.MeasureUnitID,
		Description:   u.Description,
		IsActive:      u.IsActive,
		CreatedAt:     u.CreatedAt,
		LastUpdatedAt: u.LastUpdatedAt,
	}
}

// ToMeasureUnitResponses converts a slice of domain.MeasureUnit to DTOs
func ToMeasureUnitResponses(us []domain.MeasureUnit) []MeasureUnitResponse {
	res := make([]MeasureUnitResponse, len(us))
	for i := range us {
		res[i] = ToMeasureUnitResponse(&us[i])
	}
	return res
}
