package dto

import (
	"time"

	"github.com/ncabrera/purchasing_backend/internal/core/domain"
)

// CreateDepartmentRequest defines the data needed to create a new department.
type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

// UpdateDepartmentRequest defines the updatable fields of a department.
type UpdateDepartmentRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,max=50"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// DepartmentResponse defines the data returned for a department.
type DepartmentResponse struct {
	DepartmentID  string    `json:"departmentID"`
	Name          string    `json:"name"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToDepartmentResponse converts a domain.Department to DepartmentResponse DTO
func ToDepartmentResponse(d *domain.Department) DepartmentResponse {
	return DepartmentResponse{
		DepartmentID:  d.DepartmentID,
		Name:          d.Name,
		IsActive:      d.IsActive,
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

// ToDepartmentResponses converts a slice of domain.Department to DTOs
func ToDepartmentResponses(ds []domain.Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(ds))
	for i := range ds {
		res[i] = ToDepartmentResponse(&ds[i])
	}
	return res
}
