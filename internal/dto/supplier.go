package dto

import (
	"time"

	"github.com/ncabrera/purchasing_backend/internal/core/domain"
)

// CreateSupplierRequest defines the data needed to create a new supplier.
// FiscalID accepts a cédula or RNC with or without separators; the service
// validates the checksum and stores the canonical hyphenated form.
type CreateSupplierRequest struct {
	FiscalID    string `json:"fiscalID" binding:"required"`
	DisplayName string `json:"displayName" binding:"required,max=100"`
}

// UpdateSupplierRequest defines the updatable fields of a supplier.
type UpdateSupplierRequest struct {
	FiscalID    *string `json:"fiscalID,omitempty"`
	DisplayName *string `json:"displayName,omitempty" binding:"omitempty,max=100"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// SupplierResponse defines the data returned for a supplier.
type SupplierResponse struct {
	SupplierID    string    `json:"supplierID"`
	FiscalID      string    `json:"fiscalID"`
	DisplayName   string    `json:"displayName"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToSupplierResponse converts a domain.Supplier to SupplierResponse DTO
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID:    s.SupplierID,
		FiscalID:      s.FiscalID,
		DisplayName:   s.DisplayName,
		IsActive:      s.IsActive,
		CreatedAt:     s.CreatedAt,
		LastUpdatedAt: s.LastUpdatedAt,
	}
}

// ToSupplierResponses converts a slice of domain.Supplier to DTOs
func ToSupplierResponses(ss []domain.Supplier) []SupplierResponse {
	res := make([]SupplierResponse, len(ss))
	for i := range ss {
		res[i] = ToSupplierResponse(&ss[i])
	}
	return res
}
