package services

import (
	"context"

	"github.com/ncabrera/purchasing_backend/internal/core/domain"
	"github.com/ncabrera/purchasing_backend/internal/dto"
)

// SupplierSvcFacade defines the service surface for suppliers.
type SupplierSvcFacade interface {
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, creatorUserID string) (*domain.Supplier, error)
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, userID string) (*domain.Supplier, error)
	DeleteSupplier(ctx context.Context, supplierID string) error
}
