package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ncabrera/purchasing_backend/internal/apperrors"
	"github.com/ncabrera/purchasing_backend/internal/core/domain"
	portsrepo "github.com/ncabrera/purchasing_backend/internal/core/ports/repositories"
	"github.com/ncabrera/purchasing_backend/internal/dto"
	"github.com/ncabrera/purchasing_backend/internal/middleware"
	"github.com/ncabrera/purchasing_backend/internal/utils/fiscalid"
	"github.com/google/uuid"
)

type SupplierService struct {
	supplierRepo portsrepo.SupplierRepositoryFacade
}

func NewSupplierService(supplierRepo portsrepo.SupplierRepositoryFacade) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// canonicalFiscalID checksum-validates a cédula or RNC and returns its
// hyphenated storage form.
func canonicalFiscalID(raw string) (string, error) {
	if !fiscalid.Validate(raw) {
		return "", fmt.Errorf("%w: invalid cedula or RNC", apperrors.ErrValidation)
	}
	return fiscalid.Format(raw), nil
}

func (s *SupplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, creatorUserID string) (*domain.Supplier, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	canonical, err := canonicalFiscalID(req.FiscalID)
	if err != nil {
		logger.Warn("Rejected supplier with invalid fiscal ID", slog.String("fiscal_id", req.FiscalID))
		return nil, err
	}

	now := time.Now()
	supplier := domain.Supplier{
		SupplierID:  uuid.NewString(),
		FiscalID:    canonical,
		DisplayName: strings.TrimSpace(req.DisplayName),
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		return nil, fmt.Errorf("failed to create supplier in service: %w", err)
	}

	logger.Info("Supplier created", slog.String("supplier_id", supplier.SupplierID))
	return &supplier, nil
}

func (s *SupplierService) GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to get supplier by ID in service: %w", err)
	}
	return supplier, nil
}

func (s *SupplierService) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	suppliers, err := s.supplierRepo.ListSuppliers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers in service: %w", err)
	}
	if suppliers == nil {
		return []domain.Supplier{}, nil
	}
	return suppliers, nil
}

func (s *SupplierService) UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, userID string) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to find supplier for update: %w", err)
	}

	if req.FiscalID != nil {
		canonical, err := canonicalFiscalID(*req.FiscalID)
		if err != nil {
			return nil, err
		}
		supplier.FiscalID = canonical
	}
	if req.DisplayName != nil {
		supplier.DisplayName = strings.TrimSpace(*req.DisplayName)
	}
	if req.IsActive != nil {
		supplier.IsActive = *req.IsActive
	}

	supplier.LastUpdatedAt = time.Now()
	supplier.LastUpdatedBy = userID

	if err := s.supplierRepo.UpdateSupplier(ctx, *supplier); err != nil {
		return nil, fmt.Errorf("failed to update supplier in service: %w", err)
	}

	return supplier, nil
}

func (s *SupplierService) DeleteSupplier(ctx context.Context, supplierID string) error {
	if err := s.supplierRepo.DeleteSupplier(ctx, supplierID); err != nil {
		return fmt.Errorf("failed to delete supplier in service: %w", err)
	}
	return nil
}
