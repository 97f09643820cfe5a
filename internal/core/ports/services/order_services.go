package services

import (
	"context"

	"github.com/ncabrera/purchasing_backend/internal/core/domain"
	"github.com/ncabrera/purchasing_backend/internal/dto"
)

// OrderSvcFacade defines the service surface for the purchase order lifecycle.
//
// CreateOrder and UpdateOrder may return a non-nil order together with a
// non-nil error when the order itself was saved but the subsequent ledger
// posting failed (errors.Is(err, apperrors.ErrLedgerPosting)). The saved
// order is never rolled back in that case.
type OrderSvcFacade interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest, creatorUserID string) (*domain.PurchaseOrder, error)
	GetOrderByID(ctx context.Context, orderID string) (*domain.PurchaseOrderDetails, error)
	ListOrders(ctx context.Context) ([]domain.PurchaseOrderDetails, error)
	UpdateOrder(ctx context.Context, orderID string, req dto.UpdateOrderRequest, userID string) (*domain.PurchaseOrder, error)
	DeleteOrder(ctx context.Context, orderID string) error
}

// OrderPosterSvc posts an approved purchase order to the accounting ledger
// as a balanced debit/credit pair.
type OrderPosterSvc interface {
	PostOrder(ctx context.Context, order *domain.PurchaseOrderDetails) error
}
