package repositories

import (
	"context"

	"github.com/ncabrera/purchasing_backend/internal/core/domain"
)

// OrderReader defines read operations for purchase order data
type OrderReader interface {
	// FindOrderByID retrieves a specific purchase order by its ID.
	FindOrderByID(ctx context.Context, orderID string) (*domain.PurchaseOrder, error)

	// FindOrderDetailsByID retrieves a purchase order joined with the article
	// description and supplier display name, as the ledger posting needs it.
	FindOrderDetailsByID(ctx context.Context, orderID string) (*domain.PurchaseOrderDetails, error)

	// ListOrders retrieves all purchase orders, newest first.
	ListOrders(ctx context.Context) ([]domain.PurchaseOrderDetails, error)
}

// OrderWriter defines write operations for purchase order data
type OrderWriter interface {
	// SaveOrder persists a new purchase order.
	SaveOrder(ctx context.Context, order domain.PurchaseOrder) error

	// UpdateOrder persists changes to an existing purchase order.
	// The order number column is never touched.
	UpdateOrder(ctx context.Context, order domain.PurchaseOrder) error

	// DeleteOrder removes a purchase order. No ledger reversal happens here.
	DeleteOrder(ctx context.Context, orderID string) error
}

// OrderNumberSequence is the primary source of purchase order numbers.
// Callers fall back to a locally synthesized code when it fails.
type OrderNumberSequence interface {
	// NextOrderNumber asks the database sequence function for the next
	// ready-to-use order code (OC-YYYYMMDD-NNNN).
	NextOrderNumber(ctx context.Context) (string, error)
}

// OrderRepositoryFacade combines all order-related repository interfaces
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
	OrderNumberSequence
}

// OrderRepositoryWithTx extends OrderRepositoryFacade with transaction capabilities
type OrderRepositoryWithTx interface {
	OrderRepositoryFacade
	TransactionManager
}
