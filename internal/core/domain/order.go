package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus indicates the lifecycle state of a purchase order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderApproved  OrderStatus = "APPROVED"
	OrderRejected  OrderStatus = "REJECTED"
	OrderCompleted OrderStatus = "COMPLETED"
)

// IsValid reports whether the status is one of the known lifecycle states.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderApproved, OrderRejected, OrderCompleted:
		return true
	}
	return false
}

// allowedTransitions is the lifecycle edge allow-list. Same-state saves are
// always permitted; REJECTED and COMPLETED are terminal.
var allowedTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:  {OrderApproved, OrderRejected},
	OrderApproved: {OrderCompleted},
}

// CanTransitionTo reports whether an order may move from s to target.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	if s == target {
		return true
	}
	for _, next := range allowedTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// PurchaseOrder represents one order for a single article from a single supplier.
// OrderNumber is assigned at creation and never changes afterwards.
type PurchaseOrder struct {
	OrderID     string          `json:"orderID"`     // Primary Key (UUID)
	OrderNumber string          `json:"orderNumber"` // Unique human-readable code (OC-YYYYMMDD-NNNN)
	OrderDate   time.Time       `json:"orderDate"`
	Status      OrderStatus     `json:"status"`
	ArticleID   string          `json:"articleID"`  // FK -> Article.articleID (Not Null)
	SupplierID  string          `json:"supplierID"` // FK -> Supplier.supplierID (Not Null)
	Quantity    decimal.Decimal `json:"quantity"`   // Positive
	UnitCost    decimal.Decimal `json:"unitCost"`   // Non-negative
	Subtotal    decimal.Decimal `json:"subtotal"`   // Quantity * UnitCost
	AuditFields
}

// PurchaseOrderDetails is a purchase order enriched with the display data the
// ledger posting needs: the article description and the supplier name.
type PurchaseOrderDetails struct {
	PurchaseOrder
	ArticleDescription  string `json:"articleDescription"`
	SupplierDisplayName string `json:"supplierDisplayName"`
}
