package dto

import (
	"time"

	"github.com/ncabrera/purchasing_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest defines the data needed to create a new purchase order.
// Status may be any lifecycle state; creating directly into APPROVED triggers
// the accounting posting. Quantity and UnitCost accept JSON numbers or
// numeric strings (the data layer historically sends both).
type CreateOrderRequest struct {
	OrderDate  time.Time       `json:"orderDate" binding:"required"`
	Status     string          `json:"status,omitempty"`
	ArticleID  string          `json:"articleID" binding:"required,uuid"`
	SupplierID string          `json:"supplierID" binding:"required,uuid"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitCost   decimal.Decimal `json:"unitCost"`
}

// UpdateOrderRequest defines the updatable fields of a purchase order.
// The order number is immutable and deliberately absent.
type UpdateOrderRequest struct {
	OrderDate  *time.Time       `json:"orderDate,omitempty"`
	Status     *string          `json:"status,omitempty"`
	ArticleID  *string          `json:"articleID,omitempty" binding:"omitempty,uuid"`
	SupplierID *string          `json:"supplierID,omitempty" binding:"omitempty,uuid"`
	Quantity   *decimal.Decimal `json:"quantity,omitempty"`
	UnitCost   *decimal.Decimal `json:"unitCost,omitempty"`
}

// OrderResponse defines the data returned for a purchase order.
type OrderResponse struct {
	OrderID       string          `json:"orderID"`
	OrderNumber   string          `json:"orderNumber"`
	OrderDate     time.Time       `json:"orderDate"`
	Status        string          `json:"status"`
	ArticleID     string          `json:"articleID"`
	SupplierID    string          `json:"supplierID"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitCost      decimal.Decimal `json:"unitCost"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// OrderDetailsResponse is an OrderResponse enriched with display data.
type OrderDetailsResponse struct {
	OrderResponse
	ArticleDescription  string `json:"articleDescription"`
	SupplierDisplayName string `json:"supplierDisplayName"`
}

// ToOrderResponse converts a domain.PurchaseOrder to OrderResponse DTO
func ToOrderResponse(o *domain.PurchaseOrder) OrderResponse {
	return OrderResponse{
		OrderID:       o.OrderID,
		OrderNumber:   o.OrderNumber,
		OrderDate:     o.OrderDate,
		Status:        string(o.Status),
		ArticleID:     o.ArticleID,
		SupplierID:    o.SupplierID,
		Quantity:      o.Quantity,
		UnitCost:      o.UnitCost,
		Subtotal:      o.Subtotal,
		CreatedAt:     o.CreatedAt,
		LastUpdatedAt: o.LastUpdatedAt,
	}
}

// ToOrderDetailsResponse converts a domain.PurchaseOrderDetails to its DTO
func ToOrderDetailsResponse(d *domain.PurchaseOrderDetails) OrderDetailsResponse {
	return OrderDetailsResponse{
		OrderResponse:       ToOrderResponse(&d.PurchaseOrder),
		ArticleDescription:  d.ArticleDescription,
		SupplierDisplayName: d.SupplierDisplayName,
	}
}

// ToOrderDetailsResponses converts a slice of domain.PurchaseOrderDetails to DTOs
func ToOrderDetailsResponses(ds []domain.PurchaseOrderDetails) []OrderDetailsResponse {
	res := make([]OrderDetailsResponse, len(ds))
	for i := range ds {
		res[i] = ToOrderDetailsResponse(&ds[i])
	}
	return res
}
