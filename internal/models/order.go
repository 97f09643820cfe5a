package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrder represents a row of the purchase_orders table.
type PurchaseOrder struct {
	OrderID     string          `json:"orderID"`
	OrderNumber string          `json:"orderNumber"`
	OrderDate   time.Time       `json:"orderDate"`
	Status      string          `json:"status"`
	ArticleID   string          `json:"articleID"`
	SupplierID  string          `json:"supplierID"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unitCost"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	AuditFields
}
