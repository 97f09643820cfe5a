package mapping

import (
	"github.com/ncabrera/purchasing_backend/internal/core/domain"
	"github.com/ncabrera/purchasing_backend/internal/models"
)

// ToModelPurchaseOrder converts a domain PurchaseOrder to a model PurchaseOrder
func ToModelPurchaseOrder(d domain.PurchaseOrder) models.PurchaseOrder {
	return models.PurchaseOrder{
		OrderID:     d.OrderID,
		OrderNumber: d.OrderNumber,
		OrderDate:   d.OrderDate,
		Status:      string(d.Status),
		ArticleID:   d.ArticleID,
		SupplierID:  d.SupplierID,
		Quantity:    d.Quantity,
		UnitCost:    d.UnitCost,
		Subtotal:    d.Subtotal,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPurchaseOrder converts a model PurchaseOrder to a domain PurchaseOrder
func ToDomainPurchaseOrder(m models.PurchaseOrder) domain.PurchaseOrder {
	return domain.PurchaseOrder{
		OrderID:     m.OrderID,
		OrderNumber: m.OrderNumber,
		OrderDate:   m.OrderDate,
		Status:      domain.OrderStatus(m.Status),
		ArticleID:   m.ArticleID,
		SupplierID:  m.SupplierID,
		Quantity:    m.Quantity,
		UnitCost:    m.UnitCost,
		Subtotal:    m.Subtotal,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPurchaseOrderSlice converts a slice of model PurchaseOrders to domain PurchaseOrders
func ToDomainPurchaseOrderSlice(ms []models.PurchaseOrder) []domain.PurchaseOrder {
	ds := make([]domain.PurchaseOrder, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPurchaseOrder(m)
	}
	return ds
}
