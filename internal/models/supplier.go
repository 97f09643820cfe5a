package models

// Supplier represents a row of the suppliers table.
type Supplier struct {
	SupplierID  string `json:"supplierID"`
	FiscalID    string `json:"fiscalID"`
	DisplayName string `json:"displayName"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}
