package domain

// Supplier represents a vendor purchase orders are placed with.
// FiscalID holds the supplier's cédula or RNC in canonical hyphenated form.
type Supplier struct {
	SupplierID  string `json:"supplierID"` // Primary Key (UUID)
	FiscalID    string `json:"fiscalID"`   // Validated cédula (11 digits) or RNC (9 digits)
	DisplayName string `json:"displayName"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}
