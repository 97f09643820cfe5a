package domain

import "github.com/shopspring/decimal"

// Article represents a purchasable inventory item.
type Article struct {
	ArticleID     string          `json:"articleID"` // Primary Key (UUID)
	Description   string          `json:"description"`
	Brand         *string         `json:"brand,omitempty"` // Nullable
	MeasureUnitID string          `json:"measureUnitID"`   // FK -> MeasureUnit.measureUnitID (Not Null)
	Stock         decimal.Decimal `json:"stock"`
	IsActive      bool            `json:"isActive"`
	AuditFields

	// MeasureUnit is populated on denormalized reads only.
	MeasureUnit *MeasureUnit `json:"measureUnit,omitempty"`
}
