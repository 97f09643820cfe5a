package models

import "github.com/shopspring/decimal"

// Article represents a row of the articles table.
type Article struct {
	ArticleID     string          `json:"articleID"`
	Description   string          `json:"description"`
	Brand         *string         `json:"brand,omitempty"`
	MeasureUnitID string          `json:"measureUnitID"`
	Stock         decimal.Decimal `json:"stock"`
	IsActive      bool            `json:"isActive"`
	AuditFields
}
