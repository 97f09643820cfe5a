package domain

// MeasureUnit represents a unit of measure articles are counted in.
type MeasureUnit struct {
	MeasureUnitID string `json:"measureUnitID"` // Primary Key (UUID)
	Description   string `json:"description"`
	IsActive      bool   `json:"isActive"`
	AuditFields
}
