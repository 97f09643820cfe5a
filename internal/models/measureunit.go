package models

// MeasureUnit represents a row of the measure_units table.
type MeasureUnit struct {
	MeasureUnitID string `json:"measureUnitID"`
	Description   string `json:"description"`
	IsActive      bool   `json:"isActive"`
	AuditFields
}
