package domain

// Department represents an organizational unit articles are purchased for.
type Department struct {
	DepartmentID string `json:"departmentID"` // Primary Key (UUID)
	Name         string `json:"name"`         // Letters and spaces only, max 50 chars
	IsActive     bool   `json:"isActive"`
	AuditFields
}
