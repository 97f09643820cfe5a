package models

// Department represents a row of the departments table.
type Department struct {
	DepartmentID string `json:"departmentID"`
	Name         string `json:"name"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}
