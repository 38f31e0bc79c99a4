package models

// Company is the database representation of a tenant.
type Company struct {
	CompanyID   string `json:"companyID"` // Primary Key
	Name        string `json:"name"`
	APIKey      string `json:"-"`
	CallbackKey string `json:"-"`
	AuditFields
}
