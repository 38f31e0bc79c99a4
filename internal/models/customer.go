package models

// Customer is the database representation of a billable party.
type Customer struct {
	CustomerID   string  `json:"customerID"` // Primary Key
	CompanyID    string  `json:"companyID"`  // FK -> companies.company_id (Not Null)
	ProcessorURI *string `json:"processorURI"`
	AuditFields
}
