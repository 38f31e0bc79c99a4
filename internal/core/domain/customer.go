package domain

// Customer is a billable party belonging to a company. ProcessorURI points at
// the gateway-side customer record once one has been created.
type Customer struct {
	CustomerID   string  `json:"customerID"` // Primary Key (e.g., UUID)
	CompanyID    string  `json:"companyID"`  // FK -> Company.companyID (Not Null)
	ProcessorURI *string `json:"processorURI"`
	AuditFields
}
