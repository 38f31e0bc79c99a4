package domain

// Company is the tenant boundary. All lookups are scoped by company; no
// entity may be mutated across company boundaries.
type Company struct {
	CompanyID   string `json:"companyID"` // Primary Key (e.g., UUID)
	Name        string `json:"name"`
	APIKey      string `json:"-"` // Gateway credential, never serialized
	CallbackKey string `json:"-"` // Authenticates inbound gateway callbacks
	AuditFields
}
