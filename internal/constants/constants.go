package constants

// Context keys
const (
	ContextKeyOrganizationID = "organization_id"
)

// Pagination
const (
	MinPage         = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)
