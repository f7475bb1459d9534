package analysis

// PaginatedResult represents a paginated response with data and metadata
type PaginatedResult struct {
	Data     []*Analysis `json:"data"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
}
