package payload

// Pagination query parameters shared by the listing endpoints. Zero
// values mean "not supplied"; listing.Pagination fills in the defaults.
type (
	PageQuery struct {
		Page  int `form:"page"`
		Limit int `form:"limit"`
	}

	// OffsetQuery serves the legacy public reads that page by offset
	// instead of page number.
	OffsetQuery struct {
		Limit  int `form:"limit"`
		Offset int `form:"offset"`
	}
)

// ListMeta is the shared slice-navigation block of the paginated
// envelopes.
type ListMeta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalPages int  `json:"total_pages"`
	IsPrevious bool `json:"is_previous"`
	IsNext     bool `json:"is_next"`
}
