package domain

// PaginationParams carries page/pageSize values from the HTTP layer to the repo layer.
// Page is 1-indexed. The service performs no clamping: anything that reaches it
// is expected to be positive, which NewPaginationParams guarantees.
type PaginationParams struct {
	// Page is the current page number, starting at 1.
	Page int
	// PageSize is the maximum number of trips per page.
	PageSize int
}

// NewPaginationParams builds a PaginationParams from optional HTTP query params.
// Nil or non-positive values fall back to the listing defaults (page=1, pageSize=10).
func NewPaginationParams(page, pageSize *int) PaginationParams {
	p := PaginationParams{Page: 1, PageSize: 10}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if pageSize != nil && *pageSize >= 1 {
		p.PageSize = *pageSize
	}
	return p
}

// Offset returns the zero-based row offset for a SQL OFFSET clause.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}
