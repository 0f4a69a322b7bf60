package entity

// PageRequest is a 1-based page request.
type PageRequest struct {
	Page     int
	PageSize int
}

// Offset returns the row offset for the page.
func (p PageRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}

	return (p.Page - 1) * p.PageSize
}

// Clamp fills defaults and caps the page size.
func (p PageRequest) Clamp(defaultSize, maxSize int) PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = defaultSize
	}
	if maxSize > 0 && p.PageSize > maxSize {
		p.PageSize = maxSize
	}

	return p
}

// Page is one page of results with the total match count.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// NewPage builds a Page and derives TotalPages.
func NewPage[T any](items []T, total int64, req PageRequest) Page[T] {
	if items == nil {
		items = []T{}
	}

	totalPages := 0
	if req.PageSize > 0 {
		totalPages = int((total + int64(req.PageSize) - 1) / int64(req.PageSize))
	}

	return Page[T]{
		Items:      items,
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: totalPages,
	}
}
