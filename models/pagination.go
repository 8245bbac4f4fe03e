package models

// Pagination is the envelope returned alongside every collection response.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// NewPagination computes the page count for a total at the given page size.
func NewPagination(page, limit int, total int64) Pagination {
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// PageRequest is a sanitized page/limit pair.
type PageRequest struct {
	Page  int
	Limit int
}

// NormalizePage clamps raw page/limit values to sane bounds.
func NormalizePage(page, limit int) PageRequest {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return PageRequest{Page: page, Limit: limit}
}

// Skip returns the offset for the requested page.
func (p PageRequest) Skip() int64 {
	return int64((p.Page - 1) * p.Limit)
}
