// Package pagination holds the offset/limit/page-count arithmetic shared by
// list endpoints.
package pagination

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Pagination is the meta object returned alongside list responses.
type Pagination struct {
	Page      int   `json:"page"`
	PageCount int   `json:"pageCount"`
	PageSize  int   `json:"pageSize"`
	Count     int64 `json:"count"`
}

// Normalize replaces non-positive page or pageSize values with the defaults.
func Normalize(page, pageSize int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return page, pageSize
}

// Offset computes the number of records to skip for the given page.
func Offset(page, pageSize int) int {
	page, pageSize = Normalize(page, pageSize)
	return (page - 1) * pageSize
}

// Build assembles the pagination meta for a list response.
func Build(page, pageSize int, count int64) Pagination {
	page, pageSize = Normalize(page, pageSize)
	pageCount := int((count + int64(pageSize) - 1) / int64(pageSize))
	return Pagination{
		Page:      page,
		PageCount: pageCount,
		PageSize:  pageSize,
		Count:     count,
	}
}
