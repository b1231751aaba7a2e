package pagination

import "math"

const (
	DefaultPageSize = 20
	MaxPageSize     = 500
	// MaxPage keeps (Page-1)*Size within an int for any size up to MaxPageSize.
	MaxPage = math.MaxInt / MaxPageSize
)

// OffsetRequest is a 1-based page request bound from the query string.
type OffsetRequest struct {
	Page int `json:"page" query:"page"`
	Size int `json:"size" query:"size"`
}

// Normalize clamps the request to a valid page. Page is kept in [1, MaxPage],
// a missing size becomes DefaultPageSize and an oversized one MaxPageSize.
func (r *OffsetRequest) Normalize() {
	r.Page = min(max(r.Page, 1), MaxPage)
	switch {
	case r.Size <= 0:
		r.Size = DefaultPageSize
	case r.Size > MaxPageSize:
		r.Size = MaxPageSize
	}
}

// Offset is the number of items before the requested page. It saturates at
// math.MaxInt instead of overflowing.
func (r OffsetRequest) Offset() int {
	page, size := max(r.Page, 1)-1, max(r.Size, 0)
	if size > 0 && page > math.MaxInt/size {
		return math.MaxInt
	}
	return page * size
}
