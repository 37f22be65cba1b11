package catalog

import "storefront/internal/domain/entity"

// DefaultPageSize matches the storefront's default "show 10" selection.
const DefaultPageSize = 10

// Paginate slices one page out of items. totalPages is
// ceil(len(items)/pageSize), zero when items is empty; the page slice is
// clipped to the available items, so an out-of-range page yields an
// empty page rather than a panic.
func Paginate(items []*entity.Product, pageSize, page int) ([]*entity.Product, int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	totalPages := (len(items) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start < 0 || start >= len(items) {
		return []*entity.Product{}, totalPages
	}

	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return items[start:end], totalPages
}

// Pager is the current paging position. It is a value type: transitions
// return the next Pager, leaving the receiver untouched.
type Pager struct {
	Size int
	Page int
}

func NewPager(size int) Pager {
	if size <= 0 {
		size = DefaultPageSize
	}
	return Pager{Size: size, Page: 1}
}

// GoTo moves to the given page. A target outside [1, totalPages] is a
// no-op: the current page is kept rather than clamped or rejected with
// an error.
func (p Pager) GoTo(page, totalPages int) Pager {
	if page < 1 || page > totalPages {
		return p
	}
	p.Page = page
	return p
}

// WithSize changes the page size and resets the position to page 1.
// Non-positive sizes are ignored.
func (p Pager) WithSize(size int) Pager {
	if size <= 0 {
		return p
	}
	return Pager{Size: size, Page: 1}
}

// Slice produces this pager's page of items plus the page count.
func (p Pager) Slice(items []*entity.Product) ([]*entity.Product, int) {
	return Paginate(items, p.Size, p.Page)
}
