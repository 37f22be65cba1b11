package catalog

import "storefront/internal/domain/entity"

// State is an immutable snapshot of a browse session: the loaded
// collection, the active filter criteria, and the paging position. Every
// transition returns the next State, so updates flow one way: action ->
// new state -> render.
type State struct {
	Products []*entity.Product
	Criteria Criteria
	Pager    Pager
}

func NewState(products []*entity.Product, pageSize int) State {
	return State{
		Products: products,
		Pager:    NewPager(pageSize),
	}
}

// WithProducts swaps in a freshly loaded collection, keeping criteria
// and page size but returning to page 1.
func (s State) WithProducts(products []*entity.Product) State {
	s.Products = products
	s.Pager = NewPager(s.Pager.Size)
	return s
}

// WithCriteria replaces the filter criteria. The page resets to 1
// because the filtered set, and with it the page count, changes.
func (s State) WithCriteria(c Criteria) State {
	s.Criteria = c
	s.Pager = NewPager(s.Pager.Size)
	return s
}

// GoTo moves to the given page of the filtered collection; out-of-range
// targets leave the state unchanged.
func (s State) GoTo(page int) State {
	_, totalPages := s.Pager.Slice(s.Filtered())
	s.Pager = s.Pager.GoTo(page, totalPages)
	return s
}

// WithPageSize changes the page size and resets to page 1.
func (s State) WithPageSize(size int) State {
	s.Pager = s.Pager.WithSize(size)
	return s
}

// Filtered is the collection narrowed by the active criteria.
func (s State) Filtered() []*entity.Product {
	return Filter(s.Products, s.Criteria)
}

// View derives the current page of the filtered collection and the total
// page count.
func (s State) View() ([]*entity.Product, int) {
	return s.Pager.Slice(s.Filtered())
}
