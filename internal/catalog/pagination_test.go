package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/internal/domain/entity"
)

func makeProducts(n int) []*entity.Product {
	products := make([]*entity.Product, n)
	for i := range products {
		products[i] = &entity.Product{
			ID:    fmt.Sprintf("p%d", i+1),
			Name:  fmt.Sprintf("Sample Product %d", i+1),
			Price: 100 + float64(i),
		}
	}
	return products
}

func TestPaginateEmpty(t *testing.T) {
	items, totalPages := Paginate([]*entity.Product{}, 10, 1)

	assert.Empty(t, items)
	assert.Equal(t, 0, totalPages)
}

func TestPaginateTwentyFiveByTen(t *testing.T) {
	products := makeProducts(25)

	page1, totalPages := Paginate(products, 10, 1)
	assert.Equal(t, 3, totalPages)
	assert.Len(t, page1, 10)

	page3, _ := Paginate(products, 10, 3)
	assert.Len(t, page3, 5)
	assert.Equal(t, "p21", page3[0].ID)
	assert.Equal(t, "p25", page3[4].ID)
}

func TestPaginateOutOfRangePageIsEmpty(t *testing.T) {
	products := makeProducts(5)

	items, totalPages := Paginate(products, 10, 2)
	assert.Empty(t, items)
	assert.Equal(t, 1, totalPages)

	items, _ = Paginate(products, 10, 0)
	assert.Empty(t, items)
}

func TestPaginatePagesReconstructItems(t *testing.T) {
	products := makeProducts(23)

	_, totalPages := Paginate(products, 7, 1)
	var reassembled []*entity.Product
	for page := 1; page <= totalPages; page++ {
		items, _ := Paginate(products, 7, page)
		reassembled = append(reassembled, items...)
	}

	assert.Equal(t, products, reassembled)
}

func TestPagerGoToOutOfRangeIsNoOp(t *testing.T) {
	products := makeProducts(25)
	pager := NewPager(10)

	pager = pager.GoTo(2, 3)
	before, _ := pager.Slice(products)

	// beyond the last page and before the first: both keep the position
	pager = pager.GoTo(4, 3)
	assert.Equal(t, 2, pager.Page)
	pager = pager.GoTo(0, 3)
	assert.Equal(t, 2, pager.Page)

	after, _ := pager.Slice(products)
	assert.Equal(t, before, after)
}

func TestPagerWithSizeResetsPage(t *testing.T) {
	pager := NewPager(10).GoTo(3, 3)
	assert.Equal(t, 3, pager.Page)

	pager = pager.WithSize(20)
	assert.Equal(t, 20, pager.Size)
	assert.Equal(t, 1, pager.Page)
}

func TestPagerDefaults(t *testing.T) {
	pager := NewPager(0)
	assert.Equal(t, DefaultPageSize, pager.Size)
	assert.Equal(t, 1, pager.Page)

	// non-positive size change is ignored
	assert.Equal(t, pager, pager.WithSize(-1))
}
