package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/internal/domain/entity"
)

func ratingOf(v float64) *float64 {
	return &v
}

func sampleProducts() []*entity.Product {
	return []*entity.Product{
		{
			ID:        "1",
			Name:      "Canon Camera EOS 2000",
			Price:     998,
			Category:  "Electronics",
			Brand:     "Canon",
			Condition: entity.ConditionBrandNew,
			Rating:    ratingOf(4.5),
			Features:  []string{"Metallic", "8GB Ram"},
		},
		{
			ID:        "2",
			Name:      "GoPro HERO6",
			Price:     380,
			Category:  "Electronics",
			Brand:     "GoPro",
			Condition: entity.ConditionRefurbished,
			Rating:    ratingOf(3.9),
			Features:  []string{"Plastic cover"},
		},
		{
			ID:       "3",
			Name:     "Smart Watch",
			Price:    49.5,
			Category: "Wearables",
			Brand:    "Xiaomi",
			Features: []string{"Metallic", "8GB Ram", "Super power"},
		},
	}
}

func TestFilterEmptyInput(t *testing.T) {
	result := Filter([]*entity.Product{}, Criteria{Brands: []string{"Canon"}})
	assert.Empty(t, result)
	assert.NotNil(t, result)
}

func TestFilterIdentityWithZeroCriteria(t *testing.T) {
	products := sampleProducts()
	result := Filter(products, Criteria{})
	assert.Equal(t, products, result)
}

func TestFilterByBrand(t *testing.T) {
	products := sampleProducts()

	result := Filter(products, Criteria{Brands: []string{"Canon", "Xiaomi"}})

	assert.Len(t, result, 2)
	assert.Equal(t, "1", result[0].ID)
	assert.Equal(t, "3", result[1].ID)
}

func TestFilterFeaturesRequireAll(t *testing.T) {
	products := sampleProducts()

	// both features must be present, not either
	result := Filter(products, Criteria{Features: []string{"Metallic", "8GB Ram"}})

	assert.Len(t, result, 2)
	for _, p := range result {
		assert.True(t, p.HasFeature("Metallic"))
		assert.True(t, p.HasFeature("8GB Ram"))
	}

	result = Filter(products, Criteria{Features: []string{"Metallic", "Plastic cover"}})
	assert.Empty(t, result)
}

func TestFilterPriceRangeInclusive(t *testing.T) {
	products := sampleProducts()

	result := Filter(products, Criteria{Price: &PriceRange{Min: 49.5, Max: 380}})

	assert.Len(t, result, 2)
	for _, p := range result {
		assert.GreaterOrEqual(t, p.Price, 49.5)
		assert.LessOrEqual(t, p.Price, 380.0)
	}
}

func TestFilterPriceExcludesOutOfRange(t *testing.T) {
	products := sampleProducts()

	result := Filter(products, Criteria{Price: &PriceRange{Min: 400, Max: 500}})

	assert.Empty(t, result)
}

func TestFilterCondition(t *testing.T) {
	products := sampleProducts()

	result := Filter(products, Criteria{Condition: entity.ConditionRefurbished})
	assert.Len(t, result, 1)
	assert.Equal(t, "2", result[0].ID)

	// "Any" and the zero value both mean unconstrained
	assert.Len(t, Filter(products, Criteria{Condition: ConditionAny}), 3)
	assert.Len(t, Filter(products, Criteria{Condition: ""}), 3)
}

func TestFilterRatingBuckets(t *testing.T) {
	products := sampleProducts()

	// 4.5 floors to 4, 3.9 floors to 3
	result := Filter(products, Criteria{Ratings: []int{4}})
	assert.Len(t, result, 1)
	assert.Equal(t, "1", result[0].ID)

	result = Filter(products, Criteria{Ratings: []int{3, 4}})
	assert.Len(t, result, 2)
}

func TestFilterUnratedExcludedByRatingFilter(t *testing.T) {
	products := sampleProducts()

	result := Filter(products, Criteria{Ratings: []int{0, 1, 2, 3, 4, 5}})

	for _, p := range result {
		assert.NotNil(t, p.Rating)
	}
	assert.Len(t, result, 2)
}

func TestFilterCombinesWithAnd(t *testing.T) {
	products := sampleProducts()

	result := Filter(products, Criteria{
		Brands:   []string{"Canon", "GoPro"},
		Price:    &PriceRange{Min: 0, Max: 500},
		Ratings:  []int{3},
		Features: []string{"Plastic cover"},
	})

	assert.Len(t, result, 1)
	assert.Equal(t, "2", result[0].ID)
}
