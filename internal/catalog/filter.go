package catalog

import (
	"math"

	"storefront/internal/domain/entity"
)

// ConditionAny is the sentinel meaning "do not filter by condition".
const ConditionAny = "Any"

type PriceRange struct {
	Min float64
	Max float64
}

// Criteria is the set of active constraints narrowing a product
// collection. The zero value constrains nothing: empty selection sets
// pass every product, a nil price range leaves price unconstrained, and
// an empty condition is treated like ConditionAny.
type Criteria struct {
	Brands    []string
	Features  []string
	Price     *PriceRange
	Condition string
	Ratings   []int
}

// Filter applies the five constraint predicates in a fixed order: brand,
// features, price, condition, rating. Each predicate is independent, so
// the order never changes the result set, but it is kept stable for
// reproducibility.
func Filter(products []*entity.Product, c Criteria) []*entity.Product {
	filtered := []*entity.Product{}
	for _, p := range products {
		if !matchBrand(p, c.Brands) {
			continue
		}
		if !matchFeatures(p, c.Features) {
			continue
		}
		if !matchPrice(p, c.Price) {
			continue
		}
		if !matchCondition(p, c.Condition) {
			continue
		}
		if !matchRating(p, c.Ratings) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func matchBrand(p *entity.Product, brands []string) bool {
	if len(brands) == 0 {
		return true
	}
	for _, b := range brands {
		if p.Brand == b {
			return true
		}
	}
	return false
}

// matchFeatures requires every selected feature to be present: AND, not
// OR, across the selection.
func matchFeatures(p *entity.Product, features []string) bool {
	for _, f := range features {
		if !p.HasFeature(f) {
			return false
		}
	}
	return true
}

func matchPrice(p *entity.Product, r *PriceRange) bool {
	if r == nil {
		return true
	}
	return p.Price >= r.Min && p.Price <= r.Max
}

func matchCondition(p *entity.Product, condition string) bool {
	if condition == "" || condition == ConditionAny {
		return true
	}
	return p.Condition == condition
}

// matchRating buckets the product rating by flooring it and checks the
// bucket against the selection. A product without a rating never matches
// an active rating filter.
func matchRating(p *entity.Product, ratings []int) bool {
	if len(ratings) == 0 {
		return true
	}
	if p.Rating == nil {
		return false
	}
	bucket := int(math.Floor(*p.Rating))
	for _, r := range ratings {
		if bucket == r {
			return true
		}
	}
	return false
}
