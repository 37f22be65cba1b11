package entity

// Product condition values. The empty string means the seller did not
// specify one.
const (
	ConditionRefurbished = "Refurbished"
	ConditionBrandNew    = "Brand new"
	ConditionOldItems    = "Old items"
)

type Product struct {
	ID          string   `json:"id" firestore:"id"`
	Name        string   `json:"name" firestore:"name"`
	Price       float64  `json:"price" firestore:"price"`
	Image       string   `json:"image" firestore:"image"`
	Description string   `json:"description" firestore:"description"`
	Category    string   `json:"category" firestore:"category"`
	Stock       int      `json:"stock" firestore:"stock"`
	Brand       string   `json:"brand" firestore:"brand"`
	Condition   string   `json:"condition" firestore:"condition"`
	Rating      *float64 `json:"rating,omitempty" firestore:"rating,omitempty"`
	Features    []string `json:"features" firestore:"features"`
}

// HasFeature reports whether the product carries the named feature.
// Membership is exact string equality.
func (p *Product) HasFeature(feature string) bool {
	for _, f := range p.Features {
		if f == feature {
			return true
		}
	}
	return false
}
