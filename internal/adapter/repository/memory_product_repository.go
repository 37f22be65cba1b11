package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/pkg/errors"
)

// memoryProductRepository keeps records in a mutex-guarded map. It backs
// local development and tests; GetAll returns records in insertion order.
type memoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]*entity.Product
	order    []string
}

func NewMemoryProductRepository() repository.ProductRepository {
	return &memoryProductRepository{
		products: make(map[string]*entity.Product),
	}
}

func (r *memoryProductRepository) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	stored := *product
	r.products[product.ID] = &stored
	r.order = append(r.order, product.ID)
	return nil
}

func (r *memoryProductRepository) GetAll(ctx context.Context) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]*entity.Product, 0, len(r.order))
	for _, id := range r.order {
		record := *r.products[id]
		products = append(products, &record)
	}
	return products, nil
}

func (r *memoryProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	record := *product
	return &record, nil
}

func (r *memoryProductRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}

	mergeProductFields(product, fields)
	record := *product
	return &record, nil
}

func (r *memoryProductRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return errors.NotFound("Product", nil)
	}

	delete(r.products, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// mergeProductFields applies a partial update keyed by JSON field names.
// The id is never reassigned; unknown keys are ignored.
func mergeProductFields(p *entity.Product, fields map[string]interface{}) {
	for key, value := range fields {
		switch key {
		case "name":
			if v, ok := value.(string); ok {
				p.Name = v
			}
		case "price":
			if v, ok := value.(float64); ok {
				p.Price = v
			}
		case "image":
			if v, ok := value.(string); ok {
				p.Image = v
			}
		case "description":
			if v, ok := value.(string); ok {
				p.Description = v
			}
		case "category":
			if v, ok := value.(string); ok {
				p.Category = v
			}
		case "stock":
			if v, ok := value.(int); ok {
				p.Stock = v
			}
		case "brand":
			if v, ok := value.(string); ok {
				p.Brand = v
			}
		case "condition":
			if v, ok := value.(string); ok {
				p.Condition = v
			}
		case "rating":
			if v, ok := value.(float64); ok {
				rating := v
				p.Rating = &rating
			}
		case "features":
			if v, ok := value.([]string); ok {
				p.Features = v
			}
		}
	}
}
