package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductRepository is the keyed-store boundary for product records. The
// interface, not the backing store, is the contract: implementations exist
// for Firestore and for an in-memory map.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetAll(ctx context.Context) ([]*entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// Update merges only the supplied fields into the stored record and
	// returns the merged view. Keys follow the record's JSON field names.
	Update(ctx context.Context, id string, fields map[string]interface{}) (*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
