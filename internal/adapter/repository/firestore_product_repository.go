package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/pkg/errors"
)

const productsCollection = "products"

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	// Generate ID if not provided
	if product.ID == "" {
		doc := r.client.Collection(productsCollection).NewDoc()
		product.ID = doc.ID
	}

	_, err := r.client.Collection(productsCollection).Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}

	return nil
}

func (r *firestoreProductRepository) GetAll(ctx context.Context) ([]*entity.Product, error) {
	iter := r.client.Collection(productsCollection).Documents(ctx)

	products := []*entity.Product{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate products", err)
		}

		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, errors.Internal("Failed to parse product data", err)
		}
		products = append(products, &product)
	}

	return products, nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection(productsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}

	return &product, nil
}

func (r *firestoreProductRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*entity.Product, error) {
	docRef := r.client.Collection(productsCollection).Doc(id)

	// Firestore's Set on a missing doc would create it; check first so a
	// bad id surfaces as not found instead of a phantom record.
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	if _, err := docRef.Set(ctx, fields, firestore.MergeAll); err != nil {
		return nil, errors.Internal("Failed to update product", err)
	}

	return r.GetByID(ctx, id)
}

func (r *firestoreProductRepository) Delete(ctx context.Context, id string) error {
	docRef := r.client.Collection(productsCollection).Doc(id)

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Product", err)
		}
		return errors.Internal("Failed to get product", err)
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return errors.Internal("Failed to delete product", err)
	}

	return nil
}
