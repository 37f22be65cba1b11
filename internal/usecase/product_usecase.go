package usecase

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infrastructure/cache"
	"storefront/pkg/errors"
)

type ProductUseCase struct {
	productRepo  repository.ProductRepository
	productCache *cache.ProductCache
}

func NewProductUseCase(productRepo repository.ProductRepository, productCache *cache.ProductCache) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		productCache: productCache,
	}
}

type CreateProductInput struct {
	Name        string
	Price       float64
	Image       string
	Description string
	Category    string
	Stock       int
	Brand       string
	Condition   string
	Rating      *float64
	Features    []string
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error) {
	// A zero price is rejected along with a missing one; the numeric range
	// itself is not validated.
	if input.Name == "" || input.Price == 0 || input.Category == "" {
		return nil, errors.BadRequest("Missing required product fields (name, price, category)", nil)
	}

	features := input.Features
	if features == nil {
		features = []string{}
	}

	product := &entity.Product{
		Name:        input.Name,
		Price:       input.Price,
		Image:       input.Image,
		Description: input.Description,
		Category:    input.Category,
		Stock:       input.Stock,
		Brand:       input.Brand,
		Condition:   input.Condition,
		Rating:      input.Rating,
		Features:    features,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	uc.productCache.Invalidate(ctx, product.ID)

	return product, nil
}

func (uc *ProductUseCase) GetAll(ctx context.Context) ([]*entity.Product, error) {
	if products, ok := uc.productCache.GetAll(ctx); ok {
		return products, nil
	}

	products, err := uc.productRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	uc.productCache.SetAll(ctx, products)

	return products, nil
}

func (uc *ProductUseCase) GetProductByID(ctx context.Context, id string) (*entity.Product, error) {
	if product, ok := uc.productCache.GetProduct(ctx, id); ok {
		return product, nil
	}

	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.productCache.SetProduct(ctx, product)

	return product, nil
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id string, fields map[string]interface{}) (*entity.Product, error) {
	// id is assigned at creation and never reassigned
	delete(fields, "id")

	product, err := uc.productRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	uc.productCache.Invalidate(ctx, id)

	return product, nil
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id string) error {
	if err := uc.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.productCache.Invalidate(ctx, id)

	return nil
}

// SearchProducts fetches the whole collection and filters in memory: a
// case-insensitive substring match on name and on category, combined with
// AND. An absent term passes everything.
func (uc *ProductUseCase) SearchProducts(ctx context.Context, query, category string) ([]*entity.Product, error) {
	products, err := uc.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(query)
	category = strings.ToLower(category)

	matched := []*entity.Product{}
	for _, product := range products {
		if query != "" && !strings.Contains(strings.ToLower(product.Name), query) {
			continue
		}
		if category != "" && !strings.Contains(strings.ToLower(product.Category), category) {
			continue
		}
		matched = append(matched, product)
	}

	return matched, nil
}
