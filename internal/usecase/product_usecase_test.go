package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"
	"storefront/pkg/errors"
)

// MockProductRepository is a mock implementation of repository.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)
	if product.ID == "" {
		product.ID = "generated-id"
	}
	return args.Error(0)
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*entity.Product, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreateProductAppliesDefaults(t *testing.T) {
	mockRepo := new(MockProductRepository)
	uc := usecase.NewProductUseCase(mockRepo, nil)

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Product")).Return(nil).Once()

	product, err := uc.CreateProduct(context.Background(), usecase.CreateProductInput{
		Name:     "X",
		Price:    10,
		Category: "C",
	})

	assert.NoError(t, err)
	assert.Equal(t, "generated-id", product.ID)
	assert.Equal(t, 0, product.Stock)
	assert.Equal(t, "", product.Brand)
	assert.Equal(t, "", product.Image)
	assert.Equal(t, "", product.Condition)
	assert.Nil(t, product.Rating)
	assert.Equal(t, []string{}, product.Features)
	mockRepo.AssertExpectations(t)
}

func TestCreateProductMissingRequiredFields(t *testing.T) {
	mockRepo := new(MockProductRepository)
	uc := usecase.NewProductUseCase(mockRepo, nil)

	cases := []usecase.CreateProductInput{
		{Price: 10, Category: "C"},
		{Name: "X", Category: "C"},
		{Name: "X", Price: 10},
	}

	for _, input := range cases {
		product, err := uc.CreateProduct(context.Background(), input)
		assert.Nil(t, product)
		assert.True(t, errors.Is(err, "BAD_REQUEST"))
	}

	mockRepo.AssertNotCalled(t, "Create")
}

func TestGetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	uc := usecase.NewProductUseCase(mockRepo, nil)

	expected := &entity.Product{ID: "1", Name: "Camera", Price: 998, Category: "Electronics"}

	mockRepo.On("GetByID", mock.Anything, "1").Return(expected, nil).Once()
	product, err := uc.GetProductByID(context.Background(), "1")
	assert.NoError(t, err)
	assert.Equal(t, expected, product)

	mockRepo.On("GetByID", mock.Anything, "missing").Return(nil, errors.NotFound("Product", nil)).Once()
	product, err = uc.GetProductByID(context.Background(), "missing")
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
	mockRepo.AssertExpectations(t)
}

func TestUpdateProductNeverReassignsID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	uc := usecase.NewProductUseCase(mockRepo, nil)

	merged := &entity.Product{ID: "1", Name: "X", Price: 20}
	mockRepo.On("Update", mock.Anything, "1", map[string]interface{}{"price": 20.0}).Return(merged, nil).Once()

	product, err := uc.UpdateProduct(context.Background(), "1", map[string]interface{}{
		"id":    "hijacked",
		"price": 20.0,
	})

	assert.NoError(t, err)
	assert.Equal(t, merged, product)
	mockRepo.AssertExpectations(t)
}

func TestDeleteProductNotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	uc := usecase.NewProductUseCase(mockRepo, nil)

	mockRepo.On("Delete", mock.Anything, "missing").Return(errors.NotFound("Product", nil)).Once()

	err := uc.DeleteProduct(context.Background(), "missing")

	assert.True(t, errors.Is(err, "NOT_FOUND"))
	mockRepo.AssertExpectations(t)
}

func TestSearchProductsByName(t *testing.T) {
	mockRepo := new(MockProductRepository)
	uc := usecase.NewProductUseCase(mockRepo, nil)

	all := []*entity.Product{
		{ID: "1", Name: "Camera", Category: "Electronics"},
		{ID: "2", Name: "Phone", Category: "Electronics"},
	}
	mockRepo.On("GetAll", mock.Anything).Return(all, nil).Once()

	matched, err := uc.SearchProducts(context.Background(), "cam", "")

	assert.NoError(t, err)
	assert.Len(t, matched, 1)
	assert.Equal(t, "Camera", matched[0].Name)
	mockRepo.AssertExpectations(t)
}

func TestSearchProductsCombinesQueryAndCategory(t *testing.T) {
	mockRepo := new(MockProductRepository)
	uc := usecase.NewProductUseCase(mockRepo, nil)

	all := []*entity.Product{
		{ID: "1", Name: "Canon Camera", Category: "Electronics"},
		{ID: "2", Name: "Camera Bag", Category: "Accessories"},
		{ID: "3", Name: "Phone", Category: "Electronics"},
	}
	mockRepo.On("GetAll", mock.Anything).Return(all, nil).Times(2)

	matched, err := uc.SearchProducts(context.Background(), "camera", "electro")
	assert.NoError(t, err)
	assert.Len(t, matched, 1)
	assert.Equal(t, "1", matched[0].ID)

	// both terms absent passes everything
	matched, err = uc.SearchProducts(context.Background(), "", "")
	assert.NoError(t, err)
	assert.Len(t, matched, 3)
	mockRepo.AssertExpectations(t)
}
