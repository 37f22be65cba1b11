package handler

import (
	"storefront/internal/usecase"
	"storefront/pkg/response"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type createProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Price       float64  `json:"price" validate:"required"`
	Image       string   `json:"image"`
	ImageURL    string   `json:"image_url"`
	Description string   `json:"description"`
	Category    string   `json:"category" validate:"required"`
	Stock       int      `json:"stock"`
	Brand       string   `json:"brand"`
	Condition   string   `json:"condition"`
	Rating      *float64 `json:"rating"`
	Features    []string `json:"features"`
}

type newProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Price       float64  `json:"price" validate:"required"`
	ImageURL    string   `json:"image_url"`
	Description string   `json:"description"`
	Category    string   `json:"category" validate:"required"`
	Stock       int      `json:"stock"`
	Brand       string   `json:"brand"`
	Condition   string   `json:"condition"`
	Rating      *float64 `json:"rating"`
	Features    []string `json:"features"`
}

// updateProductRequest carries a partial update: only fields present in
// the body are merged. image_url is normalized to image and never stored.
type updateProductRequest struct {
	Name        *string   `json:"name"`
	Price       *float64  `json:"price"`
	Image       *string   `json:"image"`
	ImageURL    *string   `json:"image_url"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Stock       *int      `json:"stock"`
	Brand       *string   `json:"brand"`
	Condition   *string   `json:"condition"`
	Rating      *float64  `json:"rating"`
	Features    *[]string `json:"features"`
}

func (r *updateProductRequest) fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Price != nil {
		fields["price"] = *r.Price
	}
	if r.Image != nil {
		fields["image"] = *r.Image
	}
	if r.ImageURL != nil {
		fields["image"] = *r.ImageURL
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Category != nil {
		fields["category"] = *r.Category
	}
	if r.Stock != nil {
		fields["stock"] = *r.Stock
	}
	if r.Brand != nil {
		fields["brand"] = *r.Brand
	}
	if r.Condition != nil {
		fields["condition"] = *r.Condition
	}
	if r.Rating != nil {
		fields["rating"] = *r.Rating
	}
	if r.Features != nil {
		fields["features"] = *r.Features
	}
	return fields
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	// image_url wins over image when both are sent
	image := req.Image
	if req.ImageURL != "" {
		image = req.ImageURL
	}

	product, err := h.productUseCase.CreateProduct(
		c.Request().Context(),
		usecase.CreateProductInput{
			Name:        req.Name,
			Price:       req.Price,
			Image:       image,
			Description: req.Description,
			Category:    req.Category,
			Stock:       req.Stock,
			Brand:       req.Brand,
			Condition:   req.Condition,
			Rating:      req.Rating,
			Features:    req.Features,
		},
	)

	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

// CreateNewProduct serves the storefront's newer creation form, which
// submits image_url instead of image. The stored record is identical.
func (h *ProductHandler) CreateNewProduct(c echo.Context) error {
	var req newProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.CreateProduct(
		c.Request().Context(),
		usecase.CreateProductInput{
			Name:        req.Name,
			Price:       req.Price,
			Image:       req.ImageURL,
			Description: req.Description,
			Category:    req.Category,
			Stock:       req.Stock,
			Brand:       req.Brand,
			Condition:   req.Condition,
			Rating:      req.Rating,
			Features:    req.Features,
		},
	)

	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productUseCase.GetAll(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id := c.Param("id")

	product, err := h.productUseCase.GetProductByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id := c.Param("id")

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), id, req.fields())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id := c.Param("id")

	if err := h.productUseCase.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Product deleted successfully",
	})
}

func (h *ProductHandler) SearchProducts(c echo.Context) error {
	query := c.QueryParam("query")
	category := c.QueryParam("category")

	products, err := h.productUseCase.SearchProducts(c.Request().Context(), query, category)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}
