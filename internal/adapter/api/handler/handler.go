package handler

import (
	"storefront/internal/usecase"
)

var (
	productHandler *ProductHandler
	healthHandler  *HealthHandler
)

func Setup(productUseCase *usecase.ProductUseCase) {
	productHandler = NewProductHandler(productUseCase)
	healthHandler = NewHealthHandler()
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
