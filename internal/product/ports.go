package product

import (
	"context"

	"modelforge/internal/domain"
)

type CatalogUseCase interface {
	ListProducts(ctx context.Context, req ListProductsRequest) ([]ProductDTO, error)
	GetProduct(ctx context.Context, id int) (*ProductDTO, error)
}

type Service interface {
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id int) (*domain.Product, error)
}

type Repository interface {
	Search(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	FindByIDs(ctx context.Context, ids []int) ([]domain.Product, error)
}
