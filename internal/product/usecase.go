package product

import (
	"context"

	"modelforge/internal/domain"
)

type catalogUseCase struct {
	service Service
}

func NewCatalogUseCase(service Service) CatalogUseCase {
	return &catalogUseCase{service: service}
}

func (uc *catalogUseCase) ListProducts(ctx context.Context, req ListProductsRequest) ([]ProductDTO, error) {
	found, err := uc.service.ListProducts(ctx, domain.ProductFilter{
		Search:   req.Search,
		Category: req.Category,
		Limit:    req.Limit,
		Offset:   req.Offset,
	})
	if err != nil {
		return nil, err
	}

	products := make([]ProductDTO, 0, len(found))
	for _, p := range found {
		products = append(products, toProductDTO(p))
	}

	return products, nil
}

func (uc *catalogUseCase) GetProduct(ctx context.Context, id int) (*ProductDTO, error) {
	p, err := uc.service.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := toProductDTO(*p)
	return &dto, nil
}

func toProductDTO(p domain.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		ModelURL:    p.ModelURL,
		CreatedAt:   p.CreatedAt,
	}
}
