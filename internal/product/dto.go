package product

import (
	"time"

	"github.com/shopspring/decimal"
)

type ListProductsRequest struct {
	Search   string
	Category string
	Limit    int
	Offset   int
}

type ProductDTO struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	ImageURL    *string         `json:"imageUrl"`
	ModelURL    *string         `json:"modelUrl"`
	CreatedAt   time.Time       `json:"createdAt"`
}
