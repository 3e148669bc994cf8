package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int
	Name        string
	Description *string
	Price       decimal.Decimal
	Category    string
	ImageURL    *string
	ModelURL    *string
	CreatedAt   time.Time
}
