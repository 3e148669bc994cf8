package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID          uint
	UserEmail   string
	TotalAmount decimal.Decimal
	Status      string
	CreatedAt   time.Time
}

const OrderStatusPending = "pending"
