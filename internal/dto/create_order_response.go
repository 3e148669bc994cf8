package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// OrderResponse is the order-with-items payload returned by POST /orders
// and GET /orders/{id}.
type OrderResponse struct {
	Order OrderDTO       `json:"order"`
	Items []OrderItemDTO `json:"items"`
}

type OrderDTO struct {
	ID          uint            `json:"id"`
	UserEmail   string          `json:"userEmail"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type OrderItemDTO struct {
	ID                uint            `json:"id"`
	OrderID           uint            `json:"orderId"`
	ProductID         int             `json:"productId"`
	Quantity          int             `json:"quantity"`
	CustomizationData json.RawMessage `json:"customizationData"`
	VoiceFrequencyURL *string         `json:"voiceFrequencyUrl"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
