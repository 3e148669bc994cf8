package dto

import "encoding/json"

// CreateOrderRequest decodes leniently: items and the per-item fields
// stay raw so a wrong-typed value never fails the decode. The validator
// owns all type checking and reports violations in precedence order with
// the offending index.
type CreateOrderRequest struct {
	UserEmail string          `json:"userEmail"`
	Items     json.RawMessage `json:"items"`
}

type CreateOrderItemRequest struct {
	ProductID         json.RawMessage `json:"productId"`
	Quantity          json.RawMessage `json:"quantity"`
	CustomizationData json.RawMessage `json:"customizationData"`
	VoiceFrequencyURL json.RawMessage `json:"voiceFrequencyUrl"`
}

// NewOrderItem is one validated line item. CustomizationData stays opaque.
type NewOrderItem struct {
	ProductID         int
	Quantity          int
	CustomizationData json.RawMessage
	VoiceFrequencyURL *string
}

// NewOrder is the validator's output: a normalized request ready for
// pricing and persistence.
type NewOrder struct {
	UserEmail string
	Items     []NewOrderItem
}
