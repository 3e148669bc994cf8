package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrder_Creation(t *testing.T) {
	order := Order{
		ID:          1,
		UserEmail:   "a@b.com",
		TotalAmount: decimal.RequireFromString("36.50"),
		Status:      OrderStatusPending,
	}

	assert.Equal(t, uint(1), order.ID)
	assert.Equal(t, "a@b.com", order.UserEmail)
	assert.Equal(t, "pending", order.Status)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("36.50")))
}

func TestOrderItem_OpaqueCustomization(t *testing.T) {
	voiceURL := "https://cdn.example.com/freq/9.wav"
	item := OrderItem{
		ID:                2,
		OrderID:           1,
		ProductID:         9,
		Quantity:          4,
		CustomizationData: json.RawMessage(`{"engraving":"HBD"}`),
		VoiceFrequencyURL: &voiceURL,
	}

	assert.Equal(t, uint(1), item.OrderID)
	assert.JSONEq(t, `{"engraving":"HBD"}`, string(item.CustomizationData))
	assert.Equal(t, voiceURL, *item.VoiceFrequencyURL)
}

func TestOrderItem_NullableFieldsAbsent(t *testing.T) {
	item := OrderItem{OrderID: 1, ProductID: 9, Quantity: 1}

	assert.Nil(t, item.CustomizationData)
	assert.Nil(t, item.VoiceFrequencyURL)
}
