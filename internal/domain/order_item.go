package domain

import "encoding/json"

type OrderItem struct {
	ID                uint
	OrderID           uint
	ProductID         int
	Quantity          int
	CustomizationData json.RawMessage
	VoiceFrequencyURL *string
}
