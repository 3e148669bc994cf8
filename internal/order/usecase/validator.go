package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"modelforge/internal/dto"
	"modelforge/internal/errors"
)

// ValidateCreateOrderRequest checks the raw request against the rules
// below in order and stops at the first violation. On success it returns
// the normalized order: email trimmed and lower-cased, items as typed
// values.
func ValidateCreateOrderRequest(req dto.CreateOrderRequest) (*dto.NewOrder, error) {
	if req.UserEmail == "" {
		return nil, errors.NewValidationError(errors.CodeMissingUserEmail, "User email is required")
	}

	if !strings.Contains(req.UserEmail, "@") {
		return nil, errors.NewValidationError(errors.CodeInvalidEmailFormat, "Invalid email format")
	}

	rawItems, ok := decodeSequence(req.Items)
	if !ok {
		return nil, errors.NewValidationError(errors.CodeMissingItems, "Items array is required")
	}

	if len(rawItems) == 0 {
		return nil, errors.NewValidationError(errors.CodeEmptyItems, "Items array cannot be empty")
	}

	items := make([]dto.NewOrderItem, len(rawItems))
	for i, raw := range rawItems {
		var item dto.CreateOrderItemRequest
		if err := json.Unmarshal(raw, &item); err != nil {
			// A non-object element has no productId at all.
			return nil, errors.NewValidationError(errors.CodeInvalidProductID,
				fmt.Sprintf("Invalid productId for item at index %d", i))
		}

		productID, ok := integerField(item.ProductID)
		if !ok || productID == 0 {
			return nil, errors.NewValidationError(errors.CodeInvalidProductID,
				fmt.Sprintf("Invalid productId for item at index %d", i))
		}

		quantity, ok := integerField(item.Quantity)
		if !ok || quantity <= 0 {
			return nil, errors.NewValidationError(errors.CodeInvalidQuantity,
				fmt.Sprintf("Quantity must be a positive integer for item at index %d", i))
		}

		items[i] = dto.NewOrderItem{
			ProductID:         int(productID),
			Quantity:          int(quantity),
			CustomizationData: opaqueField(item.CustomizationData),
			VoiceFrequencyURL: stringField(item.VoiceFrequencyURL),
		}
	}

	return &dto.NewOrder{
		UserEmail: strings.ToLower(strings.TrimSpace(req.UserEmail)),
		Items:     items,
	}, nil
}

// decodeSequence reports whether raw holds a JSON array. Absent and null
// values and non-array types all count as missing.
func decodeSequence(raw json.RawMessage) ([]json.RawMessage, bool) {
	if len(raw) == 0 {
		return nil, false
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	if items == nil {
		return nil, false
	}

	return items, true
}

// integerField reports whether raw holds an integer value. Absent
// fields, non-number types and fractional values all fail.
func integerField(raw json.RawMessage) (int64, bool) {
	if len(raw) == 0 {
		return 0, false
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}

	v, err := n.Int64()
	if err != nil {
		return 0, false
	}

	return v, true
}

func stringField(raw json.RawMessage) *string {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}

	return &s
}

func opaqueField(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	return raw
}
