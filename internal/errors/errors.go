package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Stable error codes surfaced to clients.
const (
	CodeMissingUserEmail    = "MISSING_USER_EMAIL"
	CodeInvalidEmailFormat  = "INVALID_EMAIL_FORMAT"
	CodeMissingItems        = "MISSING_ITEMS"
	CodeEmptyItems          = "EMPTY_ITEMS"
	CodeInvalidProductID    = "INVALID_PRODUCT_ID"
	CodeInvalidQuantity     = "INVALID_QUANTITY"
	CodeProductNotFound     = "PRODUCT_NOT_FOUND"
	CodeOrderCreationFailed = "ORDER_CREATION_FAILED"
)

type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(code, message string) *ValidationError {
	return &ValidationError{
		Code:    code,
		Message: message,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	if ve, ok := err.(*ValidationError); ok {
		return ve, true
	}
	return nil, false
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	if nfe, ok := err.(*NotFoundError); ok {
		return nfe, true
	}
	return nil, false
}

// ProductNotFoundError rejects an order referencing unknown products.
// MissingIDs holds every offending id in first-seen request order.
type ProductNotFoundError struct {
	MissingIDs []int
}

func (e *ProductNotFoundError) Error() string {
	ids := make([]string, len(e.MissingIDs))
	for i, id := range e.MissingIDs {
		ids[i] = strconv.Itoa(id)
	}
	return fmt.Sprintf("Product(s) not found: %s", strings.Join(ids, ", "))
}

func NewProductNotFoundError(missingIDs []int) *ProductNotFoundError {
	return &ProductNotFoundError{MissingIDs: missingIDs}
}

func IsProductNotFoundError(err error) (*ProductNotFoundError, bool) {
	if pnf, ok := err.(*ProductNotFoundError); ok {
		return pnf, true
	}
	return nil, false
}

type InternalError struct {
	Code    string
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}

// NewOrderCreationFailedError reports an order insert that affected zero
// rows without raising a driver error.
func NewOrderCreationFailedError() *InternalError {
	return &InternalError{
		Code:    CodeOrderCreationFailed,
		Message: "Failed to create order",
	}
}

func IsInternalError(err error) (*InternalError, bool) {
	if ie, ok := err.(*InternalError); ok {
		return ie, true
	}
	return nil, false
}
