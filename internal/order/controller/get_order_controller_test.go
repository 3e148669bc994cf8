package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"modelforge/internal/domain"
	"modelforge/internal/dto"
	apperrors "modelforge/internal/errors"
)

type mockGetOrderUseCase struct {
	GetOrderFunc func(ctx context.Context, id uint) (*dto.OrderResponse, error)
}

func (m *mockGetOrderUseCase) GetOrder(ctx context.Context, id uint) (*dto.OrderResponse, error) {
	return m.GetOrderFunc(ctx, id)
}

func newGetOrderRouter(uc GetOrderUseCase) http.Handler {
	ctrl := NewGetOrderController(uc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/orders/{id}", ctrl.HandleGetOrder)
	return r
}

func TestHandleGetOrder_InvalidID(t *testing.T) {
	router := newGetOrderRouter(&mockGetOrderUseCase{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_ID", resp.Code)
}

func TestHandleGetOrder_NotFound(t *testing.T) {
	uc := &mockGetOrderUseCase{
		GetOrderFunc: func(ctx context.Context, id uint) (*dto.OrderResponse, error) {
			return nil, apperrors.NewNotFoundError("order with id 42 not found")
		},
	}
	router := newGetOrderRouter(uc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/42", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Order not found", resp.Error)
}

func TestHandleGetOrder_Success(t *testing.T) {
	var gotID uint
	uc := &mockGetOrderUseCase{
		GetOrderFunc: func(ctx context.Context, id uint) (*dto.OrderResponse, error) {
			gotID = id
			return &dto.OrderResponse{
				Order: dto.OrderDTO{
					ID:          id,
					UserEmail:   "a@b.com",
					TotalAmount: decimal.RequireFromString("24.00"),
					Status:      domain.OrderStatusPending,
				},
				Items: []dto.OrderItemDTO{
					{ID: 7, OrderID: id, ProductID: 1, Quantity: 2},
				},
			}, nil
		},
	}
	router := newGetOrderRouter(uc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/42", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(42), gotID)

	var resp dto.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint(42), resp.Order.ID)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Items[0].ProductID)
}

func TestHandleGetOrder_InternalError(t *testing.T) {
	uc := &mockGetOrderUseCase{
		GetOrderFunc: func(ctx context.Context, id uint) (*dto.OrderResponse, error) {
			return nil, assert.AnError
		},
	}
	router := newGetOrderRouter(uc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/42", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
