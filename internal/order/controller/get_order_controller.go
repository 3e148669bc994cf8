package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"modelforge/internal/dto"
	apperrors "modelforge/internal/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type GetOrderUseCase interface {
	GetOrder(ctx context.Context, id uint) (*dto.OrderResponse, error)
}

type GetOrderController struct {
	useCase GetOrderUseCase
	logger  *zap.Logger
}

func NewGetOrderController(useCase GetOrderUseCase, logger *zap.Logger) *GetOrderController {
	return &GetOrderController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *GetOrderController) HandleGetOrder(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		c.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Error: "Valid ID is required",
			Code:  "INVALID_ID",
		})
		return
	}

	resp, err := c.useCase.GetOrder(r.Context(), uint(id))
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			c.writeJSON(w, http.StatusNotFound, dto.ErrorResponse{
				Error: "Order not found",
			})
			return
		}

		c.logger.Error("fetching order failed", zap.Uint64("orderId", id), zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Internal server error: " + err.Error(),
		})
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *GetOrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
