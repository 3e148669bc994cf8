package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"modelforge/internal/dto"
	apperrors "modelforge/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CreateOrderUseCase interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
}

type CreateOrderController struct {
	useCase CreateOrderUseCase
	logger  *zap.Logger
}

func NewCreateOrderController(useCase CreateOrderUseCase, logger *zap.Logger) *CreateOrderController {
	return &CreateOrderController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *CreateOrderController) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid request body", zap.Error(err))
		c.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Error: "Request body must be valid JSON",
		})
		return
	}

	resp, err := c.useCase.CreateOrder(r.Context(), req)
	if err != nil {
		c.handleUseCaseError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, resp)
}

func (c *CreateOrderController) handleUseCaseError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Error: ve.Message,
			Code:  ve.Code,
		})
		return
	}

	if pnf, ok := apperrors.IsProductNotFoundError(err); ok {
		c.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Error: pnf.Error(),
			Code:  apperrors.CodeProductNotFound,
		})
		return
	}

	if ie, ok := apperrors.IsInternalError(err); ok {
		logger.Error("order creation failed", zap.Error(ie))
		c.writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
			Error: ie.Message,
			Code:  ie.Code,
		})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error: " + err.Error(),
	})
}

func (c *CreateOrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
