package product

import (
	"encoding/json"
	"net/http"
	"strconv"

	apperrors "modelforge/internal/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

type Controller struct {
	useCase CatalogUseCase
	logger  *zap.Logger
}

func NewController(useCase CatalogUseCase, logger *zap.Logger) *Controller {
	return &Controller{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *Controller) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	limit := defaultListLimit
	if raw := params.Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if limit < 0 {
		limit = defaultListLimit
	}

	offset := 0
	if raw := params.Get("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			offset = parsed
		}
	}

	req := ListProductsRequest{
		Search:   params.Get("search"),
		Category: params.Get("category"),
		Limit:    limit,
		Offset:   offset,
	}

	products, err := c.useCase.ListProducts(r.Context(), req)
	if err != nil {
		c.logger.Error("listing products failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Internal server error: " + err.Error(),
		})
		return
	}

	c.writeJSON(w, http.StatusOK, products)
}

func (c *Controller) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Valid ID is required",
			"code":  "INVALID_ID",
		})
		return
	}

	p, err := c.useCase.GetProduct(r.Context(), id)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			c.writeJSON(w, http.StatusNotFound, map[string]string{
				"error": "Product not found",
			})
			return
		}

		c.logger.Error("fetching product failed", zap.Int("productId", id), zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Internal server error: " + err.Error(),
		})
		return
	}

	c.writeJSON(w, http.StatusOK, p)
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
