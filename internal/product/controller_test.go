package product

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

	apperrors "modelforge/internal/errors"
)

type mockCatalogUseCase struct {
	ListProductsFunc func(ctx context.Context, req ListProductsRequest) ([]ProductDTO, error)
	GetProductFunc   func(ctx context.Context, id int) (*ProductDTO, error)
}

func (m *mockCatalogUseCase) ListProducts(ctx context.Context, req ListProductsRequest) ([]ProductDTO, error) {
	return m.ListProductsFunc(ctx, req)
}

func (m *mockCatalogUseCase) GetProduct(ctx context.Context, id int) (*ProductDTO, error) {
	return m.GetProductFunc(ctx, id)
}

func newTestRouter(uc CatalogUseCase) http.Handler {
	ctrl := NewController(uc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/products", ctrl.HandleListProducts)
	r.Get("/products/{id}", ctrl.HandleGetProduct)
	return r
}

func TestHandleListProducts_DefaultsAndClamping(t *testing.T) {
	var gotReq ListProductsRequest
	uc := &mockCatalogUseCase{
		ListProductsFunc: func(ctx context.Context, req ListProductsRequest) ([]ProductDTO, error) {
			gotReq = req
			return []ProductDTO{}, nil
		},
	}
	router := newTestRouter(uc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10, gotReq.Limit)
	assert.Equal(t, 0, gotReq.Offset)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products?limit=500&offset=20", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 100, gotReq.Limit)
	assert.Equal(t, 20, gotReq.Offset)
}

func TestHandleListProducts_PassesFilters(t *testing.T) {
	var gotReq ListProductsRequest
	uc := &mockCatalogUseCase{
		ListProductsFunc: func(ctx context.Context, req ListProductsRequest) ([]ProductDTO, error) {
			gotReq = req
			return []ProductDTO{
				{ID: 1, Name: "Dragon Figurine", Price: decimal.RequireFromString("29.99"), Category: "Fantasy"},
			}, nil
		},
	}
	router := newTestRouter(uc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products?search=dragon&category=Fantasy", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dragon", gotReq.Search)
	assert.Equal(t, "Fantasy", gotReq.Category)

	var products []ProductDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Dragon Figurine", products[0].Name)
}

func TestHandleGetProduct_InvalidID(t *testing.T) {
	router := newTestRouter(&mockCatalogUseCase{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_ID", resp["code"])
}

func TestHandleGetProduct_NotFound(t *testing.T) {
	uc := &mockCatalogUseCase{
		GetProductFunc: func(ctx context.Context, id int) (*ProductDTO, error) {
			return nil, apperrors.NewNotFoundError("Product not found")
		},
	}
	router := newTestRouter(uc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/42", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Product not found", resp["error"])
}

func TestHandleGetProduct_Success(t *testing.T) {
	uc := &mockCatalogUseCase{
		GetProductFunc: func(ctx context.Context, id int) (*ProductDTO, error) {
			assert.Equal(t, 1, id)
			return &ProductDTO{ID: 1, Name: "Dragon Figurine", Price: decimal.RequireFromString("29.99"), Category: "Fantasy"}, nil
		},
	}
	router := newTestRouter(uc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var p ProductDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "Dragon Figurine", p.Name)
}
