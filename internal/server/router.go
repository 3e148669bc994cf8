package server

import (
	"encoding/json"
	"net/http"

	ordercontroller "modelforge/internal/order/controller"
	"modelforge/internal/product"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func NewRouter(
	productCtrl *product.Controller,
	createOrderCtrl *ordercontroller.CreateOrderController,
	getOrderCtrl *ordercontroller.GetOrderController,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(recoverMiddleware(logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/products", productCtrl.HandleListProducts)
	r.Get("/products/{id}", productCtrl.HandleGetProduct)
	r.Post("/orders", createOrderCtrl.HandleCreateOrder)
	r.Get("/orders/{id}", getOrderCtrl.HandleGetOrder)

	return r
}

// recoverMiddleware converts a panic anywhere below into a generic 500
// without leaking internals to the client.
func recoverMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rec),
						zap.String("path", r.URL.Path),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"error": "Internal server error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
