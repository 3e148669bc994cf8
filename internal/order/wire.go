package order

import (
	"database/sql"

	"modelforge/internal/order/controller"
	orderrepo "modelforge/internal/order/repository"
	"modelforge/internal/order/service"
	"modelforge/internal/order/usecase"
	productrepo "modelforge/internal/product/repository"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, logger *zap.Logger) (*controller.CreateOrderController, *controller.GetOrderController) {
	orderRepo := orderrepo.NewMySQLOrderRepository(db)
	orderItemRepo := orderrepo.NewMySQLOrderItemRepository(db)
	catalogRepo := productrepo.NewMySQLRepository(db)

	pricingSvc := service.NewPricingService(catalogRepo, logger)
	orderWriter := service.NewOrderWriter(db, orderRepo, orderItemRepo, logger)

	createUC := usecase.NewCreateOrderUseCase(pricingSvc, orderWriter, logger)
	getUC := usecase.NewGetOrderUseCase(orderRepo, orderItemRepo, logger)

	return controller.NewCreateOrderController(createUC, logger),
		controller.NewGetOrderController(getUC, logger)
}
