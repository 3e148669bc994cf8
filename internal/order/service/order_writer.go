package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"modelforge/internal/domain"
	"modelforge/internal/dto"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, order domain.Order) (uint, error)
}

type OrderItemRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, item domain.OrderItem) (uint, error)
}

// OrderWriter persists an order header and its line items as one
// transaction: either all rows become visible or none do.
type OrderWriter struct {
	db            TransactionManager
	orderRepo     OrderRepository
	orderItemRepo OrderItemRepository
	logger        *zap.Logger
}

func NewOrderWriter(
	db TransactionManager,
	orderRepo OrderRepository,
	orderItemRepo OrderItemRepository,
	logger *zap.Logger,
) *OrderWriter {
	return &OrderWriter{
		db:            db,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		logger:        logger,
	}
}

func (s *OrderWriter) CreateOrder(
	ctx context.Context,
	userEmail string,
	totalAmount decimal.Decimal,
	items []dto.NewOrderItem,
) (*domain.Order, []domain.OrderItem, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return nil, nil, err
	}
	// Rollback on any exit path. MySQL ignores rollback after commit.
	defer tx.Rollback()

	order := domain.Order{
		UserEmail:   userEmail,
		TotalAmount: totalAmount,
		Status:      domain.OrderStatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	orderID, err := s.orderRepo.Insert(ctx, tx, order)
	if err != nil {
		s.logger.Error("failed to insert order", zap.String("userEmail", userEmail), zap.Error(err))
		return nil, nil, err
	}
	order.ID = orderID

	orderItems := make([]domain.OrderItem, len(items))
	for i, item := range items {
		orderItem := domain.OrderItem{
			OrderID:           orderID,
			ProductID:         item.ProductID,
			Quantity:          item.Quantity,
			CustomizationData: item.CustomizationData,
			VoiceFrequencyURL: item.VoiceFrequencyURL,
		}

		itemID, err := s.orderItemRepo.Insert(ctx, tx, orderItem)
		if err != nil {
			s.logger.Error("failed to insert order item",
				zap.Uint("orderId", orderID), zap.Int("productId", item.ProductID), zap.Error(err))
			return nil, nil, err
		}

		orderItem.ID = itemID
		orderItems[i] = orderItem
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit transaction", zap.Uint("orderId", orderID), zap.Error(err))
		return nil, nil, err
	}

	s.logger.Info("order created",
		zap.Uint("orderId", orderID),
		zap.Int("itemCount", len(orderItems)),
		zap.String("totalAmount", totalAmount.String()),
	)

	return &order, orderItems, nil
}
