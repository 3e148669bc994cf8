package repository

import (
	"context"
	"database/sql"
	"fmt"

	"modelforge/internal/domain"
	"modelforge/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

// Insert writes the order header inside tx and returns the assigned id.
// Zero rows affected without a driver error is reported as
// ORDER_CREATION_FAILED.
func (r *MySQLOrderRepository) Insert(ctx context.Context, tx *sql.Tx, order domain.Order) (uint, error) {
	query := `INSERT INTO orders (user_email, total_amount, status, created_at) VALUES (?, ?, ?, ?)`

	result, err := tx.ExecContext(ctx, query, order.UserEmail, order.TotalAmount, order.Status, order.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("inserting order: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return 0, errors.NewOrderCreationFailedError()
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	query := `
		SELECT id, user_email, total_amount, status, created_at
		FROM orders
		WHERE id = ?
	`

	var order domain.Order
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID, &order.UserEmail, &order.TotalAmount, &order.Status, &order.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	return &order, nil
}
