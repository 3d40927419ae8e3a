package repository

import (
	"context"

	"branchdesk-backend/internal/db"
	"branchdesk-backend/internal/domain"
	"github.com/jackc/pgx/v5"
)

type OrderRepository struct {
	DB *db.Postgres
}

// InsertMany writes all rows as a single pgx batch. pgx wraps the batch in an
// implicit transaction, so a failure on any row inserts nothing.
func (r OrderRepository) InsertMany(ctx context.Context, orders []domain.Order) (int64, error) {
	batch := &pgx.Batch{}
	for _, o := range orders {
		batch.Queue(`
			INSERT INTO orders (customer_name, product_name, quantity, price, transaction_id, payment_method)
			VALUES ($1,$2,$3,$4,$5,$6)
		`, o.CustomerName, o.ProductName, o.Quantity, o.Price, o.TransactionID, o.PaymentMethod)
	}

	results := r.DB.Pool.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int64
	for range orders {
		tag, err := results.Exec()
		if err != nil {
			return 0, err
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}

func (r OrderRepository) List(ctx context.Context, customerName string) ([]domain.Order, error) {
	query := `
		SELECT id, customer_name, product_name, quantity, price, transaction_id, payment_method, status, created_at
		FROM orders
	`
	args := []any{}
	if customerName != "" {
		query += ` WHERE customer_name=$1`
		args = append(args, customerName)
	}

	rows, err := r.DB.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.ProductName, &o.Quantity, &o.Price, &o.TransactionID, &o.PaymentMethod, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r OrderRepository) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	tag, err := r.DB.Pool.Exec(ctx, `
		UPDATE orders SET status=$1 WHERE id=$2
	`, status, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
