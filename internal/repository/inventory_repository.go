package repository

import (
	"context"
	"errors"

	"branchdesk-backend/internal/db"
	"branchdesk-backend/internal/domain"
	"github.com/jackc/pgx/v5"
)

type InventoryRepository struct {
	DB *db.Postgres
}

func (r InventoryRepository) List(ctx context.Context) ([]domain.InventoryItem, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, item_name, quantity, supplier_name, price
		FROM inventory
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		var it domain.InventoryItem
		if err := rows.Scan(&it.ID, &it.ItemName, &it.Quantity, &it.SupplierName, &it.Price); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r InventoryRepository) Create(ctx context.Context, item domain.InventoryItem) (int64, error) {
	var id int64
	err := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO inventory (item_name, quantity, supplier_name, price)
		VALUES ($1,$2,$3,$4)
		RETURNING id
	`, item.ItemName, item.Quantity, item.SupplierName, item.Price).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r InventoryRepository) GetByID(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	var it domain.InventoryItem
	err := r.DB.Pool.QueryRow(ctx, `
		SELECT id, item_name, quantity, supplier_name, price
		FROM inventory
		WHERE id=$1
	`, id).Scan(&it.ID, &it.ItemName, &it.Quantity, &it.SupplierName, &it.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &it, nil
}

func (r InventoryRepository) Update(ctx context.Context, item domain.InventoryItem) (int64, error) {
	tag, err := r.DB.Pool.Exec(ctx, `
		UPDATE inventory
		SET item_name=$1, quantity=$2, supplier_name=$3, price=$4
		WHERE id=$5
	`, item.ItemName, item.Quantity, item.SupplierName, item.Price, item.ID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r InventoryRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.DB.Pool.Exec(ctx, `
		DELETE FROM inventory WHERE id=$1
	`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
