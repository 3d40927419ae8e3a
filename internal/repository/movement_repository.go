package repository

import (
	"context"

	"branchdesk-backend/internal/db"
	"branchdesk-backend/internal/domain"
)

// MovementRepository appends restock requests and inter-branch transfers.
// Both tables are insert-only; timestamps are assigned by the database.
type MovementRepository struct {
	DB *db.Postgres
}

func (r MovementRepository) CreateRequest(ctx context.Context, req domain.InventoryRequest) (int64, error) {
	var id int64
	err := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO inventory_requests (item_id, item_name, quantity, branch, request_date)
		VALUES ($1,$2,$3,$4, now())
		RETURNING id
	`, req.ItemID, req.ItemName, req.Quantity, req.Branch).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r MovementRepository) CreateTransfer(ctx context.Context, tr domain.InventoryTransfer) (int64, error) {
	var id int64
	err := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO inventory_transfers (item_id, item_name, quantity, from_branch, to_branch, transfer_date)
		VALUES ($1,$2,$3,$4,$5, now())
		RETURNING id
	`, tr.ItemID, tr.ItemName, tr.Quantity, tr.FromBranch, tr.ToBranch).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
