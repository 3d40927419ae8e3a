package ports

import (
	"context"

	"branchdesk-backend/internal/domain"
)

// HealthChecker is used to probe dependencies.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// OrderStore persists customer orders.
type OrderStore interface {
	// InsertMany writes all rows in one batched statement and returns the
	// number of rows inserted.
	InsertMany(ctx context.Context, orders []domain.Order) (int64, error)
	List(ctx context.Context, customerName string) ([]domain.Order, error)
	// UpdateStatus returns the affected-row count; zero covers both an
	// unknown id and an unchanged row.
	UpdateStatus(ctx context.Context, id int64, status string) (int64, error)
}

// InventoryStore persists inventory items.
type InventoryStore interface {
	List(ctx context.Context) ([]domain.InventoryItem, error)
	Create(ctx context.Context, item domain.InventoryItem) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.InventoryItem, error)
	Update(ctx context.Context, item domain.InventoryItem) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// MovementStore appends restock requests and inter-branch transfers.
type MovementStore interface {
	CreateRequest(ctx context.Context, req domain.InventoryRequest) (int64, error)
	CreateTransfer(ctx context.Context, tr domain.InventoryTransfer) (int64, error)
}

// UserStore persists registered users.
type UserStore interface {
	Create(ctx context.Context, user domain.User) (*domain.User, error)
	// GetByIdentity looks a user up by the exact (username, branch, role)
	// triple; the same username under another branch or role is a distinct
	// identity.
	GetByIdentity(ctx context.Context, username, branch string, role domain.UserRole) (*domain.User, error)
}
