package domain

import "time"

// Enumerations
const (
	RoleAdmin UserRole = "Admin"
	RoleUser  UserRole = "User"
)

type UserRole string

// Valid reports whether the role is one of the closed set.
func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

type Order struct {
	ID            int64     `json:"id"`
	CustomerName  string    `json:"customer_name"`
	ProductName   string    `json:"product_name"`
	Quantity      int       `json:"quantity"`
	Price         float64   `json:"price"`
	TransactionID string    `json:"transaction_id"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type InventoryItem struct {
	ID           int64   `json:"id"`
	ItemName     string  `json:"item_name"`
	Quantity     int     `json:"quantity"`
	SupplierName string  `json:"supplier_name"`
	Price        float64 `json:"price"`
}

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Branch       string    `json:"branch"`
	Role         UserRole  `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// InventoryRequest is a restock request logged by a branch. Append-only.
type InventoryRequest struct {
	ID          int64     `json:"id"`
	ItemID      int64     `json:"item_id"`
	ItemName    string    `json:"item_name"`
	Quantity    int       `json:"quantity"`
	Branch      string    `json:"branch"`
	RequestDate time.Time `json:"request_date"`
}

// InventoryTransfer records a stock movement between two branches. Append-only;
// it does not adjust inventory quantities.
type InventoryTransfer struct {
	ID           int64     `json:"id"`
	ItemID       int64     `json:"item_id"`
	ItemName     string    `json:"item_name"`
	Quantity     int       `json:"quantity"`
	FromBranch   string    `json:"from_branch"`
	ToBranch     string    `json:"to_branch"`
	TransferDate time.Time `json:"transfer_date"`
}
