package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"branchdesk-backend/internal/domain"
	"branchdesk-backend/internal/ports"
	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	Repo ports.OrderStore
}

func (h OrderHandler) RegisterRoutes(r chi.Router) {
	r.Post("/orders", h.create)
	r.Get("/orders", h.list)
	r.Put("/orders/{id}", h.updateStatus)
}

type cartItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// singleOrder and bulkOrder are the two submission variants. The shared body
// is decoded once and normalized into exactly one of them before anything
// touches the store; both produce rows for the same batched write path.
type singleOrder struct {
	CustomerName  string
	ProductName   string
	Quantity      int
	Price         float64
	TransactionID string
	PaymentMethod string
}

func (s singleOrder) complete() bool {
	return s.CustomerName != "" && s.ProductName != "" && s.Quantity > 0 &&
		s.Price > 0 && s.TransactionID != "" && s.PaymentMethod != ""
}

func (s singleOrder) rows() []domain.Order {
	return []domain.Order{{
		CustomerName:  s.CustomerName,
		ProductName:   s.ProductName,
		Quantity:      s.Quantity,
		Price:         s.Price,
		TransactionID: s.TransactionID,
		PaymentMethod: s.PaymentMethod,
	}}
}

type bulkOrder struct {
	CustomerName  string
	Items         []cartItem
	TransactionID string
	PaymentMethod string
}

func (b bulkOrder) complete() bool {
	return b.CustomerName != "" && b.TransactionID != "" && b.PaymentMethod != ""
}

// rows maps each cart entry to one order row sharing the common fields. Cart
// entries themselves are not validated; a null field fails at the store.
func (b bulkOrder) rows() []domain.Order {
	rows := make([]domain.Order, 0, len(b.Items))
	for _, item := range b.Items {
		rows = append(rows, domain.Order{
			CustomerName:  b.CustomerName,
			ProductName:   item.Name,
			Quantity:      item.Quantity,
			Price:         item.Price,
			TransactionID: b.TransactionID,
			PaymentMethod: b.PaymentMethod,
		})
	}
	return rows
}

func (h OrderHandler) create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CustomerName  string     `json:"customer_name"`
		Cart          []cartItem `json:"cart"`
		ProductName   string     `json:"product_name"`
		Quantity      int        `json:"quantity"`
		Price         float64    `json:"price"`
		TransactionID string     `json:"transaction_id"`
		PaymentMethod string     `json:"payment_method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	// A present cart selects bulk mode, even when empty.
	var rows []domain.Order
	if req.Cart == nil {
		order := singleOrder{
			CustomerName:  req.CustomerName,
			ProductName:   req.ProductName,
			Quantity:      req.Quantity,
			Price:         req.Price,
			TransactionID: req.TransactionID,
			PaymentMethod: req.PaymentMethod,
		}
		if !order.complete() {
			writeError(w, http.StatusBadRequest, "All fields are required for single order")
			return
		}
		rows = order.rows()
	} else {
		order := bulkOrder{
			CustomerName:  req.CustomerName,
			Items:         req.Cart,
			TransactionID: req.TransactionID,
			PaymentMethod: req.PaymentMethod,
		}
		if len(order.Items) == 0 {
			writeError(w, http.StatusBadRequest, "Cart is empty or invalid")
			return
		}
		if !order.complete() {
			writeError(w, http.StatusBadRequest, "Missing required fields")
			return
		}
		rows = order.rows()
	}

	inserted, err := h.Repo.InsertMany(r.Context(), rows)
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "Failed to place order", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Order placed successfully",
		"inserted": inserted,
	})
}

func (h OrderHandler) list(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Repo.List(r.Context(), r.URL.Query().Get("customer_name"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// updateStatus reports the raw affected-row count: an unknown id and an
// unchanged status both come back as zero.
func (h OrderHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Status == "" {
		writeError(w, http.StatusBadRequest, "Status is required")
		return
	}

	affected, err := h.Repo.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"affectedRows": affected})
}
