package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"branchdesk-backend/internal/domain"
	"branchdesk-backend/internal/ports"
	"branchdesk-backend/internal/repository"
	"github.com/go-chi/chi/v5"
)

type InventoryHandler struct {
	Repo ports.InventoryStore
}

func (h InventoryHandler) RegisterRoutes(r chi.Router) {
	r.Get("/inventory", h.list)
	r.Post("/inventory", h.create)
	r.Put("/inventory/{id}", h.update)
	r.Delete("/inventory/{id}", h.delete)
}

// inventoryPayload uses pointers for the numeric fields so a zero value is
// accepted while an absent or null one is rejected.
type inventoryPayload struct {
	ItemName     string   `json:"item_name"`
	Quantity     *int     `json:"quantity"`
	SupplierName string   `json:"supplier_name"`
	Price        *float64 `json:"price"`
}

func (p inventoryPayload) validate() (string, bool) {
	if p.ItemName == "" || p.Quantity == nil || p.SupplierName == "" || p.Price == nil {
		return "All fields (item_name, quantity, supplier_name, price) are required", false
	}
	if *p.Quantity < 0 || *p.Price < 0 {
		return "Quantity and price must be non-negative", false
	}
	return "", true
}

func (p inventoryPayload) item() domain.InventoryItem {
	return domain.InventoryItem{
		ItemName:     p.ItemName,
		Quantity:     *p.Quantity,
		SupplierName: p.SupplierName,
		Price:        *p.Price,
	}
}

func (h InventoryHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if items == nil {
		items = []domain.InventoryItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h InventoryHandler) create(w http.ResponseWriter, r *http.Request) {
	var req inventoryPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if msg, ok := req.validate(); !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	id, err := h.Repo.Create(r.Context(), req.item())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id})
}

func (h InventoryHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req inventoryPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if msg, ok := req.validate(); !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	// Existence check first; the write still reports not-found on zero
	// affected rows in case the row vanished in between.
	if _, err := h.Repo.GetByID(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Inventory item not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	item := req.item()
	item.ID = id
	affected, err := h.Repo.Update(r.Context(), item)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if affected == 0 {
		writeError(w, http.StatusNotFound, "No item updated, check ID")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":      "Inventory updated successfully",
		"affectedRows": affected,
	})
}

func (h InventoryHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	affected, err := h.Repo.Delete(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if affected == 0 {
		writeError(w, http.StatusNotFound, "Inventory item not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":      "Inventory item deleted",
		"affectedRows": affected,
	})
}
