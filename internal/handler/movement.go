package handler

import (
	"encoding/json"
	"net/http"

	"branchdesk-backend/internal/domain"
	"branchdesk-backend/internal/ports"
	"github.com/go-chi/chi/v5"
)

// MovementHandler logs restock requests and inter-branch transfers. Both are
// pure log entries: no inventory existence check, no stock adjustment.
type MovementHandler struct {
	Repo ports.MovementStore
}

func (h MovementHandler) RegisterRoutes(r chi.Router) {
	r.Post("/inventory/request", h.request)
	r.Post("/inventory/transfer", h.transfer)
}

func (h MovementHandler) request(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemID   int64  `json:"item_id"`
		ItemName string `json:"item_name"`
		Quantity int    `json:"quantity"`
		Branch   string `json:"branch"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.ItemID == 0 || req.ItemName == "" || req.Quantity == 0 || req.Branch == "" {
		writeError(w, http.StatusBadRequest, "All fields (item_id, item_name, quantity, branch) are required")
		return
	}
	if req.Quantity <= 0 {
		writeError(w, http.StatusBadRequest, "Quantity must be positive")
		return
	}

	id, err := h.Repo.CreateRequest(r.Context(), domain.InventoryRequest{
		ItemID:   req.ItemID,
		ItemName: req.ItemName,
		Quantity: req.Quantity,
		Branch:   req.Branch,
	})
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "Failed to submit request", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Request submitted successfully",
		"id":      id,
	})
}

func (h MovementHandler) transfer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemID     int64  `json:"item_id"`
		ItemName   string `json:"item_name"`
		Quantity   int    `json:"quantity"`
		FromBranch string `json:"from_branch"`
		ToBranch   string `json:"to_branch"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.ItemID == 0 || req.ItemName == "" || req.Quantity == 0 || req.FromBranch == "" || req.ToBranch == "" {
		writeError(w, http.StatusBadRequest, "All fields (item_id, item_name, quantity, from_branch, to_branch) are required")
		return
	}
	if req.Quantity <= 0 {
		writeError(w, http.StatusBadRequest, "Quantity must be positive")
		return
	}
	if req.FromBranch == req.ToBranch {
		writeError(w, http.StatusBadRequest, "Cannot transfer to the same branch")
		return
	}

	id, err := h.Repo.CreateTransfer(r.Context(), domain.InventoryTransfer{
		ItemID:     req.ItemID,
		ItemName:   req.ItemName,
		Quantity:   req.Quantity,
		FromBranch: req.FromBranch,
		ToBranch:   req.ToBranch,
	})
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "Failed to record transfer", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Transfer recorded successfully",
		"id":      id,
	})
}
