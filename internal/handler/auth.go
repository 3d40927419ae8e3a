package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"branchdesk-backend/internal/domain"
	"branchdesk-backend/internal/service"
	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	Service *service.AuthService
}

func (h AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
}

func (h AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Branch   string `json:"branch"`
		Role     string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" || req.Branch == "" || req.Role == "" {
		writeError(w, http.StatusBadRequest, "All fields (username, email, password, branch, role) are required")
		return
	}

	_, err := h.Service.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Branch:   req.Branch,
		Role:     domain.UserRole(req.Role),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			writeError(w, http.StatusBadRequest, "Invalid role. Must be Admin or User")
		case errors.Is(err, service.ErrAlreadyExists):
			writeError(w, http.StatusBadRequest, "Username or email already exists")
		default:
			writeErrorWithErr(w, http.StatusInternalServerError, "Failed to register user", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "User registered successfully"})
}

func (h AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Branch   string `json:"branch"`
		Role     string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Username == "" || req.Password == "" || req.Branch == "" || req.Role == "" {
		writeError(w, http.StatusBadRequest, "Username, password, branch, and role are required")
		return
	}

	token, err := h.Service.Login(r.Context(), service.LoginInput{
		Username: req.Username,
		Password: req.Password,
		Branch:   req.Branch,
		Role:     domain.UserRole(req.Role),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "User not found or incorrect branch/role")
		case errors.Is(err, service.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
		default:
			writeErrorWithErr(w, http.StatusInternalServerError, "Database error", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
