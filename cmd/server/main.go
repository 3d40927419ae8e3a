package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"branchdesk-backend/internal/auth"
	"branchdesk-backend/internal/config"
	"branchdesk-backend/internal/db"
	"branchdesk-backend/internal/handler"
	"branchdesk-backend/internal/repository"
	"branchdesk-backend/internal/server"
	"branchdesk-backend/internal/service"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	if cfg.InsecureSecret() {
		logger.Warn("JWT_SECRET not set, using insecure built-in default")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pg, err := db.New(ctx, cfg)
	if err != nil {
		logger.Error("failed to connect database", "err", err)
		os.Exit(1)
	}
	defer pg.Close()

	// repositories
	orderRepo := repository.OrderRepository{DB: pg}
	inventoryRepo := repository.InventoryRepository{DB: pg}
	userRepo := repository.UserRepository{DB: pg}
	movementRepo := repository.MovementRepository{DB: pg}

	// services
	authSvc := service.AuthService{
		Users:  userRepo,
		Hasher: auth.BcryptHasher{},
		Tokens: auth.JWTIssuer{Secret: cfg.JWTSecret, TTL: auth.TokenExpiry},
		Logger: logger,
	}

	// handlers
	healthHandler := handler.HealthHandler{DB: pg}
	authHandler := handler.AuthHandler{Service: &authSvc}
	orderHandler := handler.OrderHandler{Repo: orderRepo}
	inventoryHandler := handler.InventoryHandler{Repo: inventoryRepo}
	movementHandler := handler.MovementHandler{Repo: movementRepo}
	docsHandler := handler.DocsHandler{OpenAPIPath: "api/openapi.yaml"}

	router := server.NewRouter(logger, healthHandler, authHandler, orderHandler, inventoryHandler, movementHandler, docsHandler)

	if err := server.Start(ctx, cfg, router, logger); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
