// cmd/server/main.go
package main

import (
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/nakarin/storefront-backend/internal/config"
	"github.com/nakarin/storefront-backend/internal/controller"
	"github.com/nakarin/storefront-backend/internal/db"
	"github.com/nakarin/storefront-backend/internal/repository"
	"github.com/nakarin/storefront-backend/internal/router"
	"github.com/nakarin/storefront-backend/internal/service"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	gdb, cleanup, err := db.Connect(cfg.Database, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer cleanup()

	customerRepo := &repository.CustomerRepository{DB: gdb}
	productRepo := &repository.ProductRepository{DB: gdb}
	userRepo := &repository.UserRepository{DB: gdb}
	sessionRepo := &repository.SessionRepository{DB: gdb}

	authService := &service.AuthService{
		UserRepo:    userRepo,
		SessionRepo: sessionRepo,
		TokenTTL:    cfg.SessionTTL,
	}

	handler := router.New(router.Deps{
		Customers: &controller.CustomerController{Repo: customerRepo, Logger: logger},
		Products:  &controller.ProductController{Repo: productRepo, Logger: logger},
		Users:     &controller.UserController{Repo: userRepo, Logger: logger},
		AuthCtrl:  &controller.AuthController{Auth: authService, Logger: logger},
		Auth:      authService,
		RateLimit: cfg.RateLimit,
		Logger:    logger,
	})

	addr := ":" + cfg.Port
	logger.Info("🚀 server running", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
