package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/auth"
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/policy"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/hash"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/token"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job board backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	responseRepo := postgres.NewResponseRepository(dbPool)

	// 5. Setup Collaborators
	hasher := hash.NewBcrypt()
	tokens := token.NewManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	resolver := auth.NewResolver(tokens, userRepo)

	// 6. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo, hasher, tokens)
	userUC := usecase.NewUserUsecase(userRepo, hasher)
	jobUC := usecase.NewJobUsecase(jobRepo)
	responseUC := usecase.NewResponseUsecase(responseRepo, jobRepo, policy.ResponseRules{
		AllowInactiveJobs: cfg.AllowInactiveJobResponses,
	})

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:     authUC,
		UserUC:     userUC,
		JobUC:      jobUC,
		ResponseUC: responseUC,
		Resolver:   resolver,
		Config:     cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
