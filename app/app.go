// File: app/app.go
package app

import (
	"context"
	"management-api/config"
	"management-api/db"
	"management-api/handler"
	"management-api/logger"
	"management-api/repository"
	"management-api/router"
	"management-api/service"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func Run() {
	logger.Init()
	logger.Log.Info("Logger initialized")

	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Log.Fatalf("Error loading configuration: %v", err)
	}
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect(cfg)
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(cfg, "file://db/migrations"); err != nil {
		logger.Log.Fatalf("Error running migrations: %v", err)
	}

	redisClient, err := db.ConnectRedis(cfg)
	if err != nil {
		logger.Log.Fatalf("Error connecting to Redis: %v", err)
	}
	defer redisClient.Close()

	// --- Wiring All Layers Together ---

	userRepo := repository.NewUserRepository(database)
	projectRepo := repository.NewProjectRepository(database)
	taskRepo := repository.NewTaskRepository(database)
	urlRepo := repository.NewURLRepository(database)

	authService := service.NewAuthService(userRepo, cfg)
	userService := service.NewUserService(userRepo, authService, redisClient)
	projectService := service.NewProjectService(projectRepo, userRepo, taskRepo)
	taskService := service.NewTaskService(taskRepo, projectRepo, userRepo)
	shortenerService := service.NewShortenerService(urlRepo)

	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)
	projectHandler := handler.NewProjectHandler(projectService)
	taskHandler := handler.NewTaskHandler(taskService)
	urlHandler := handler.NewURLHandler(shortenerService)

	r := router.NewRouter(authHandler, userHandler, projectHandler, taskHandler, urlHandler,
		handler.AuthMiddleware(authService))

	// --- Start the Server with Graceful Shutdown ---
	port := cfg.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
