// file: app/test_app.go

package app

import (
	"database/sql"
	"management-api/config"
	"management-api/handler"
	"management-api/repository"
	"management-api/router"
	"management-api/service"
	"net/http"

	"github.com/redis/go-redis/v9"
)

// TestApp bundles a fully wired router with its backing connections so
// integration tests can drive the real middleware chains.
type TestApp struct {
	DB     *sql.DB
	Redis  *redis.Client
	Router http.Handler
}

// NewTestApp wires all layers over the given connections, mirroring Run.
func NewTestApp(database *sql.DB, redisClient *redis.Client, cfg *config.Config) *TestApp {
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

	return &TestApp{
		DB:     database,
		Redis:  redisClient,
		Router: r,
	}
}
