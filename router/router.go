package router

import (
	"management-api/common"
	"management-api/handler"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// NewRouter wires every endpoint with its middleware chain. All resource
// routes (/api/users, /api/projects, /api/tasks) require a valid access
// token; mutating user routes and project deletion additionally require an
// elevated role. Auth, home, health and the shortener stay public.
func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	projectHandler *handler.ProjectHandler,
	taskHandler *handler.TaskHandler,
	urlHandler *handler.URLHandler,
	authMiddleware func(http.Handler) http.Handler,
) http.Handler {
	mux := http.NewServeMux()

	protected := func(h func(http.ResponseWriter, *http.Request) *common.AppError) http.Handler {
		return authMiddleware(handler.ErrorHandlingMiddleware(h))
	}
	elevated := handler.RequireRoles("manager", "admin")
	roleGated := func(h func(http.ResponseWriter, *http.Request) *common.AppError) http.Handler {
		return authMiddleware(elevated(handler.ErrorHandlingMiddleware(h)))
	}

	// Public surface
	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.HandleFunc("GET /api", handler.Home)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Auth
	mux.Handle("POST /api/auth/signup", handler.ErrorHandlingMiddleware(authHandler.Signup))
	mux.Handle("POST /api/auth/login", handler.ErrorHandlingMiddleware(authHandler.Login))
	mux.Handle("POST /api/auth/refresh", handler.ErrorHandlingMiddleware(authHandler.Refresh))
	mux.Handle("POST /api/auth/logout", handler.ErrorHandlingMiddleware(authHandler.Logout))
	mux.Handle("GET /api/auth/me", protected(authHandler.Me))

	// Users
	mux.Handle("GET /api/users", protected(userHandler.ListUsers))
	mux.Handle("GET /api/users/{id}", protected(userHandler.GetUser))
	mux.Handle("POST /api/users", roleGated(userHandler.CreateUser))
	mux.Handle("PUT /api/users/{id}", roleGated(userHandler.UpdateUser))
	mux.Handle("PATCH /api/users/{id}/skills", protected(userHandler.UpdateSkills))
	mux.Handle("PATCH /api/users/{id}/avatar", protected(userHandler.UpdateAvatar))
	mux.Handle("GET /api/users/{id}/stats", protected(userHandler.GetStats))
	mux.Handle("POST /api/users/sync-cache", protected(userHandler.SyncCache))

	// Projects
	mux.Handle("GET /api/projects", protected(projectHandler.ListProjects))
	mux.Handle("GET /api/projects/{id}", protected(projectHandler.GetProject))
	mux.Handle("POST /api/projects", protected(projectHandler.CreateProject))
	mux.Handle("PUT /api/projects/{id}", protected(projectHandler.UpdateProject))
	mux.Handle("DELETE /api/projects/{id}", roleGated(projectHandler.DeleteProject))
	mux.Handle("GET /api/projects/{id}/tasks", protected(projectHandler.ListProjectTasks))
	mux.Handle("GET /api/projects/{id}/members", protected(projectHandler.ListProjectMembers))
	mux.Handle("POST /api/projects/{id}/members", protected(projectHandler.AddMember))
	mux.Handle("DELETE /api/projects/{id}/members/{userId}", protected(projectHandler.RemoveMember))

	// Tasks
	mux.Handle("GET /api/tasks", protected(taskHandler.ListTasks))
	mux.Handle("GET /api/tasks/{id}", protected(taskHandler.GetTask))
	mux.Handle("POST /api/tasks", protected(taskHandler.CreateTask))
	mux.Handle("PUT /api/tasks/{id}", protected(taskHandler.UpdateTask))
	mux.Handle("PATCH /api/tasks/{id}/status", protected(taskHandler.UpdateTaskStatus))
	mux.Handle("DELETE /api/tasks/{id}", protected(taskHandler.DeleteTask))

	// URL shortener
	mux.Handle("GET /{$}", handler.ErrorHandlingMiddleware(urlHandler.Home))
	mux.Handle("POST /url", handler.ErrorHandlingMiddleware(urlHandler.Shorten))
	mux.Handle("GET /url", handler.ErrorHandlingMiddleware(urlHandler.List))
	mux.Handle("GET /url/{id}", handler.ErrorHandlingMiddleware(urlHandler.Resolve))

	return handler.RequestLoggerMiddleware(mux)
}
