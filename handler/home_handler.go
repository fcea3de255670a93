package handler

import (
	"encoding/json"
	"net/http"
)

// HomeResponse describes the management API.
type HomeResponse struct {
	Title             string   `json:"title"`
	Version           string   `json:"version"`
	Description       string   `json:"description"`
	AvailableServices []string `json:"availableServices"`
}

// Home godoc
// @Summary      Management API information
// @Tags         home
// @Produce      json
// @Success      200  {object}  handler.HomeResponse
// @Router       /api [get]
func Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HomeResponse{
		Title:             "Management API",
		Version:           "1.0.0",
		Description:       "API for managing users, projects, and tasks",
		AvailableServices: []string{"auth", "users", "projects", "tasks"},
	})
}

// HealthCheck godoc
// @Summary      Show the status of server
// @Description  get the status of server
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "API is healthy and running"})
}
