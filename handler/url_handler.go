// file: handler/url_handler.go

package handler

import (
	"management-api/common"
	"management-api/model"
	"management-api/service"
	"net/http"
)

// URLHandler serves the standalone URL-shortener surface.
type URLHandler struct {
	service *service.ShortenerService
}

func NewURLHandler(s *service.ShortenerService) *URLHandler {
	return &URLHandler{service: s}
}

type endpointInfo struct {
	Name        string `json:"name"`
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// ShortenerHomeResponse describes the shortener service.
type ShortenerHomeResponse struct {
	Message   string         `json:"message"`
	Service   string         `json:"service"`
	Version   string         `json:"version"`
	Endpoints []endpointInfo `json:"endpoints"`
}

// URLListResponse wraps the stored short URLs.
type URLListResponse struct {
	URLs []*model.ShortURL `json:"urls"`
}

// Home godoc
// @Summary      Shortener service information
// @Tags         shortener
// @Produce      json
// @Success      200  {object}  handler.ShortenerHomeResponse
// @Router       / [get]
func (h *URLHandler) Home(w http.ResponseWriter, r *http.Request) *common.AppError {
	writeJSON(w, http.StatusOK, ShortenerHomeResponse{
		Message: "Welcome to the URL shortener service",
		Service: "URL Shortener API",
		Version: "1.0.0",
		Endpoints: []endpointInfo{
			{Name: "home", Method: "GET", Path: "/", Description: "Get service information"},
			{Name: "shorten", Method: "POST", Path: "/url", Description: "Create a shortened URL"},
			{Name: "get", Method: "GET", Path: "/url/{id}", Description: "Get the original URL for a short ID"},
		},
	})
	return nil
}

// Shorten godoc
// @Summary      Create a shortened URL
// @Tags         shortener
// @Accept       json
// @Produce      json
// @Param        url body model.ShortenRequest true "URL to shorten"
// @Success      200  {object}  model.ShortURL
// @Router       /url [post]
func (h *URLHandler) Shorten(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.ShortenRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	url, err := h.service.Shorten(req.URL)
	if err != nil {
		return common.Internal("Failed to shorten URL", err)
	}
	writeJSON(w, http.StatusOK, url)
	return nil
}

// Resolve godoc
// @Summary      Resolve a short id to its original URL
// @Tags         shortener
// @Produce      json
// @Param        id path string true "Short id"
// @Success      200  {object}  model.ShortURL
// @Failure      404  {object}  common.AppError
// @Router       /url/{id} [get]
func (h *URLHandler) Resolve(w http.ResponseWriter, r *http.Request) *common.AppError {
	url, err := h.service.Resolve(r.PathValue("id"))
	if err != nil {
		if err == service.ErrURLNotFound {
			return common.NotFound("url not found", err)
		}
		return common.Internal("Failed to resolve URL", err)
	}
	writeJSON(w, http.StatusOK, url)
	return nil
}

// List godoc
// @Summary      List all stored short URLs
// @Tags         shortener
// @Produce      json
// @Success      200  {object}  handler.URLListResponse
// @Router       /url [get]
func (h *URLHandler) List(w http.ResponseWriter, r *http.Request) *common.AppError {
	urls, err := h.service.ListURLs()
	if err != nil {
		return common.Internal("Failed to list URLs", err)
	}
	writeJSON(w, http.StatusOK, URLListResponse{URLs: urls})
	return nil
}
