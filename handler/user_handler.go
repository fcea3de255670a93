package handler

import (
	"fmt"
	"management-api/common"
	"management-api/logger"
	"management-api/model"
	"management-api/service"
	"net/http"
)

type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(service *service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// UserListResponse wraps the user list projection.
type UserListResponse struct {
	Users []*model.UserBasic `json:"users"`
}

// SyncResponse reports the outcome of a cache synchronization.
type SyncResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// ListUsers godoc
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  handler.UserListResponse
// @Router       /api/users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) *common.AppError {
	users, err := h.service.ListUsers()
	if err != nil {
		return common.Internal("Could not retrieve users", err)
	}
	writeJSON(w, http.StatusOK, UserListResponse{Users: users})
	return nil
}

// GetUser godoc
// @Summary      User detail with workload stats
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User id"
// @Success      200  {object}  model.UserDetail
// @Failure      404  {object}  common.AppError
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) *common.AppError {
	detail, err := h.service.GetUserDetail(r.PathValue("id"))
	if err != nil {
		if err == service.ErrUserNotFound {
			return common.NotFound("User not found", err)
		}
		return common.Internal("Could not retrieve user", err)
	}
	writeJSON(w, http.StatusOK, detail)
	return nil
}

// CreateUser godoc
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        user body model.CreateUserRequest true "User payload"
// @Success      200  {object}  model.UserDetail
// @Failure      400  {object}  common.AppError "Email already in use"
// @Router       /api/users [post]
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateUserRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	detail, err := h.service.CreateUser(&req)
	if err != nil {
		if err == service.ErrEmailTaken {
			return common.InvalidArgument("Email is already in use", err)
		}
		return common.Internal("Failed to create user", err)
	}

	logger.Log.WithField("user_id", detail.ID).Info("User created")
	writeJSON(w, http.StatusOK, detail)
	return nil
}

// UpdateUser godoc
// @Summary      Update a user's name and role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User id"
// @Param        user body model.UpdateUserRequest true "Fields to update"
// @Success      200  {object}  model.UserDetail
// @Failure      404  {object}  common.AppError
// @Router       /api/users/{id} [put]
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.UpdateUserRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	detail, err := h.service.UpdateUser(r.PathValue("id"), &req)
	if err != nil {
		if err == service.ErrUserNotFound {
			return common.NotFound("User not found", err)
		}
		return common.Internal("Failed to update user", err)
	}
	writeJSON(w, http.StatusOK, detail)
	return nil
}

// UpdateSkills godoc
// @Summary      Replace a user's skill list
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User id"
// @Param        skills body model.UpdateSkillsRequest true "Skills payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  common.AppError
// @Router       /api/users/{id}/skills [patch]
func (h *UserHandler) UpdateSkills(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.UpdateSkillsRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	user, err := h.service.UpdateSkills(r.PathValue("id"), req.Skills)
	if err != nil {
		if err == service.ErrUserNotFound {
			return common.NotFound("User not found", err)
		}
		return common.Internal("Failed to update user skills", err)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":     user.ID,
		"name":   user.Name,
		"skills": user.Skills,
	})
	return nil
}

// UpdateAvatar godoc
// @Summary      Set a user's avatar from a base64 data URI
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User id"
// @Param        avatar body model.UpdateAvatarRequest true "Avatar payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  common.AppError "Not a data:image/ payload"
// @Failure      404  {object}  common.AppError
// @Router       /api/users/{id}/avatar [patch]
func (h *UserHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.UpdateAvatarRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	user, err := h.service.UpdateAvatar(r.PathValue("id"), req.AvatarBase64)
	if err != nil {
		switch err {
		case service.ErrInvalidAvatar:
			return common.InvalidArgument("Invalid image format. Please provide a valid Base64 encoded image.", err)
		case service.ErrUserNotFound:
			return common.NotFound("User not found", err)
		default:
			return common.Internal("Failed to update user avatar", err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":     user.ID,
		"avatar": user.Avatar,
	})
	return nil
}

// GetStats godoc
// @Summary      User workload stats
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User id"
// @Success      200  {object}  model.UserStats
// @Failure      404  {object}  common.AppError
// @Router       /api/users/{id}/stats [get]
func (h *UserHandler) GetStats(w http.ResponseWriter, r *http.Request) *common.AppError {
	stats, err := h.service.GetStats(r.PathValue("id"))
	if err != nil {
		if err == service.ErrUserNotFound {
			return common.NotFound("User not found", err)
		}
		return common.Internal("Could not retrieve user stats", err)
	}
	writeJSON(w, http.StatusOK, stats)
	return nil
}

// SyncCache godoc
// @Summary      Rewrite the user list cache from the database
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  handler.SyncResponse
// @Failure      500  {object}  common.AppError
// @Router       /api/users/sync-cache [post]
func (h *UserHandler) SyncCache(w http.ResponseWriter, r *http.Request) *common.AppError {
	count, err := h.service.SyncUsersToCache()
	if err != nil {
		return common.Internal("Failed to sync users to cache", err)
	}

	writeJSON(w, http.StatusOK, SyncResponse{
		Success: true,
		Message: fmt.Sprintf("Successfully synced %d users to cache", count),
		Count:   count,
	})
	return nil
}
