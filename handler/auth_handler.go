package handler

import (
	"encoding/json"
	"management-api/common"
	"management-api/logger"
	"management-api/model"
	"management-api/service"
	"net/http"
)

// AuthHandler holds dependencies for the session endpoints.
type AuthHandler struct {
	authService *service.AuthService
	userService *service.UserService
}

func NewAuthHandler(authService *service.AuthService, userService *service.UserService) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// SuccessResponse is the acknowledgment shape for operations with no body.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Signup godoc
// @Summary      Register a new user
// @Description  Creates a user account and opens a session.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        signup body model.SignupRequest true "Signup payload"
// @Success      200  {object}  service.AuthResponse
// @Failure      400  {object}  common.AppError "Email already registered"
// @Failure      500  {object}  common.AppError
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.SignupRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	resp, err := h.authService.Signup(&req)
	if err != nil {
		switch err {
		case service.ErrEmailTaken:
			return common.InvalidArgument("Email already registered", err)
		default:
			return common.Internal("Failed to create user", err)
		}
	}

	logger.Log.WithField("email", req.Email).Info("Signup completed")
	writeJSON(w, http.StatusOK, resp)
	return nil
}

// Login godoc
// @Summary      Authenticate a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login body model.LoginRequest true "Login payload"
// @Success      200  {object}  service.AuthResponse
// @Failure      404  {object}  common.AppError "Unknown email"
// @Failure      403  {object}  common.AppError "Wrong password"
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		// Same generic message for both failure kinds so the response body
		// never reveals whether the email or the password was wrong.
		switch err {
		case service.ErrUserNotFound:
			return common.NotFound("Invalid email or password", err)
		case service.ErrInvalidCredentials:
			return common.PermissionDenied("Invalid email or password", err)
		default:
			return common.Internal("Login failed", err)
		}
	}

	writeJSON(w, http.StatusOK, resp)
	return nil
}

// Refresh godoc
// @Summary      Exchange a refresh token for a new token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        refresh body model.RefreshTokenRequest true "Refresh payload"
// @Success      200  {object}  service.AuthResponse
// @Failure      403  {object}  common.AppError "Invalid or expired refresh token"
// @Failure      404  {object}  common.AppError "User no longer exists"
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RefreshTokenRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	resp, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		switch err {
		case service.ErrInvalidToken, service.ErrWrongTokenType:
			return common.PermissionDenied("Invalid or expired refresh token", err)
		case service.ErrUserNotFound:
			return common.NotFound("User not found", err)
		default:
			return common.Internal("Token refresh failed", err)
		}
	}

	writeJSON(w, http.StatusOK, resp)
	return nil
}

// Logout godoc
// @Summary      Close the session
// @Description  Pure acknowledgment: tokens are stateless, so there is nothing to revoke server-side.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  handler.SuccessResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) *common.AppError {
	writeJSON(w, http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Logged out successfully",
	})
	return nil
}

// Me godoc
// @Summary      Current user detail with workload stats
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.UserDetail
// @Failure      404  {object}  common.AppError
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(string)
	if !ok || userID == "" {
		return common.Unauthenticated("Invalid user ID in token", nil)
	}

	detail, err := h.userService.GetUserDetail(userID)
	if err != nil {
		if err == service.ErrUserNotFound {
			return common.NotFound("User not found", err)
		}
		return common.Internal("Could not load user", err)
	}

	writeJSON(w, http.StatusOK, detail)
	return nil
}
