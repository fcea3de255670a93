package handler

import (
	"context"
	"errors"
	"management-api/common"
	"management-api/model"
	"management-api/service"
	"net/http"
	"strings"
)

type contextKey string

const (
	UserIDKey    contextKey = "userID"
	UserEmailKey contextKey = "userEmail"
	UserRoleKey  contextKey = "userRole"
)

const bearerPrefix = "Bearer "

// ExtractBearerToken returns the token carried in an Authorization header,
// or an empty string when the header is missing or not in Bearer form.
func ExtractBearerToken(authHeader string) string {
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return ""
	}
	return authHeader[len(bearerPrefix):]
}

// AuthMiddleware verifies the access token on a request and exposes the
// decoded identity to downstream handlers through the request context.
// A missing or malformed header is an authentication failure (401); a
// present token the codec rejects is a permission failure (403).
func AuthMiddleware(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				common.Unauthenticated("Authentication required. Missing token.", nil).Send(w)
				return
			}

			tokenString := ExtractBearerToken(authHeader)
			if tokenString == "" {
				common.Unauthenticated("Invalid authorization header format", nil).Send(w)
				return
			}

			claims, err := authService.VerifyToken(tokenString, model.TokenTypeAccess)
			if err != nil {
				common.PermissionDenied("Invalid or expired token", err).Send(w)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, UserEmailKey, claims.Email)
			ctx = context.WithValue(ctx, UserRoleKey, claims.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AuthorizeRoles checks role membership: missing role is an authentication
// failure, a role outside allowedRoles a permission failure.
func AuthorizeRoles(role string, allowedRoles ...string) *common.AppError {
	if role == "" {
		return common.Unauthenticated("Authentication required", nil)
	}
	for _, allowed := range allowedRoles {
		if role == allowed {
			return nil
		}
	}
	return common.PermissionDenied("Insufficient permissions", errors.New("role "+role+" not allowed"))
}

// RequireRoles gates a route on the authenticated user's role. It must be
// chained after AuthMiddleware.
func RequireRoles(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ := r.Context().Value(UserRoleKey).(string)
			if err := AuthorizeRoles(role, allowedRoles...); err != nil {
				err.Send(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
