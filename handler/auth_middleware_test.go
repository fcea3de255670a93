// file: handler/auth_middleware_test.go

package handler

import (
	"management-api/config"
	"management-api/model"
	"management-api/service"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func middlewareTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "middleware-test-secret"
	cfg.JWT.AccessTokenTTL = time.Hour
	cfg.JWT.RefreshTokenTTL = 24 * time.Hour
	return cfg
}

// echoIdentity responds with the identity the middleware placed in context,
// letting tests assert on what downstream handlers actually see.
func echoIdentity() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := r.Context().Value(UserIDKey).(string)
		role, _ := r.Context().Value(UserRoleKey).(string)
		w.Header().Set("X-Test-User-ID", userID)
		w.Header().Set("X-Test-Role", role)
		w.WriteHeader(http.StatusOK)
	})
}

func TestExtractBearerToken(t *testing.T) {
	assert.Equal(t, "abc.def.ghi", ExtractBearerToken("Bearer abc.def.ghi"))
	assert.Equal(t, "", ExtractBearerToken("Basic abc"))
	assert.Equal(t, "", ExtractBearerToken("bearer abc.def.ghi"))
	assert.Equal(t, "", ExtractBearerToken(""))
}

func TestAuthMiddleware(t *testing.T) {
	authService := service.NewAuthService(nil, middlewareTestConfig())
	protected := AuthMiddleware(authService)(echoIdentity())

	user := &model.User{ID: "u1", Email: "a@x.com", Role: string(model.RoleDeveloper)}

	t.Run("missing header", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/users", nil)
		rr := httptest.NewRecorder()
		protected.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/users", nil)
		req.Header.Set("Authorization", "Token abc")
		rr := httptest.NewRecorder()
		protected.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/users", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rr := httptest.NewRecorder()
		protected.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("refresh token rejected on protected route", func(t *testing.T) {
		refreshToken, err := authService.IssueRefreshToken(user)
		assert.NoError(t, err)

		req, _ := http.NewRequest("GET", "/api/users", nil)
		req.Header.Set("Authorization", "Bearer "+refreshToken)
		rr := httptest.NewRecorder()
		protected.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("valid access token passes identity downstream", func(t *testing.T) {
		accessToken, err := authService.IssueAccessToken(user)
		assert.NoError(t, err)

		req, _ := http.NewRequest("GET", "/api/users", nil)
		req.Header.Set("Authorization", "Bearer "+accessToken)
		rr := httptest.NewRecorder()
		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "u1", rr.Header().Get("X-Test-User-ID"))
		assert.Equal(t, string(model.RoleDeveloper), rr.Header().Get("X-Test-Role"))
	})
}

func TestAuthorizeRoles(t *testing.T) {
	assert.Nil(t, AuthorizeRoles(string(model.RoleAdmin), string(model.RoleManager), string(model.RoleAdmin)))

	err := AuthorizeRoles(string(model.RoleDeveloper), string(model.RoleManager), string(model.RoleAdmin))
	assert.NotNil(t, err)
	assert.Equal(t, http.StatusForbidden, err.Code)

	err = AuthorizeRoles("", string(model.RoleAdmin))
	assert.NotNil(t, err)
	assert.Equal(t, http.StatusUnauthorized, err.Code)
}

func TestRequireRoles(t *testing.T) {
	authService := service.NewAuthService(nil, middlewareTestConfig())
	gated := AuthMiddleware(authService)(RequireRoles(string(model.RoleManager), string(model.RoleAdmin))(echoIdentity()))

	t.Run("developer is forbidden", func(t *testing.T) {
		token, err := authService.IssueAccessToken(&model.User{ID: "u1", Email: "dev@x.com", Role: string(model.RoleDeveloper)})
		assert.NoError(t, err)

		req, _ := http.NewRequest("POST", "/api/projects", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		gated.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("manager passes", func(t *testing.T) {
		token, err := authService.IssueAccessToken(&model.User{ID: "u2", Email: "pm@x.com", Role: string(model.RoleManager)})
		assert.NoError(t, err)

		req, _ := http.NewRequest("POST", "/api/projects", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		gated.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
