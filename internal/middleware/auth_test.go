package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostel-system/hostel-management/internal/middleware"
	"github.com/hostel-system/hostel-management/internal/model"
)

const testSecret = "test-secret"

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/protected", middleware.JWTMiddleware(testSecret), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/admin-only",
		middleware.JWTMiddleware(testSecret),
		middleware.RoleMiddleware(model.RoleAdmin),
		func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

	return r
}

func doRequest(t *testing.T, r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestJWTMiddlewareRejectsMissingHeader(t *testing.T) {
	rec := doRequest(t, newRouter(), "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTMiddlewareRejectsGarbageToken(t *testing.T) {
	rec := doRequest(t, newRouter(), "/protected", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTMiddlewareRejectsExpiredToken(t *testing.T) {
	token, err := middleware.GenerateToken("user-1", "a@example.com", model.RoleTenant, testSecret, -time.Minute)
	require.NoError(t, err)

	rec := doRequest(t, newRouter(), "/protected", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTMiddlewareAcceptsToken(t *testing.T) {
	token, err := middleware.GenerateToken("user-1", "a@example.com", model.RoleTenant, testSecret, time.Hour)
	require.NoError(t, err)

	// Verbatim header, as the browser client sends it.
	rec := doRequest(t, newRouter(), "/protected", token)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Bearer prefix works too.
	rec = doRequest(t, newRouter(), "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoleMiddlewareBlocksNonAdmin(t *testing.T) {
	token, err := middleware.GenerateToken("user-1", "a@example.com", model.RoleTenant, testSecret, time.Hour)
	require.NoError(t, err)

	rec := doRequest(t, newRouter(), "/admin-only", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRoleMiddlewareAllowsAdmin(t *testing.T) {
	token, err := middleware.GenerateToken("user-1", "a@example.com", model.RoleAdmin, testSecret, time.Hour)
	require.NoError(t, err)

	rec := doRequest(t, newRouter(), "/admin-only", token)
	assert.Equal(t, http.StatusOK, rec.Code)
}
