package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRouter(secret string, required Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(secret), RequireRole(required), func(c *gin.Context) {
		id, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	r := setupRouter(testSecret, RoleUser)
	token, err := GenerateAccessToken(42, "jane", RoleUser, testSecret)
	assert.NoError(t, err)

	w := doRequest(r, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r := setupRouter(testSecret, RoleUser)

	w := doRequest(r, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	r := setupRouter(testSecret, RoleUser)

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "Token abc").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "Bearer").Code)
}

func TestAuthMiddlewareRejectsRefreshToken(t *testing.T) {
	r := setupRouter(testSecret, RoleUser)
	refresh, err := GenerateRefreshToken(42, "jane", RoleUser, testSecret)
	assert.NoError(t, err)

	w := doRequest(r, "Bearer "+refresh)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleAdminOnly(t *testing.T) {
	r := setupRouter(testSecret, RoleAdmin)

	userToken, err := GenerateAccessToken(1, "jane", RoleUser, testSecret)
	assert.NoError(t, err)
	adminToken, err := GenerateAccessToken(2, "root", RoleAdmin, testSecret)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, doRequest(r, "Bearer "+userToken).Code)
	assert.Equal(t, http.StatusOK, doRequest(r, "Bearer "+adminToken).Code)
}

func TestRequireRoleAdminImpliesUser(t *testing.T) {
	r := setupRouter(testSecret, RoleUser)
	adminToken, err := GenerateAccessToken(2, "root", RoleAdmin, testSecret)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, doRequest(r, "Bearer "+adminToken).Code)
}
