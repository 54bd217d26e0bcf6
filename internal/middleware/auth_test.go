package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"freeco/config"
	"freeco/internal/auth"
	"freeco/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(cfg *config.JWTConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthRequired(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c), "role": GetRole(c)})
	})
	r.GET("/admin", AuthRequired(cfg), AdminRequired(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/mod", AuthRequired(cfg), ModeratorRequired(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func do(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "s", Expiry: time.Hour}
	r := testRouter(cfg)

	assert.Equal(t, http.StatusUnauthorized, do(r, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "/me", "garbage").Code)

	token, err := auth.GenerateToken(cfg, 7, "u@x.co", domain.RoleUser)
	require.NoError(t, err)
	w := do(r, "/me", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
}

func TestRoleGates(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "s", Expiry: time.Hour}
	r := testRouter(cfg)

	userToken, _ := auth.GenerateToken(cfg, 1, "u@x.co", domain.RoleUser)
	modToken, _ := auth.GenerateToken(cfg, 2, "m@x.co", domain.RoleModerator)
	adminToken, _ := auth.GenerateToken(cfg, 3, "a@x.co", domain.RoleAdmin)

	assert.Equal(t, http.StatusForbidden, do(r, "/admin", userToken).Code)
	assert.Equal(t, http.StatusForbidden, do(r, "/admin", modToken).Code)
	assert.Equal(t, http.StatusOK, do(r, "/admin", adminToken).Code)

	// Admins also pass the moderator gate.
	assert.Equal(t, http.StatusForbidden, do(r, "/mod", userToken).Code)
	assert.Equal(t, http.StatusOK, do(r, "/mod", modToken).Code)
	assert.Equal(t, http.StatusOK, do(r, "/mod", adminToken).Code)
}
