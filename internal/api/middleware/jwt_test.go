package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseToken(t *testing.T) {
	Init()

	token, isAdmin, err := GenerateToken(7, "admin", "ADMIN", time.Hour)
	assert.NoError(t, err)
	assert.True(t, isAdmin)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.True(t, claims.IsAdmin)
}

func TestGenerateToken_NonAdminRole(t *testing.T) {
	Init()

	_, isAdmin, err := GenerateToken(8, "field", "EMPLOYEE", time.Hour)
	assert.NoError(t, err)
	assert.False(t, isAdmin)
}

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/secure", JWTAuthMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestJWTAuthMiddleware_BearerHeader(t *testing.T) {
	Init()
	r := protectedRouter()

	token, _, err := GenerateToken(1, "admin", "ADMIN", time.Hour)
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuthMiddleware_Cookie(t *testing.T) {
	Init()
	r := protectedRouter()

	token, _, err := GenerateToken(1, "admin", "ADMIN", time.Hour)
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", "/secure", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuthMiddleware_Rejections(t *testing.T) {
	Init()
	r := protectedRouter()

	// no credentials at all
	req := httptest.NewRequest("GET", "/secure", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// malformed header
	req = httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Token abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// expired token
	token, _, err := GenerateToken(1, "admin", "ADMIN", -time.Minute)
	assert.NoError(t, err)
	req = httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
