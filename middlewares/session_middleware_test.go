package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newProbe() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", SessionMiddleware(), func(c *gin.Context) {
		token, _ := SessionFromCtx(c)
		c.JSON(http.StatusOK, gin.H{"session": token})
	})
	return r
}

func TestSessionMiddleware_MissingCookie(t *testing.T) {
	r := newProbe()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"session required"}`, w.Body.String())
}

func TestSessionMiddleware_PassesTokenThrough(t *testing.T) {
	r := newProbe()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "token-123"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"session":"token-123"}`, w.Body.String())
}
