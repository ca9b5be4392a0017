package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestGinMiddlewarePropagatesRequestContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		c.Set("request_id", "req-123")
		c.Next()
	})
	engine.Use(GinMiddleware(zap.NewNop()))

	var gotID string
	var gotLogger *zap.Logger
	engine.GET("/ping", func(c *gin.Context) {
		gotID = GetRequestID(c.Request.Context())
		gotLogger = FromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "req-123", gotID)
	assert.NotNil(t, gotLogger)
}

func TestGetGinLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	// No logger anywhere still yields a usable logger
	assert.NotNil(t, GetGinLogger(c))

	base := zap.NewNop()
	c.Request = c.Request.WithContext(WithContext(c.Request.Context(), base))
	assert.Same(t, base, GetGinLogger(c))

	scoped := zap.NewNop()
	c.Set("logger", scoped)
	assert.Same(t, scoped, GetGinLogger(c))
}
