package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sign(body, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(body))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func newVerifiedEngine(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/hook", WebhookVerification(secret, zap.NewNop()), func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.String(http.StatusOK, string(body))
	})
	return engine
}

func postSigned(engine *gin.Engine, body, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/hook", bytes.NewReader([]byte(body)))
	if signature != "" {
		req.Header.Set(HMACHeader, signature)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestWebhookVerification_ValidSignature(t *testing.T) {
	engine := newVerifiedEngine("topsecret")
	body := `{"id": 42}`

	w := postSigned(engine, body, sign(body, "topsecret"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, body, w.Body.String(), "handler still sees the full body after verification")
}

func TestWebhookVerification_InvalidSignature(t *testing.T) {
	engine := newVerifiedEngine("topsecret")
	body := `{"id": 42}`

	w := postSigned(engine, body, sign(body, "wrongsecret"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postSigned(engine, body, sign(`{"id": 43}`, "topsecret"))
	assert.Equal(t, http.StatusUnauthorized, w.Code, "signature over a different body must fail")
}

func TestWebhookVerification_MissingSignature(t *testing.T) {
	engine := newVerifiedEngine("topsecret")

	w := postSigned(engine, `{"id": 42}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebhookVerification_NoSecretSkipsCheck(t *testing.T) {
	engine := newVerifiedEngine("")

	w := postSigned(engine, `{"id": 42}`, "")
	assert.Equal(t, http.StatusOK, w.Code, "unsigned deliveries pass when no secret is configured")
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	// Generated when missing
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get("X-Request-ID"))

	// Preserved when supplied
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Body.String())
}
