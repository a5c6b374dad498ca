package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestdoc/internal/middleware"
)

func requestIDRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(middleware.RequestIDKey))
	})
	return r
}

func TestRequestID_MintsWhenAbsent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	requestIDRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	echoed := w.Header().Get(middleware.RequestIDHeader)
	_, err := uuid.Parse(echoed)
	assert.NoError(t, err)
	// The handler sees the same id the client is told about.
	assert.Equal(t, echoed, w.Body.String())
}

func TestRequestID_EchoesClientProvidedID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "trace-42")
	w := httptest.NewRecorder()
	requestIDRouter().ServeHTTP(w, req)

	assert.Equal(t, "trace-42", w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "trace-42", w.Body.String())
}
