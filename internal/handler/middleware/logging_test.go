//go:build unit

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/infra/observability"
	"hotel-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logger := middleware.NewLoggerWith(slog.New(slog.NewJSONHandler(&buf, nil)))

	r := gin.New()
	r.Use(logger.LoggingMiddleware())
	r.GET("/rooms/:id", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	t.Run("generates a request id and echoes it", func(t *testing.T) {
		buf.Reset()
		w := httptest.PerformRequest(t, r, http.MethodGet, "/rooms/1", nil, "")

		id := w.Header().Get(middleware.RequestIDHeader)
		require.NotEmpty(t, id)
		assert.Equal(t, id, w.Body.String())
		assert.Contains(t, buf.String(), `"route":"/rooms/:id"`)
		assert.Contains(t, buf.String(), `"status_code":200`)
	})

	t.Run("keeps an inbound request id", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/rooms/2", nil)
		req.Header.Set(middleware.RequestIDHeader, "edge-123")
		w := performRaw(r, req)

		httptest.AssertHeaders(t, w, map[string]string{middleware.RequestIDHeader: "edge-123"})
	})

	t.Run("replaces an oversized inbound id", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/rooms/3", nil)
		req.Header.Set(middleware.RequestIDHeader, string(bytes.Repeat([]byte("x"), 100)))
		w := performRaw(r, req)

		assert.Len(t, w.Header().Get(middleware.RequestIDHeader), len("20060102150405")+1+8)
	})
}

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics := observability.NewMetrics()

	r := gin.New()
	r.Use(middleware.Metrics(metrics))
	r.GET("/rooms/combination/:combinationId", func(c *gin.Context) {
		time.Sleep(time.Millisecond)
		c.Status(http.StatusNoContent)
	})

	httptest.PerformRequest(t, r, http.MethodGet, "/rooms/combination/a", nil, "")
	httptest.PerformRequest(t, r, http.MethodGet, "/rooms/combination/b", nil, "")
	httptest.PerformRequest(t, r, http.MethodGet, "/nowhere", nil, "")

	count, err := testutil.GatherAndCount(metrics.Registry(), "hotel_http_requests_total")
	require.NoError(t, err)
	// two label sets: the route template and "unmatched"
	assert.Equal(t, 2, count)
}
