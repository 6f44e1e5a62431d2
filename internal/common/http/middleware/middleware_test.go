package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bitbucket.org/Amartha/go-emi-collection/internal/common/xlog"
	"bitbucket.org/Amartha/go-emi-collection/internal/common/xlog/ctxdata"
	"bitbucket.org/Amartha/go-emi-collection/internal/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func newTestRouter() *echo.Echo {
	m := NewMiddleware(config.Config{})

	app := echo.New()
	app.Use(m.Context())
	app.Use(m.Logger())
	app.POST("/api/v1/payments", func(c echo.Context) error {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"correlation_id": ctxdata.GetCorrelationId(c.Request().Context()),
		})
	})
	app.GET("/api/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return app
}

func TestAppMiddleware_Context(t *testing.T) {
	xlog.InitForTest()
	app := newTestRouter()

	t.Run("propagates caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", nil)
		req.Header.Set(ctxdata.HeaderCorrelationId, "corr-1")
		rec := httptest.NewRecorder()

		app.ServeHTTP(rec, req)

		assert.Equal(t, "corr-1", rec.Header().Get(ctxdata.HeaderCorrelationId))
		assert.Contains(t, rec.Body.String(), `"correlation_id":"corr-1"`)
	})

	t.Run("generates id when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", nil)
		rec := httptest.NewRecorder()

		app.ServeHTTP(rec, req)

		assert.NotEmpty(t, rec.Header().Get(ctxdata.HeaderCorrelationId))
	})
}

func TestAppMiddleware_Logger(t *testing.T) {
	logs := xlog.InitObserver(zapcore.InfoLevel)
	defer xlog.InitForTest()

	app := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", strings.NewReader(`{"account_number":"ACC1"}`))
	req.Header.Set("Authorization", "Bearer secret")
	req.Header.Set(ctxdata.HeaderCorrelationId, "corr-2")
	app.ServeHTTP(httptest.NewRecorder(), req)

	health := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	app.ServeHTTP(httptest.NewRecorder(), health)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	assert.Equal(t, `{"account_number":"ACC1"}`, fields["request_body"])
	assert.Equal(t, int64(http.StatusBadRequest), fields["status"])
	assert.Contains(t, fields["request_header"], "*****")
	assert.NotContains(t, fields["request_header"], "secret")
	assert.Equal(t, "corr-2", fields["correlation_id"])
}
