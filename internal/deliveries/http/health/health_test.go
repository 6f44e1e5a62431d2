package health

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"bitbucket.org/Amartha/go-emi-collection/internal/common/xlog"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func Test_Handler_healthCheck(t *testing.T) {
	app := echo.New()
	app.Pre(echomiddleware.RemoveTrailingSlash())
	New(app.Group("/api"))

	tests := []struct {
		name      string
		urlCalled string
		wantRes   string
		wantCode  int
	}{
		{
			name:      "success",
			urlCalled: "/api/health",
			wantRes:   `{"kind":"health","status":"server is up and running"}`,
			wantCode:  http.StatusOK,
		},
		{
			name:      "trailing slash",
			urlCalled: "/api/health/",
			wantRes:   `{"kind":"health","status":"server is up and running"}`,
			wantCode:  http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.urlCalled, nil)
			rec := httptest.NewRecorder()
			app.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.wantCode, resp.StatusCode)
			require.Equal(t, tt.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}
