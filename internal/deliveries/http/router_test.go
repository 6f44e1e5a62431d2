package http

import (
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"bitbucket.org/Amartha/go-emi-collection/internal/common/idgenerator"
	"bitbucket.org/Amartha/go-emi-collection/internal/common/metrics"
	"bitbucket.org/Amartha/go-emi-collection/internal/common/xlog"
	"bitbucket.org/Amartha/go-emi-collection/internal/config"
	"bitbucket.org/Amartha/go-emi-collection/internal/repositories"
	"bitbucket.org/Amartha/go-emi-collection/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func newTestServer(t *testing.T, env string) (nethttp.Handler, *atomic.Int32) {
	t.Helper()

	var payments atomic.Int32
	collection := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		switch r.URL.Path {
		case "/customers":
			_, _ = w.Write([]byte(`[{"account_number":"ACC1","issue_date":"2022-06-15","interest_rate":9.5,"tenure":12,"emi_due":1200}]`))
		case "/payments":
			payments.Add(1)
			w.WriteHeader(nethttp.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":"Insufficient balance"}`))
		default:
			w.WriteHeader(nethttp.StatusNotFound)
		}
	}))
	t.Cleanup(collection.Close)

	conf := config.Config{
		App: config.App{Name: "go-emi-collection", Env: env, HTTPTimeout: 5 * time.Second},
		CollectionAPI: config.HTTPConfiguration{
			BaseURL: collection.URL,
			Timeout: 2 * time.Second,
		},
	}
	mtc := metrics.NewWithRegisterer(prometheus.NewRegistry(), conf.App.Name)
	srv := services.New(conf, repositories.NewCollectionAPI(conf.CollectionAPI, mtc), idgenerator.New(), mtc)

	return NewHTTPServer(conf, nil, srv.Controller, mtc).Handler(), &payments
}

func serve(t *testing.T, handler nethttp.Handler, method, url, body string) (int, string) {
	t.Helper()

	req := httptest.NewRequest(method, url, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	res, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	return rec.Code, strings.TrimSuffix(string(res), "\n")
}

func TestNewHTTPServer(t *testing.T) {
	handler, payments := newTestServer(t, "prod")

	code, body := serve(t, handler, nethttp.MethodGet, "/api/v1/directory", "")
	assert.Equal(t, nethttp.StatusOK, code)
	assert.Equal(t, `{"kind":"loanDirectory","status":"idle","records":[]}`, body)

	code, body = serve(t, handler, nethttp.MethodPost, "/api/v1/directory/load", "")
	assert.Equal(t, nethttp.StatusOK, code)
	assert.Contains(t, body, `"account_number":"ACC1"`)

	code, body = serve(t, handler, nethttp.MethodPost, "/api/v1/payments", `{"account_number":"ACC1","amount":"abc"}`)
	assert.Equal(t, nethttp.StatusBadRequest, code)
	assert.Contains(t, body, `"message":"Please fill all fields"`)
	assert.Equal(t, int32(0), payments.Load())

	code, body = serve(t, handler, nethttp.MethodPost, "/api/v1/payments", `{"account_number":"ACC1","amount":"500"}`)
	assert.Equal(t, nethttp.StatusUnprocessableEntity, code)
	assert.Equal(t, `{"kind":"paymentOutcome","status":"failed","message":"Insufficient balance","clear_form":false}`, body)
	assert.Equal(t, int32(1), payments.Load())

	code, _ = serve(t, handler, nethttp.MethodDelete, "/api/v1/session", "")
	assert.Equal(t, nethttp.StatusNoContent, code)

	_, body = serve(t, handler, nethttp.MethodGet, "/api/v1/payments/outcome", "")
	assert.Equal(t, `{"kind":"paymentOutcome","status":"idle","clear_form":false}`, body)

	code, body = serve(t, handler, nethttp.MethodGet, "/metrics", "")
	assert.Equal(t, nethttp.StatusOK, code)
	assert.Contains(t, body, "go_emi_collection_payment_submissions_total")

	code, body = serve(t, handler, nethttp.MethodGet, "/api/v1/unknown", "")
	assert.Equal(t, nethttp.StatusNotFound, code)
	assert.Contains(t, body, `"status":"error"`)

	code, _ = serve(t, handler, nethttp.MethodGet, "/debug/pprof/cmdline", "")
	assert.Equal(t, nethttp.StatusNotFound, code)
}

func TestNewHTTPServer_PprofOnlyWhenDebugEnabled(t *testing.T) {
	tests := []struct {
		env      string
		wantCode int
	}{
		{env: "local", wantCode: nethttp.StatusOK},
		{env: "dev", wantCode: nethttp.StatusNotFound},
		{env: "uat", wantCode: nethttp.StatusNotFound},
		{env: "prod", wantCode: nethttp.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			handler, _ := newTestServer(t, tt.env)

			code, _ := serve(t, handler, nethttp.MethodGet, "/debug/pprof/cmdline", "")
			assert.Equal(t, tt.wantCode, code)
		})
	}
}
